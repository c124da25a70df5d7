package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CombineUTC parses a stored YYYY-MM-DD date and HH:MM wall-clock time into
// a single UTC instant. Every schedule comparison in the system goes through
// here: storage, resolution and the sweep selections all use the same zone,
// so there is no local-time/UTC boundary to disagree about.
func CombineUTC(date, clock string) (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ResolveStatus derives the event's lifecycle status at the given instant.
// Canceled is a terminal override regardless of time. Otherwise time is
// partitioned with no gap: before start is upcoming, start through end
// inclusive is live, after end is completed.
//
// Pure function, safe to call on every read. Stored strings are validated at
// creation, so the parse-failure fallback to the persisted status is not
// reachable for events created through the API.
func ResolveStatus(e *Event, now time.Time) EventStatus {
	if e.Status == EventStatusCanceled {
		return EventStatusCanceled
	}

	start, err := e.StartsAt()
	if err != nil {
		return e.Status
	}
	end, err := e.EndsAt()
	if err != nil {
		return e.Status
	}

	switch {
	case now.Before(start):
		return EventStatusUpcoming
	case now.After(end):
		return EventStatusCompleted
	default:
		return EventStatusLive
	}
}
