package ports

import (
	"context"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error

	// FindConflict returns a non-canceled event of the organizer on the same
	// date whose [start,end) interval intersects the given one, or nil.
	FindConflict(ctx context.Context, organizerID, date, startTime, endTime, excludeID string) (*domain.Event, error)

	ListOrganizerUpcoming(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error)
	ListOrganizerCompleted(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error)
	ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error)
	ListCompleted(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error)
	Search(ctx context.Context) ([]*domain.Event, error)

	// Sweep selections. All instants are UTC; the window for reminders is
	// [from, to) against the event start.
	DueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Event, error)
	DueForLive(ctx context.Context, now time.Time) ([]*domain.Event, error)
	DueForCompletion(ctx context.Context, now time.Time) ([]*domain.Event, error)

	// UpdateStatusIf flips status only when the current value still matches
	// from, reporting whether a row changed. Concurrent cancellation wins.
	UpdateStatusIf(ctx context.Context, id string, from, to domain.EventStatus) (bool, error)
	MarkOrganizerLiveNotified(ctx context.Context, id string) error
}
