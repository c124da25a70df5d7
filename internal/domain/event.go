package domain

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusLive      EventStatus = "live"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCanceled  EventStatus = "canceled"
)

// Event stores its schedule as a calendar date plus wall-clock times, all
// interpreted in UTC. The persisted Status is a coarse cache mutated only by
// the scheduler sweeps and by explicit cancellation; read paths should use
// ResolveStatus except for the canceled override.
type Event struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Description           string      `json:"description"`
	Date                  string      `json:"date"`       // YYYY-MM-DD
	StartTime             string      `json:"start_time"` // HH:MM
	EndTime               string      `json:"end_time"`   // HH:MM
	MeetingLink           string      `json:"meeting_link"`
	Thumbnail             string      `json:"thumbnail"`
	OrganizerID           string      `json:"organizer_id"`
	Status                EventStatus `json:"status"`
	OrganizerLiveNotified bool        `json:"organizer_live_notified"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// StartsAt combines the event's date and start time into a UTC instant.
func (e *Event) StartsAt() (time.Time, error) {
	return CombineUTC(e.Date, e.StartTime)
}

// EndsAt combines the event's date and end time into a UTC instant.
func (e *Event) EndsAt() (time.Time, error) {
	return CombineUTC(e.Date, e.EndTime)
}

type CreateEventInput struct {
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	MeetingLink string
	Thumbnail   string
	OrganizerID string
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *string
	StartTime   *string
	EndTime     *string
	MeetingLink *string
	Thumbnail   *string
}

// EventDetails is the role-aware detail view: organizers get the attendee
// roster, participants get counts and a gated meeting link.
type EventDetails struct {
	Event             Event       `json:"event"`
	ComputedStatus    EventStatus `json:"computed_status"`
	RegistrationCount int         `json:"registration_count"`
	Attendees         []Attendee  `json:"attendees,omitempty"`
	ViewerRegistered  bool        `json:"viewer_registered"`
}

type Attendee struct {
	ParticipantID string    `json:"participant_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	JoinedAt      time.Time `json:"joined_at"`
}

// EventPage is one page of a listing plus its pagination metadata.
type EventPage struct {
	Events     []*Event
	TotalItems int
	Page       int
	Limit      int
}

func (p *EventPage) TotalPages() int {
	if p.Limit <= 0 {
		return 0
	}
	return (p.TotalItems + p.Limit - 1) / p.Limit
}
