package domain

import "time"

type RSVPStatus string

const (
	RSVPStatusActive   RSVPStatus = "active"
	RSVPStatusCanceled RSVPStatus = "canceled"
)

// RSVP is the per (event, participant) registration. There is at most one
// row per pair; register/cancel/re-register cycles flip Status rather than
// inserting new rows. ReminderSent is a one-way latch for the current active
// registration and is reset only when a canceled RSVP is reactivated.
type RSVP struct {
	ID            string     `json:"id"`
	EventID       string     `json:"event_id"`
	ParticipantID string     `json:"participant_id"`
	Status        RSVPStatus `json:"status"`
	JoinedAt      time.Time  `json:"joined_at"`
	ReminderSent  bool       `json:"reminder_sent"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
