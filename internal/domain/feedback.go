package domain

import "time"

// Feedback is one rating+comment per (event, participant); resubmitting
// replaces the previous entry.
type Feedback struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	ParticipantID   string    `json:"participant_id"`
	ParticipantName string    `json:"participant_name,omitempty"`
	Rating          int       `json:"rating"`
	Comment         string    `json:"comment"`
	CreatedAt       time.Time `json:"created_at"`
}
