package ports

import (
	"context"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type RSVPRepo interface {
	Create(ctx context.Context, r *domain.RSVP) error

	// GetByEventAndParticipant returns the pair's row regardless of status;
	// register reuses a canceled row instead of inserting a second one.
	GetByEventAndParticipant(ctx context.Context, eventID, participantID string) (*domain.RSVP, error)
	GetActive(ctx context.Context, eventID, participantID string) (*domain.RSVP, error)

	// Reactivate flips a canceled row back to active, stamps joinedAt and
	// resets reminderSent so the fresh registration gets its own reminder.
	Reactivate(ctx context.Context, id string, joinedAt time.Time) error
	CancelActive(ctx context.Context, eventID, participantID string) error

	ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.RSVP, error)
	ListActiveByParticipant(ctx context.Context, participantID string) ([]*domain.RSVP, error)
	ListAttendees(ctx context.Context, eventID string) ([]domain.Attendee, error)
	CountActive(ctx context.Context, eventID string) (int, error)

	PendingReminders(ctx context.Context, eventID string) ([]*domain.RSVP, error)
	MarkReminderSent(ctx context.Context, id string) error

	DeleteByEvent(ctx context.Context, eventID string) error
}
