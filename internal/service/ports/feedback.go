package ports

import (
	"context"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type FeedbackRepo interface {
	// Upsert keeps at most one feedback per (event, participant).
	Upsert(ctx context.Context, f *domain.Feedback) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error)
}
