package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
)

type FeedbackService struct {
	feedbackRepo ports.FeedbackRepo
	eventRepo    ports.EventRepo
	clock        ports.Clock
}

func NewFeedbackService(feedbackRepo ports.FeedbackRepo, eventRepo ports.EventRepo, clock ports.Clock) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		eventRepo:    eventRepo,
		clock:        clock,
	}
}

// Submit upserts the participant's feedback: one entry per (event,
// participant), resubmission replaces it.
func (s *FeedbackService) Submit(ctx context.Context, eventID, participantID string, rating int, comment string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if comment == "" {
		return nil, fmt.Errorf("%w: rating and comment are required", domain.ErrValidation)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	feedback := &domain.Feedback{
		ID:            uuid.New().String(),
		EventID:       eventID,
		ParticipantID: participantID,
		Rating:        rating,
		Comment:       comment,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (s *FeedbackService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.feedbackRepo.ListByEvent(ctx, eventID)
}
