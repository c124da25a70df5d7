package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FeedbackRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFeedbackRepo(db *dbpg.DB) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FeedbackRepository) Upsert(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, event_id, participant_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (event_id, participant_id)
			  DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment,
			                created_at = EXCLUDED.created_at`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.EventID, f.ParticipantID, f.Rating, f.Comment, f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert feedback: %w", err)
	}

	return nil
}

func (r *FeedbackRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	query := `SELECT f.id, f.event_id, f.participant_id, f.rating, f.comment, f.created_at,
				u.first_name, u.last_name
			  FROM feedback f
			  JOIN users u ON u.id = f.participant_id
			  WHERE f.event_id = $1
			  ORDER BY f.created_at DESC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var res []*domain.Feedback
	for rows.Next() {
		var (
			f                   domain.Feedback
			firstName, lastName string
		)
		if err = rows.Scan(
			&f.ID, &f.EventID, &f.ParticipantID, &f.Rating, &f.Comment,
			&f.CreatedAt, &firstName, &lastName,
		); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		f.ParticipantName = firstName + " " + lastName
		res = append(res, &f)
	}

	return res, rows.Err()
}
