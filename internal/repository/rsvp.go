package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const rsvpColumns = `id, event_id, participant_id, status, joined_at, reminder_sent,
		created_at, updated_at`

type RSVPRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRSVPRepo(db *dbpg.DB) *RSVPRepository {
	return &RSVPRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanRSVP(row rowScanner) (*domain.RSVP, error) {
	var r domain.RSVP
	err := row.Scan(
		&r.ID, &r.EventID, &r.ParticipantID, &r.Status, &r.JoinedAt,
		&r.ReminderSent, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RSVPRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `INSERT INTO rsvps (id, event_id, participant_id, status, joined_at,
				reminder_sent, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		rsvp.ID, rsvp.EventID, rsvp.ParticipantID, rsvp.Status, rsvp.JoinedAt,
		rsvp.ReminderSent, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert rsvp: %w", err)
	}

	return nil
}

func (r *RSVPRepository) GetByEventAndParticipant(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvps
			  WHERE event_id = $1 AND participant_id = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, participantID)
	if err != nil {
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("scan rsvp: %w", err)
	}

	return rsvp, nil
}

func (r *RSVPRepository) GetActive(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvps
			  WHERE event_id = $1 AND participant_id = $2 AND status = $3`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, participantID, domain.RSVPStatusActive)
	if err != nil {
		return nil, fmt.Errorf("get active rsvp: %w", err)
	}

	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("scan rsvp: %w", err)
	}

	return rsvp, nil
}

func (r *RSVPRepository) Reactivate(ctx context.Context, id string, joinedAt time.Time) error {
	// Fresh registration: the previous reminder latch must not suppress the
	// new one.
	query := `UPDATE rsvps
			  SET status = $2, joined_at = $3, reminder_sent = FALSE, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.RSVPStatusActive, joinedAt)
	if err != nil {
		return fmt.Errorf("reactivate rsvp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reactivate rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRSVPNotFound
	}

	return nil
}

func (r *RSVPRepository) CancelActive(ctx context.Context, eventID, participantID string) error {
	query := `UPDATE rsvps
			  SET status = $3, updated_at = now()
			  WHERE event_id = $1 AND participant_id = $2 AND status = $4`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		eventID, participantID, domain.RSVPStatusCanceled, domain.RSVPStatusActive,
	)
	if err != nil {
		return fmt.Errorf("cancel rsvp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRSVPNotFound
	}

	return nil
}

func (r *RSVPRepository) ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvps
			  WHERE event_id = $1 AND status = $2
			  ORDER BY joined_at ASC`
	return r.queryRSVPs(ctx, query, eventID, domain.RSVPStatusActive)
}

func (r *RSVPRepository) ListActiveByParticipant(ctx context.Context, participantID string) ([]*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvps
			  WHERE participant_id = $1 AND status = $2
			  ORDER BY joined_at DESC`
	return r.queryRSVPs(ctx, query, participantID, domain.RSVPStatusActive)
}

func (r *RSVPRepository) ListAttendees(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	query := `SELECT u.id, u.first_name, u.last_name, u.email, r.joined_at
			  FROM rsvps r
			  JOIN users u ON u.id = r.participant_id
			  WHERE r.event_id = $1 AND r.status = $2
			  ORDER BY r.joined_at ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.RSVPStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var attendees []domain.Attendee
	for rows.Next() {
		var (
			a                   domain.Attendee
			firstName, lastName string
		)
		if err = rows.Scan(&a.ParticipantID, &firstName, &lastName, &a.Email, &a.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		a.Name = firstName + " " + lastName
		attendees = append(attendees, a)
	}

	return attendees, rows.Err()
}

func (r *RSVPRepository) CountActive(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1 AND status = $2`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, domain.RSVPStatusActive)
	if err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}

	var count int
	if err = row.Scan(&count); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return count, nil
}

func (r *RSVPRepository) PendingReminders(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + `
			  FROM rsvps
			  WHERE event_id = $1 AND status = $2 AND reminder_sent = FALSE`
	return r.queryRSVPs(ctx, query, eventID, domain.RSVPStatusActive)
}

func (r *RSVPRepository) MarkReminderSent(ctx context.Context, id string) error {
	query := `UPDATE rsvps
			  SET reminder_sent = TRUE, updated_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	return nil
}

func (r *RSVPRepository) DeleteByEvent(ctx context.Context, eventID string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM rsvps WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete rsvps by event: %w", err)
	}

	return nil
}

func (r *RSVPRepository) queryRSVPs(ctx context.Context, query string, args ...any) ([]*domain.RSVP, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query rsvps: %w", err)
	}
	defer rows.Close()

	var res []*domain.RSVP
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		res = append(res, rsvp)
	}

	return res, rows.Err()
}
