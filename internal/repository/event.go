package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, description, date, start_time, end_time,
		meeting_link, thumbnail, organizer_id, status, organizer_live_notified,
		created_at, updated_at`

// startExpr/endExpr rebuild the stored date+time strings as naive UTC
// timestamps so sweep selections and listings compare in one zone.
const (
	startExpr = `(date::date + start_time::time)`
	endExpr   = `(date::date + end_time::time)`
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.MeetingLink, &e.Thumbnail, &e.OrganizerID, &e.Status,
		&e.OrganizerLiveNotified, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, date, start_time, end_time,
				meeting_link, thumbnail, organizer_id, status, organizer_live_notified,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime,
		e.MeetingLink, e.Thumbnail, e.OrganizerID, e.Status,
		e.OrganizerLiveNotified, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET title = $2, description = $3, date = $4, start_time = $5,
			      end_time = $6, meeting_link = $7, thumbnail = $8, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime,
		e.MeetingLink, e.Thumbnail,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) FindConflict(ctx context.Context, organizerID, date, startTime, endTime, excludeID string) (*domain.Event, error) {
	// Interval overlap on the same organizer+date: existing [start,end)
	// intersects the candidate [start,end).
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE organizer_id = $1
			    AND date = $2
			    AND status <> $3
			    AND ($6 = '' OR id <> $6)
			    AND start_time < $5
			    AND end_time > $4
			  LIMIT 1`
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		organizerID, date, domain.EventStatusCanceled, startTime, endTime, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("find conflict: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan conflict: %w", err)
	}

	return e, nil
}

func (r *EventRepository) listPage(ctx context.Context, where, order string, args []any, page, limit int) (*domain.EventPage, error) {
	countQuery := `SELECT COUNT(*) FROM events ` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, fmt.Errorf("scan count: %w", err)
	}

	if page < 1 {
		page = 1
	}
	query := fmt.Sprintf(
		`SELECT %s FROM events %s %s LIMIT %d OFFSET %d`,
		eventColumns, where, order, limit, (page-1)*limit,
	)
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &domain.EventPage{Events: events, TotalItems: total, Page: page, Limit: limit}, nil
}

func (r *EventRepository) ListOrganizerUpcoming(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error) {
	where := `WHERE organizer_id = $1 AND ` + startExpr + ` >= ($2 AT TIME ZONE 'UTC')`
	order := `ORDER BY date ASC, start_time ASC`
	return r.listPage(ctx, where, order, []any{organizerID, now}, page, limit)
}

func (r *EventRepository) ListOrganizerCompleted(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error) {
	where := `WHERE organizer_id = $1 AND ` + endExpr + ` <= ($2 AT TIME ZONE 'UTC')`
	order := `ORDER BY date DESC, end_time DESC`
	return r.listPage(ctx, where, order, []any{organizerID, now}, page, limit)
}

func (r *EventRepository) ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE organizer_id = $1
			  ORDER BY date ASC, start_time ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list organizer events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error) {
	where := `WHERE ` + startExpr + ` >= ($1 AT TIME ZONE 'UTC')`
	order := `ORDER BY date ASC, start_time ASC`
	return r.listPage(ctx, where, order, []any{now}, page, limit)
}

func (r *EventRepository) ListCompleted(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error) {
	where := `WHERE ` + endExpr + ` <= ($1 AT TIME ZONE 'UTC')`
	order := `ORDER BY date DESC, end_time DESC`
	return r.listPage(ctx, where, order, []any{now}, page, limit)
}

func (r *EventRepository) Search(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY date ASC, start_time ASC`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *EventRepository) DueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status <> $1
			    AND ` + startExpr + ` >= ($2 AT TIME ZONE 'UTC')
			    AND ` + startExpr + ` < ($3 AT TIME ZONE 'UTC')`
	return r.queryEvents(ctx, query, domain.EventStatusCanceled, from, to)
}

func (r *EventRepository) DueForLive(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1
			    AND ` + startExpr + ` <= ($2 AT TIME ZONE 'UTC')
			    AND ` + endExpr + ` > ($2 AT TIME ZONE 'UTC')`
	return r.queryEvents(ctx, query, domain.EventStatusUpcoming, now)
}

func (r *EventRepository) DueForCompletion(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE status = $1
			    AND ` + endExpr + ` < ($2 AT TIME ZONE 'UTC')`
	return r.queryEvents(ctx, query, domain.EventStatusLive, now)
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *EventRepository) UpdateStatusIf(ctx context.Context, id string, from, to domain.EventStatus) (bool, error) {
	query := `UPDATE events
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("update event status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("status rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *EventRepository) MarkOrganizerLiveNotified(ctx context.Context, id string) error {
	query := `UPDATE events
			  SET organizer_live_notified = TRUE, updated_at = now()
			  WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id); err != nil {
		return fmt.Errorf("mark organizer notified: %w", err)
	}

	return nil
}
