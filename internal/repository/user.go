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

const userColumns = `id, first_name, last_name, email, role, password_hash,
		refresh_token, reset_password_token, reset_password_expires,
		created_at, updated_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.PasswordHash,
		&u.RefreshToken, &u.ResetPasswordToken, &u.ResetPasswordExpires,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, first_name, last_name, email, role,
				password_hash, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.Role, u.PasswordHash, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE refresh_token = $1`, token)
}

func (r *UserRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	u, err := r.getOne(ctx, `WHERE reset_password_token = $1 AND reset_password_expires > $2`, token, now)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrResetTokenInvalid
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) getOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	query := `UPDATE users
			  SET first_name = $2, last_name = $3, updated_at = now()
			  WHERE id = $1`
	return r.execOne(ctx, query, id, firstName, lastName)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	// Resetting the password consumes any outstanding reset token.
	query := `UPDATE users
			  SET password_hash = $2, reset_password_token = NULL,
			      reset_password_expires = NULL, updated_at = now()
			  WHERE id = $1`
	return r.execOne(ctx, query, id, passwordHash)
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id string, token *string) error {
	query := `UPDATE users
			  SET refresh_token = $2, updated_at = now()
			  WHERE id = $1`
	return r.execOne(ctx, query, id, token)
}

func (r *UserRepository) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	query := `UPDATE users
			  SET reset_password_token = $2, reset_password_expires = $3, updated_at = now()
			  WHERE id = $1`
	return r.execOne(ctx, query, id, token, expires)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, `DELETE FROM users WHERE id = $1`, id)
}

func (r *UserRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("exec user update: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}
