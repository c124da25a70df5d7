package ports

import (
	"context"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// SetRefreshToken rotates the persisted refresh token; nil revokes it.
	SetRefreshToken(ctx context.Context, id string, token *string) error
	GetByRefreshToken(ctx context.Context, token string) (*domain.User, error)

	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)

	Delete(ctx context.Context, id string) error
}
