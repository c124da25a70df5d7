package ports

import (
	"context"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

// Mailer is the raw delivery channel. No delivery-receipt tracking; an error
// means the send did not happen.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Notifier composes and sends the product emails. Callers decide the
// delivery contract: the scheduler retries reminder and live sends, every
// other call site is best-effort.
type Notifier interface {
	SendRSVPConfirmation(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendRSVPCancellation(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendReminder(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendEventLiveOrganizer(ctx context.Context, organizer *domain.User, event *domain.Event) error
	SendEventLiveParticipant(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendScheduleChange(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendEventCanceled(ctx context.Context, participant *domain.User, event *domain.Event) error
	SendPasswordReset(ctx context.Context, user *domain.User, resetURL string) error
}
