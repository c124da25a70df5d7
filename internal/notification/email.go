package notification

import (
	"context"
	"fmt"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
)

// EmailNotifier composes the product emails and hands them to a Mailer.
// Callers own the delivery contract: the scheduler wraps these in retries,
// everything else treats them as best-effort.
type EmailNotifier struct {
	mailer ports.Mailer
}

var _ ports.Notifier = (*EmailNotifier)(nil)

func NewEmailNotifier(mailer ports.Mailer) *EmailNotifier {
	return &EmailNotifier{mailer: mailer}
}

func (n *EmailNotifier) SendRSVPConfirmation(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>You have successfully registered for the event <strong>%s</strong>.</p>
<p><strong>Event Details:</strong></p>
<ul>
	<li>Date: %s</li>
	<li>Time: %s - %s (UTC)</li>
	<li>Meeting Link: <a href="%s">Join the event</a></li>
</ul>
<p>Thank you for registering! We look forward to seeing you at the event.</p>`,
		participant.FirstName, event.Title, event.Date, event.StartTime, event.EndTime, event.MeetingLink,
	)
	return n.mailer.Send(ctx, participant.Email, "RSVP Confirmation: "+event.Title, body)
}

func (n *EmailNotifier) SendRSVPCancellation(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>You have successfully canceled your RSVP for the event <strong>%s</strong>.</p>
<p><strong>Event Details:</strong></p>
<ul>
	<li>Date: %s</li>
	<li>Time: %s - %s (UTC)</li>
</ul>
<p>We hope to see you at our future events.</p>`,
		participant.FirstName, event.Title, event.Date, event.StartTime, event.EndTime,
	)
	return n.mailer.Send(ctx, participant.Email, "RSVP Canceled: "+event.Title, body)
}

func (n *EmailNotifier) SendReminder(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>This is a reminder for the upcoming event <strong>%s</strong>.</p>
<p><strong>Event Details:</strong></p>
<ul>
	<li>Date: %s</li>
	<li>Time: %s - %s (UTC)</li>
</ul>
<p>Join using the meeting link: <a href="%s">%s</a></p>
<p>We look forward to seeing you there!</p>`,
		participant.FirstName, event.Title, event.Date, event.StartTime, event.EndTime,
		event.MeetingLink, event.MeetingLink,
	)
	return n.mailer.Send(ctx, participant.Email, fmt.Sprintf("Reminder: Upcoming Event %q", event.Title), body)
}

func (n *EmailNotifier) SendEventLiveOrganizer(ctx context.Context, organizer *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Your event <strong>%s</strong> is now live!</p>
<p>Meeting Link: <a href="%s">%s</a></p>
<p>Best of luck with your event!</p>`,
		organizer.FirstName, event.Title, event.MeetingLink, event.MeetingLink,
	)
	return n.mailer.Send(ctx, organizer.Email, "Your Event is Now Live: "+event.Title, body)
}

func (n *EmailNotifier) SendEventLiveParticipant(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>The event <strong>%s</strong> is now live!</p>
<p>Join using the meeting link: <a href="%s">%s</a></p>
<p>We hope you enjoy the event!</p>`,
		participant.FirstName, event.Title, event.MeetingLink, event.MeetingLink,
	)
	return n.mailer.Send(ctx, participant.Email, "Event Now Live: "+event.Title, body)
}

func (n *EmailNotifier) SendScheduleChange(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>The event <strong>%s</strong> you registered for has been updated.</p>
<p><strong>New Schedule:</strong><br>Date: %s<br>Time: %s - %s (UTC)</p>
<p>Please check the event details for more information.</p>`,
		participant.FirstName, event.Title, event.Date, event.StartTime, event.EndTime,
	)
	return n.mailer.Send(ctx, participant.Email, "Event Updated: "+event.Title, body)
}

func (n *EmailNotifier) SendEventCanceled(ctx context.Context, participant *domain.User, event *domain.Event) error {
	body := fmt.Sprintf(
		`<p>Dear %s,</p>
<p>We regret to inform you that the event <strong>%s</strong>, scheduled for
<strong>%s</strong> from <strong>%s</strong> to <strong>%s</strong>,
has been canceled by the organizer.</p>
<p>We apologize for the inconvenience caused.</p>`,
		participant.FirstName, event.Title, event.Date, event.StartTime, event.EndTime,
	)
	return n.mailer.Send(ctx, participant.Email, "Event Canceled: "+event.Title, body)
}

func (n *EmailNotifier) SendPasswordReset(ctx context.Context, user *domain.User, resetURL string) error {
	body := fmt.Sprintf(
		`<p>Hello <b>%s</b>,</p>
<p>We received a request to reset the password for your EventEase account.
Click the link below to reset your password. This link will expire in <b>1 hour</b>.</p>
<p><a href="%s">Reset Password</a></p>
<p>If you didn't request this password reset, please ignore this email.
For security, this link can only be used once.</p>
<p>If the link above doesn't work, copy and paste this URL into your browser:<br>%s</p>`,
		user.FirstName, resetURL, resetURL,
	)
	return n.mailer.Send(ctx, user.Email, "Password Reset Request - EventEase", body)
}
