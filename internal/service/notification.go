package service

import (
	"context"
	"time"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	reminderLead   = 24 * time.Hour
	reminderWindow = time.Hour
)

// NotificationService implements the three scheduler sweeps. Every sweep is
// idempotent per invocation: selection filters plus the persisted flags
// (reminder_sent, organizer_live_notified, status) make a repeated run a
// no-op. A single event's or RSVP's failure never aborts the rest of the
// sweep; errors are logged and the loop moves on.
type NotificationService struct {
	eventRepo ports.EventRepo
	rsvpRepo  ports.RSVPRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	clock     ports.Clock
	strategy  retry.Strategy
	logger    logger.Logger
}

func NewNotificationService(
	eventRepo ports.EventRepo,
	rsvpRepo ports.RSVPRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *NotificationService {
	return &NotificationService{
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		clock:     clock,
		// 3 attempts, no backoff, within the same sweep invocation.
		strategy: retry.Strategy{Attempts: 3, Delay: time.Second, Backoff: 1},
		logger:   logger,
	}
}

// SendReminders is the hourly sweep: events starting within [24h, 25h) from
// now get a reminder per active RSVP that has not had one. The window is as
// wide as the sweep period, so adjacent runs neither skip nor double-count
// an event.
func (s *NotificationService) SendReminders(ctx context.Context) error {
	now := s.clock.Now()
	events, err := s.eventRepo.DueForReminder(ctx, now.Add(reminderLead), now.Add(reminderLead+reminderWindow))
	if err != nil {
		return err
	}

	for _, event := range events {
		rsvps, err := s.rsvpRepo.PendingReminders(ctx, event.ID)
		if err != nil {
			s.logger.Error("failed to list pending reminders",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		for _, rsvp := range rsvps {
			s.sendReminder(ctx, event, rsvp)
		}
	}

	return nil
}

func (s *NotificationService) sendReminder(ctx context.Context, event *domain.Event, rsvp *domain.RSVP) {
	start, err := event.StartsAt()
	if err != nil {
		s.logger.Error("unparsable event schedule",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	// Re-check the window against a fresh instant: a delayed sweep may have
	// drifted past [24h, 25h) between selection and processing. A missed
	// window is latched as sent so it is never retried against a moving
	// target.
	lead := start.Sub(s.clock.Now())
	if lead < reminderLead || lead >= reminderLead+reminderWindow {
		s.logger.Warn("reminder window missed, latching without send",
			logger.String("event_id", event.ID),
			logger.String("rsvp_id", rsvp.ID),
			logger.Duration("lead", lead),
		)
		s.markReminderSent(ctx, rsvp)
		return
	}

	participant, err := s.userRepo.GetByID(ctx, rsvp.ParticipantID)
	if err != nil {
		s.logger.Error("failed to get participant for reminder",
			logger.String("participant_id", rsvp.ParticipantID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = retry.Do(func() error {
		return s.notifier.SendReminder(ctx, participant, event)
	}, s.strategy)
	if err != nil {
		// Latch stays false: the next hourly run retries while the event is
		// still inside the window. At-least-once, never silently dropped.
		s.logger.Error("reminder send failed after retries",
			logger.String("event_id", event.ID),
			logger.String("participant_id", participant.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	s.markReminderSent(ctx, rsvp)
	s.logger.Info("reminder sent",
		logger.String("event_id", event.ID),
		logger.String("participant_id", participant.ID),
	)
}

func (s *NotificationService) markReminderSent(ctx context.Context, rsvp *domain.RSVP) {
	if err := s.rsvpRepo.MarkReminderSent(ctx, rsvp.ID); err != nil {
		s.logger.Error("failed to mark reminder sent",
			logger.String("rsvp_id", rsvp.ID),
			logger.String("error", err.Error()),
		)
	}
}

// PromoteLive is the per-minute sweep flipping upcoming events whose start
// has arrived to live, then notifying the organizer (once, latched on
// organizer_live_notified) and every active participant. The status filter
// itself is the participants' duplicate suppression: once flipped, the
// event never matches again.
func (s *NotificationService) PromoteLive(ctx context.Context) error {
	events, err := s.eventRepo.DueForLive(ctx, s.clock.Now())
	if err != nil {
		return err
	}

	for _, event := range events {
		// Conditional flip re-checks status right before mutating; an
		// organizer cancel that landed since selection wins and the event
		// is skipped entirely.
		flipped, err := s.eventRepo.UpdateStatusIf(ctx, event.ID, domain.EventStatusUpcoming, domain.EventStatusLive)
		if err != nil {
			s.logger.Error("failed to flip event live",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !flipped {
			continue
		}

		s.logger.Info("event live", logger.String("event_id", event.ID))

		if !event.OrganizerLiveNotified {
			s.notifyOrganizerLive(ctx, event)
		}
		s.notifyParticipantsLive(ctx, event)
	}

	return nil
}

func (s *NotificationService) notifyOrganizerLive(ctx context.Context, event *domain.Event) {
	organizer, err := s.userRepo.GetByID(ctx, event.OrganizerID)
	if err != nil {
		s.logger.Error("failed to get organizer for live notification",
			logger.String("organizer_id", event.OrganizerID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = retry.Do(func() error {
		return s.notifier.SendEventLiveOrganizer(ctx, organizer, event)
	}, s.strategy)
	if err != nil {
		s.logger.Error("organizer live notification failed after retries",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	// Latched after a successful send: at-least-once, with a small
	// duplicate risk if this save fails after the email went out.
	if err := s.eventRepo.MarkOrganizerLiveNotified(ctx, event.ID); err != nil {
		s.logger.Error("failed to latch organizer live flag",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *NotificationService) notifyParticipantsLive(ctx context.Context, event *domain.Event) {
	rsvps, err := s.rsvpRepo.ListActiveByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list rsvps for live notification",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, rsvp := range rsvps {
		participant, err := s.userRepo.GetByID(ctx, rsvp.ParticipantID)
		if err != nil {
			s.logger.Error("failed to get participant for live notification",
				logger.String("participant_id", rsvp.ParticipantID),
				logger.String("error", err.Error()),
			)
			continue
		}
		err = retry.Do(func() error {
			return s.notifier.SendEventLiveParticipant(ctx, participant, event)
		}, s.strategy)
		if err != nil {
			s.logger.Error("participant live notification failed after retries",
				logger.String("event_id", event.ID),
				logger.String("participant_id", participant.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}

// CompleteFinished is the per-minute sweep retiring live events whose end
// has passed. No notification. The resolver keeps now == end live, so the
// selection is strictly end < now.
func (s *NotificationService) CompleteFinished(ctx context.Context) error {
	events, err := s.eventRepo.DueForCompletion(ctx, s.clock.Now())
	if err != nil {
		return err
	}

	for _, event := range events {
		flipped, err := s.eventRepo.UpdateStatusIf(ctx, event.ID, domain.EventStatusLive, domain.EventStatusCompleted)
		if err != nil {
			s.logger.Error("failed to complete event",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if flipped {
			s.logger.Info("event completed", logger.String("event_id", event.ID))
		}
	}

	return nil
}
