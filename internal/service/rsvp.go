package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RSVPService struct {
	rsvpRepo  ports.RSVPRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	clock     ports.Clock
	logger    logger.Logger
}

func NewRSVPService(
	rsvpRepo ports.RSVPRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *RSVPService {
	return &RSVPService{
		rsvpRepo:  rsvpRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Register activates an RSVP for the participant. A canceled row for the
// same pair is reactivated with a fresh joinedAt and a cleared reminder
// latch; the pair never grows a second row.
func (s *RSVPService) Register(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	switch domain.ResolveStatus(event, s.clock.Now()) {
	case domain.EventStatusCanceled:
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrEventCanceled)
	case domain.EventStatusLive, domain.EventStatusCompleted:
		return nil, domain.ErrEventStarted
	}

	rsvp, err := s.rsvpRepo.GetByEventAndParticipant(ctx, eventID, participantID)
	switch {
	case err == nil && rsvp.Status == domain.RSVPStatusActive:
		return nil, domain.ErrAlreadyRegistered
	case err == nil:
		rsvp.Status = domain.RSVPStatusActive
		rsvp.JoinedAt = s.clock.Now()
		rsvp.ReminderSent = false
		if err := s.rsvpRepo.Reactivate(ctx, rsvp.ID, rsvp.JoinedAt); err != nil {
			return nil, fmt.Errorf("reactivate rsvp: %w", err)
		}
	case errors.Is(err, domain.ErrRSVPNotFound):
		rsvp = &domain.RSVP{
			ID:            uuid.New().String(),
			EventID:       eventID,
			ParticipantID: participantID,
			Status:        domain.RSVPStatusActive,
			JoinedAt:      s.clock.Now(),
		}
		if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
			return nil, fmt.Errorf("create rsvp: %w", err)
		}
	default:
		return nil, fmt.Errorf("get rsvp: %w", err)
	}

	s.logger.Info("rsvp registered",
		logger.String("rsvp_id", rsvp.ID),
		logger.String("event_id", eventID),
		logger.String("participant_id", participantID),
	)

	// Confirmation is best-effort: a failed email never fails the
	// registration.
	go s.sendBestEffort(context.WithoutCancel(ctx), participantID, event, s.notifier.SendRSVPConfirmation)

	return rsvp, nil
}

func (s *RSVPService) Cancel(ctx context.Context, eventID, participantID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	switch domain.ResolveStatus(event, s.clock.Now()) {
	case domain.EventStatusLive, domain.EventStatusCompleted:
		return domain.ErrEventLiveOrCompleted
	}

	if err := s.rsvpRepo.CancelActive(ctx, eventID, participantID); err != nil {
		return err
	}

	s.logger.Info("rsvp canceled",
		logger.String("event_id", eventID),
		logger.String("participant_id", participantID),
	)

	go s.sendBestEffort(context.WithoutCancel(ctx), participantID, event, s.notifier.SendRSVPCancellation)

	return nil
}

func (s *RSVPService) Count(ctx context.Context, eventID string) (int, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return 0, err
	}
	return s.rsvpRepo.CountActive(ctx, eventID)
}

// Attendees returns the roster with participant identity. Visible to the
// event's organizer and to participants holding an active RSVP; everyone
// else only gets counts through Count.
func (s *RSVPService) Attendees(ctx context.Context, eventID, viewerID string, viewerRole domain.Role) ([]domain.Attendee, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	allowed := viewerRole == domain.RoleOrganizer && event.OrganizerID == viewerID
	if !allowed {
		if _, err := s.rsvpRepo.GetActive(ctx, eventID, viewerID); err != nil {
			if errors.Is(err, domain.ErrRSVPNotFound) {
				return nil, fmt.Errorf("%w: attendee list is visible to the organizer and registered participants", domain.ErrForbidden)
			}
			return nil, fmt.Errorf("check rsvp: %w", err)
		}
	}

	return s.rsvpRepo.ListAttendees(ctx, eventID)
}

func (s *RSVPService) sendBestEffort(ctx context.Context, participantID string, event *domain.Event, send func(context.Context, *domain.User, *domain.Event) error) {
	participant, err := s.userRepo.GetByID(ctx, participantID)
	if err != nil {
		s.logger.Error("failed to get participant for rsvp email",
			logger.String("participant_id", participantID),
			logger.String("error", err.Error()),
		)
		return
	}
	if err := send(ctx, participant, event); err != nil {
		s.logger.Error("failed to send rsvp email",
			logger.String("event_id", event.ID),
			logger.String("participant_id", participantID),
			logger.String("error", err.Error()),
		)
	}
}
