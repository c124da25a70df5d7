package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	jitsiPrefix      = "https://meet.jit.si/"
	defaultThumbnail = "https://via.placeholder.com/300x200?text=No+Thumbnail"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type EventService struct {
	eventRepo ports.EventRepo
	rsvpRepo  ports.RSVPRepo
	userRepo  ports.UserRepo
	notifier  ports.Notifier
	clock     ports.Clock
	logger    logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	rsvpRepo ports.RSVPRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	clock ports.Clock,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		rsvpRepo:  rsvpRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// normalizeTime accepts H:MM or HH:MM and returns zero-padded HH:MM.
func normalizeTime(t string) (string, error) {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: invalid time format: %s, use HH:MM (e.g., 13:00 or 1:00)", domain.ErrValidation, t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return "", fmt.Errorf("%w: invalid time format: %s, use HH:MM (e.g., 13:00 or 1:00)", domain.ErrValidation, t)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: invalid time format: %s, use HH:MM (e.g., 13:00 or 1:00)", domain.ErrValidation, t)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" || input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, fmt.Errorf("%w: title, date, startTime, and endTime are required", domain.ErrValidation)
	}
	if !dateRe.MatchString(input.Date) {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD (e.g., 2024-12-31)", domain.ErrValidation)
	}

	startTime, err := normalizeTime(input.StartTime)
	if err != nil {
		return nil, err
	}
	endTime, err := normalizeTime(input.EndTime)
	if err != nil {
		return nil, err
	}
	if startTime >= endTime {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}

	start, err := domain.CombineUTC(input.Date, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date", domain.ErrValidation)
	}
	if start.Before(s.clock.Now()) {
		return nil, fmt.Errorf("%w: cannot create an event in the past", domain.ErrValidation)
	}

	meetingLink := input.MeetingLink
	if meetingLink == "" {
		meetingLink = jitsiPrefix + "EventEase-" + uuid.New().String()
	} else if !strings.HasPrefix(meetingLink, jitsiPrefix) {
		return nil, fmt.Errorf("%w: meeting link must be a valid Jitsi link", domain.ErrValidation)
	}

	conflict, err := s.eventRepo.FindConflict(ctx, input.OrganizerID, input.Date, startTime, endTime, "")
	if err != nil {
		return nil, fmt.Errorf("check conflict: %w", err)
	}
	if conflict != nil {
		return nil, &domain.ScheduleConflictError{
			Title:     conflict.Title,
			Date:      conflict.Date,
			StartTime: conflict.StartTime,
			EndTime:   conflict.EndTime,
		}
	}

	thumbnail := input.Thumbnail
	if thumbnail == "" {
		thumbnail = defaultThumbnail
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		StartTime:   startTime,
		EndTime:     endTime,
		MeetingLink: meetingLink,
		Thumbnail:   thumbnail,
		OrganizerID: input.OrganizerID,
		Status:      domain.EventStatusUpcoming,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
		logger.String("date", event.Date),
	)

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id, organizerID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("%w: you are not authorized to update this event", domain.ErrForbidden)
	}

	oldDate, oldStart, oldEnd := event.Date, event.StartTime, event.EndTime

	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Date != nil {
		if !dateRe.MatchString(*input.Date) {
			return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD (e.g., 2024-12-31)", domain.ErrValidation)
		}
		event.Date = *input.Date
	}
	if input.StartTime != nil {
		t, err := normalizeTime(*input.StartTime)
		if err != nil {
			return nil, err
		}
		event.StartTime = t
	}
	if input.EndTime != nil {
		t, err := normalizeTime(*input.EndTime)
		if err != nil {
			return nil, err
		}
		event.EndTime = t
	}
	if event.StartTime >= event.EndTime {
		return nil, fmt.Errorf("%w: end time must be after start time", domain.ErrValidation)
	}
	if input.MeetingLink != nil {
		if !strings.HasPrefix(*input.MeetingLink, jitsiPrefix) {
			return nil, fmt.Errorf("%w: meeting link must be a valid Jitsi link", domain.ErrValidation)
		}
		event.MeetingLink = *input.MeetingLink
	}
	if input.Thumbnail != nil {
		event.Thumbnail = *input.Thumbnail
	}

	scheduleChanged := event.Date != oldDate || event.StartTime != oldStart || event.EndTime != oldEnd
	if scheduleChanged {
		conflict, err := s.eventRepo.FindConflict(ctx, organizerID, event.Date, event.StartTime, event.EndTime, event.ID)
		if err != nil {
			return nil, fmt.Errorf("check conflict: %w", err)
		}
		if conflict != nil {
			return nil, &domain.ScheduleConflictError{
				Title:     conflict.Title,
				Date:      conflict.Date,
				StartTime: conflict.StartTime,
				EndTime:   conflict.EndTime,
			}
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if scheduleChanged {
		go s.notifyActive(context.WithoutCancel(ctx), event, s.notifier.SendScheduleChange)
	}

	return event, nil
}

func (s *EventService) Cancel(ctx context.Context, id, organizerID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != organizerID {
		return nil, fmt.Errorf("%w: only the organizer can cancel this event", domain.ErrForbidden)
	}

	status := domain.ResolveStatus(event, s.clock.Now())
	if status == domain.EventStatusCompleted {
		return nil, fmt.Errorf("%w: cannot cancel an event that has already completed", domain.ErrValidation)
	}
	if status == domain.EventStatusCanceled {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, domain.ErrEventCanceled)
	}

	if _, err := s.eventRepo.UpdateStatusIf(ctx, id, event.Status, domain.EventStatusCanceled); err != nil {
		return nil, fmt.Errorf("cancel event: %w", err)
	}
	event.Status = domain.EventStatusCanceled

	go s.notifyActive(context.WithoutCancel(ctx), event, s.notifier.SendEventCanceled)

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id, organizerID string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OrganizerID != organizerID {
		return fmt.Errorf("%w: only the organizer can delete this event", domain.ErrForbidden)
	}

	// Fire-and-forget: the roster is read before the cascade delete removes
	// it, and the sends outlive the request.
	rsvps, err := s.rsvpRepo.ListActiveByEvent(ctx, id)
	if err != nil {
		s.logger.Error("failed to list rsvps before delete",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
	} else {
		go s.notifyRSVPs(context.WithoutCancel(ctx), event, rsvps, s.notifier.SendEventCanceled)
	}

	if err := s.rsvpRepo.DeleteByEvent(ctx, id); err != nil {
		return fmt.Errorf("delete rsvps: %w", err)
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("organizer_id", organizerID),
	)

	return nil
}

func (s *EventService) notifyActive(ctx context.Context, event *domain.Event, send func(context.Context, *domain.User, *domain.Event) error) {
	rsvps, err := s.rsvpRepo.ListActiveByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list rsvps for notification",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	s.notifyRSVPs(ctx, event, rsvps, send)
}

func (s *EventService) notifyRSVPs(ctx context.Context, event *domain.Event, rsvps []*domain.RSVP, send func(context.Context, *domain.User, *domain.Event) error) {
	for _, rsvp := range rsvps {
		participant, err := s.userRepo.GetByID(ctx, rsvp.ParticipantID)
		if err != nil {
			s.logger.Error("failed to get participant for notification",
				logger.String("participant_id", rsvp.ParticipantID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if err := send(ctx, participant, event); err != nil {
			s.logger.Error("failed to send event notification",
				logger.String("event_id", event.ID),
				logger.String("participant_id", participant.ID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

// GetDetails returns the role-aware detail view. Organizers who own the
// event get the attendee roster; participants get registration state and a
// meeting link gated on having an active RSVP.
func (s *EventService) GetDetails(ctx context.Context, id, viewerID string, viewerRole domain.Role) (*domain.EventDetails, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	details := &domain.EventDetails{
		Event:          *event,
		ComputedStatus: domain.ResolveStatus(event, now),
	}

	count, err := s.rsvpRepo.CountActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count rsvps: %w", err)
	}
	details.RegistrationCount = count

	if viewerRole == domain.RoleOrganizer && event.OrganizerID == viewerID {
		attendees, err := s.rsvpRepo.ListAttendees(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list attendees: %w", err)
		}
		details.Attendees = attendees
		return details, nil
	}

	if viewerRole == domain.RoleParticipant {
		_, err := s.rsvpRepo.GetActive(ctx, id, viewerID)
		switch {
		case err == nil:
			details.ViewerRegistered = true
		case errors.Is(err, domain.ErrRSVPNotFound):
			details.Event.MeetingLink = "To get the link, you need to RSVP first."
		default:
			return nil, fmt.Errorf("check rsvp: %w", err)
		}
		if details.ComputedStatus == domain.EventStatusCompleted {
			details.Event.MeetingLink = "This event has already ended."
		}
	}

	return details, nil
}

func (s *EventService) ListOrganizerUpcoming(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error) {
	return s.eventRepo.ListOrganizerUpcoming(ctx, organizerID, s.clock.Now(), page, limit)
}

func (s *EventService) ListOrganizerCompleted(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error) {
	return s.eventRepo.ListOrganizerCompleted(ctx, organizerID, s.clock.Now(), page, limit)
}

func (s *EventService) ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	return s.eventRepo.ListOrganizerAll(ctx, organizerID)
}

func (s *EventService) ListUpcoming(ctx context.Context, page, limit int) (*domain.EventPage, error) {
	return s.eventRepo.ListUpcoming(ctx, s.clock.Now(), page, limit)
}

func (s *EventService) ListCompleted(ctx context.Context, page, limit int) (*domain.EventPage, error) {
	return s.eventRepo.ListCompleted(ctx, s.clock.Now(), page, limit)
}

// MyEvents buckets the participant's active registrations by derived status.
type MyEvents struct {
	Upcoming  []*domain.Event `json:"upcoming"`
	Live      []*domain.Event `json:"live"`
	Completed []*domain.Event `json:"completed"`
}

func (s *EventService) ListParticipantMyEvents(ctx context.Context, participantID string) (*MyEvents, error) {
	rsvps, err := s.rsvpRepo.ListActiveByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	now := s.clock.Now()
	my := &MyEvents{}
	for _, rsvp := range rsvps {
		event, err := s.eventRepo.GetByID(ctx, rsvp.EventID)
		if err != nil {
			s.logger.Error("failed to load rsvp'd event",
				logger.String("event_id", rsvp.EventID),
				logger.String("error", err.Error()),
			)
			continue
		}
		switch domain.ResolveStatus(event, now) {
		case domain.EventStatusUpcoming:
			my.Upcoming = append(my.Upcoming, event)
		case domain.EventStatusLive:
			my.Live = append(my.Live, event)
		case domain.EventStatusCompleted:
			my.Completed = append(my.Completed, event)
		}
		// Canceled events are skipped.
	}

	return my, nil
}

func (s *EventService) Search(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.Search(ctx)
}
