package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	"github.com/HarshAvichal/EventEase/internal/service"
	"github.com/HarshAvichal/EventEase/internal/service/ports"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id, organizerID string, input domain.UpdateEventInput) (*domain.Event, error)
	Cancel(ctx context.Context, id, organizerID string) (*domain.Event, error)
	Delete(ctx context.Context, id, organizerID string) error
	GetDetails(ctx context.Context, id, viewerID string, viewerRole domain.Role) (*domain.EventDetails, error)
	ListOrganizerUpcoming(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error)
	ListOrganizerCompleted(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error)
	ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error)
	ListUpcoming(ctx context.Context, page, limit int) (*domain.EventPage, error)
	ListCompleted(ctx context.Context, page, limit int) (*domain.EventPage, error)
	ListParticipantMyEvents(ctx context.Context, participantID string) (*service.MyEvents, error)
	Search(ctx context.Context) ([]*domain.Event, error)
}

type RSVPSvc interface {
	Register(ctx context.Context, eventID, participantID string) (*domain.RSVP, error)
	Cancel(ctx context.Context, eventID, participantID string) error
	Count(ctx context.Context, eventID string) (int, error)
	Attendees(ctx context.Context, eventID, viewerID string, viewerRole domain.Role) ([]domain.Attendee, error)
}

type UserSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, domain.TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, id string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type FeedbackSvc interface {
	Submit(ctx context.Context, eventID, participantID string, rating int, comment string) (*domain.Feedback, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error)
}

type Handler struct {
	eventService    EventSvc
	rsvpService     RSVPSvc
	userService     UserSvc
	feedbackService FeedbackSvc
	clock           ports.Clock
}

func NewHandler(eventService EventSvc, rsvpService RSVPSvc, userService UserSvc, feedbackService FeedbackSvc, clock ports.Clock) *Handler {
	return &Handler{
		eventService:    eventService,
		rsvpService:     rsvpService,
		userService:     userService,
		feedbackService: feedbackService,
		clock:           clock,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.ScheduleConflictError

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRSVPNotFound),
		errors.Is(err, domain.ErrFeedbackNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: err.Error()})

	case errors.As(err, &conflict),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEventStarted),
		errors.Is(err, domain.ErrEventLiveOrCompleted),
		errors.Is(err, domain.ErrEventCanceled),
		errors.Is(err, domain.ErrResetTokenInvalid):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}

func intQuery(c *ginext.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func pageParams(c *ginext.Context) (page, limit int) {
	page = intQuery(c, "page", 1)
	limit = intQuery(c, "limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
