package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/handler/dto"
	hmocks "github.com/HarshAvichal/EventEase/internal/handler/mocks"
	"github.com/HarshAvichal/EventEase/internal/middleware"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// identity stubs the auth middleware so handlers see a logged-in caller.
func identity(userID string, role domain.Role) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, string(role))
		c.Next()
	}
}

func setupRouter(t *testing.T, userID string, role domain.Role) (*hmocks.MockEventSvc, *hmocks.MockRSVPSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	rsvpSvc := hmocks.NewMockRSVPSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)
	feedbackSvc := hmocks.NewMockFeedbackSvc(t)

	h := NewHandler(eventSvc, rsvpSvc, userSvc, feedbackSvc, fixedClock{now: testNow})

	r := ginext.New("test")
	api := r.Group("/api/v1", identity(userID, role))
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.POST("/events/", h.CreateEvent)
		api.GET("/events/details/:id", h.GetEventDetails)
		api.POST("/events/:id/rsvp", h.RegisterRSVP)
		api.GET("/events/:id/rsvp/count", h.RSVPCount)
	}

	return eventSvc, rsvpSvc, userSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, "org1", domain.RoleOrganizer)

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		MeetingLink: "https://meet.jit.si/EventEase-x",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
		CreatedAt:   testNow,
	}
	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/", dto.CreateEventRequest{
		Title:     "Go Meetup",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Go Meetup", resp.Title)
	assert.Equal(t, "upcoming", resp.ComputedStatus)
}

func TestHandler_CreateEvent_Conflict(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, "org1", domain.RoleOrganizer)

	eventSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, &domain.ScheduleConflictError{
		Title:     "Standup",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/", dto.CreateEventRequest{
		Title:     "Go Meetup",
		Date:      "2026-09-15",
		StartTime: "10:30",
		EndTime:   "11:30",
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "Standup")
}

func TestHandler_GetEventDetails_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t, "u1", domain.RoleParticipant)

	id := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, id, "u1", domain.RoleParticipant).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/v1/events/details/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEventDetails_BadID(t *testing.T) {
	_, _, _, r := setupRouter(t, "u1", domain.RoleParticipant)

	w := doJSON(t, r, http.MethodGet, "/api/v1/events/details/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RegisterRSVP_AlreadyRegistered(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t, "u1", domain.RoleParticipant)

	id := uuid.New().String()
	rsvpSvc.EXPECT().Register(mock.Anything, id, "u1").Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/"+id+"/rsvp", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_RegisterRSVP_EventStarted(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t, "u1", domain.RoleParticipant)

	id := uuid.New().String()
	rsvpSvc.EXPECT().Register(mock.Anything, id, "u1").Return(nil, domain.ErrEventStarted)

	w := doJSON(t, r, http.MethodPost, "/api/v1/events/"+id+"/rsvp", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RSVPCount(t *testing.T) {
	_, rsvpSvc, _, r := setupRouter(t, "u1", domain.RoleParticipant)

	id := uuid.New().String()
	rsvpSvc.EXPECT().Count(mock.Anything, id).Return(42, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/events/"+id+"/rsvp/count", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["count"])
}

func TestHandler_Signup_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, "", "")

	user := &domain.User{
		ID:        uuid.New().String(),
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@gmail.com",
		Role:      domain.RoleParticipant,
		CreatedAt: testNow,
	}
	pair := domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(user, pair, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", dto.SignupRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@gmail.com",
		Password:  "Str0ng!pass",
		Role:      "participant",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@gmail.com", resp.User.Email)
	assert.Equal(t, "access", resp.AccessToken)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, userSvc, r := setupRouter(t, "", "")

	userSvc.EXPECT().Login(mock.Anything, "alice@gmail.com", "wrong").
		Return(nil, domain.TokenPair{}, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", dto.LoginRequest{
		Email:    "alice@gmail.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
