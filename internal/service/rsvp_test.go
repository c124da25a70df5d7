package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports/mocks"
)

func newRSVPService(t *testing.T, now time.Time) (*RSVPService, *mocks.MockRSVPRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	rsvpRepo := mocks.NewMockRSVPRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewRSVPService(rsvpRepo, eventRepo, userRepo, notifier, fixedClock{now: now}, newTestLogger(t))
	return svc, rsvpRepo, eventRepo, userRepo, notifier
}

func upcomingEvent() *domain.Event {
	return &domain.Event{
		ID:          "e1",
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
	}
}

func TestRSVPService_Register_NewRow(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, userRepo, notifier := newRSVPService(t, now)

	event := upcomingEvent()
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rsvpRepo.EXPECT().GetByEventAndParticipant(mock.Anything, "e1", "u1").Return(nil, domain.ErrRSVPNotFound)
	rsvpRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendRSVPConfirmation(mock.Anything, participant, event).Return(nil)

	rsvp, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, rsvp.ID)
	assert.Equal(t, domain.RSVPStatusActive, rsvp.Status)
	assert.Equal(t, now, rsvp.JoinedAt)
	assert.False(t, rsvp.ReminderSent)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRSVPService_Register_AlreadyRegistered(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, _, _ := newRSVPService(t, now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	rsvpRepo.EXPECT().GetByEventAndParticipant(mock.Anything, "e1", "u1").
		Return(&domain.RSVP{ID: "r1", Status: domain.RSVPStatusActive}, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRSVPService_Register_ReactivatesCanceledRow(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, userRepo, notifier := newRSVPService(t, now)

	event := upcomingEvent()
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}
	existing := &domain.RSVP{
		ID:            "r1",
		EventID:       "e1",
		ParticipantID: "u1",
		Status:        domain.RSVPStatusCanceled,
		JoinedAt:      now.Add(-48 * time.Hour),
		ReminderSent:  true,
	}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rsvpRepo.EXPECT().GetByEventAndParticipant(mock.Anything, "e1", "u1").Return(existing, nil)
	rsvpRepo.EXPECT().Reactivate(mock.Anything, "r1", now).Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendRSVPConfirmation(mock.Anything, participant, event).Return(nil)

	rsvp, err := svc.Register(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "r1", rsvp.ID) // same row, no second insert
	assert.Equal(t, domain.RSVPStatusActive, rsvp.Status)
	assert.Equal(t, now, rsvp.JoinedAt)
	assert.False(t, rsvp.ReminderSent) // fresh registration gets its own reminder

	time.Sleep(50 * time.Millisecond)
}

func TestRSVPService_Register_EventStarted(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC) // mid-event
	svc, _, eventRepo, _, _ := newRSVPService(t, now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventStarted)
}

func TestRSVPService_Register_CanceledEvent(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, _, eventRepo, _, _ := newRSVPService(t, now)

	event := upcomingEvent()
	event.Status = domain.EventStatusCanceled
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Register(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRSVPService_Cancel_Success(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, userRepo, notifier := newRSVPService(t, now)

	event := upcomingEvent()
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rsvpRepo.EXPECT().CancelActive(mock.Anything, "e1", "u1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendRSVPCancellation(mock.Anything, participant, event).Return(nil)

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestRSVPService_Cancel_AfterStart(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	svc, _, eventRepo, _, _ := newRSVPService(t, now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)

	err := svc.Cancel(context.Background(), "e1", "u1")

	assert.ErrorIs(t, err, domain.ErrEventLiveOrCompleted)
}

func TestRSVPService_Attendees_ForbiddenWithoutRSVP(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, _, _ := newRSVPService(t, now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	rsvpRepo.EXPECT().GetActive(mock.Anything, "e1", "u2").Return(nil, domain.ErrRSVPNotFound)

	_, err := svc.Attendees(context.Background(), "e1", "u2", domain.RoleParticipant)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRSVPService_Attendees_OrganizerOwner(t *testing.T) {
	now := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	svc, rsvpRepo, eventRepo, _, _ := newRSVPService(t, now)

	roster := []domain.Attendee{{ParticipantID: "u1", Name: "Alice Smith", Email: "alice@gmail.com"}}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(upcomingEvent(), nil)
	rsvpRepo.EXPECT().ListAttendees(mock.Anything, "e1").Return(roster, nil)

	attendees, err := svc.Attendees(context.Background(), "e1", "org1", domain.RoleOrganizer)

	require.NoError(t, err)
	assert.Equal(t, roster, attendees)
}
