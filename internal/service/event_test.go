package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newEventService(t *testing.T, now time.Time) (*EventService, *mocks.MockEventRepo, *mocks.MockRSVPRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRSVPRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewEventService(eventRepo, rsvpRepo, userRepo, notifier, fixedClock{now: now}, newTestLogger(t))
	return svc, eventRepo, rsvpRepo, userRepo, notifier
}

func TestEventService_Create_Success(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newEventService(t, now)

	eventRepo.EXPECT().FindConflict(mock.Anything, "org1", "2026-09-15", "09:00", "10:30", "").Return(nil, nil)
	eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Go Meetup",
		Description: "Monthly meetup",
		Date:        "2026-09-15",
		StartTime:   "9:00", // normalized to 09:00
		EndTime:     "10:30",
		OrganizerID: "org1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "09:00", event.StartTime)
	assert.Equal(t, "10:30", event.EndTime)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.True(t, strings.HasPrefix(event.MeetingLink, "https://meet.jit.si/"))
	assert.NotEmpty(t, event.Thumbnail)
}

func TestEventService_Create_EndNotAfterStart(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newEventService(t, now)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "10:00",
		OrganizerID: "org1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_InPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newEventService(t, now)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Go Meetup",
		Date:        "2026-08-31",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_BadMeetingLink(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, _, _, _, _ := newEventService(t, now)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		MeetingLink: "https://zoom.us/j/12345",
		OrganizerID: "org1",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_ScheduleConflict(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newEventService(t, now)

	existing := &domain.Event{
		ID:        "e-existing",
		Title:     "Standup",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
	eventRepo.EXPECT().FindConflict(mock.Anything, "org1", "2026-09-15", "10:30", "11:30", "").Return(existing, nil)

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:30",
		EndTime:     "11:30",
		OrganizerID: "org1",
	})

	require.Error(t, err)
	assert.True(t, domain.IsScheduleConflict(err))
}

func TestEventService_Update_NotOwner(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newEventService(t, now)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)

	title := "New title"
	_, err := svc.Update(context.Background(), "e1", "org2", domain.UpdateEventInput{Title: &title})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Update_ScheduleChangeNotifiesParticipants(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newEventService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Title:       "Go Meetup",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
	}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().FindConflict(mock.Anything, "org1", "2026-09-16", "10:00", "11:00", "e1").Return(nil, nil)
	eventRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	rsvpRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").
		Return([]*domain.RSVP{{ID: "r1", EventID: "e1", ParticipantID: "u1"}}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendScheduleChange(mock.Anything, participant, mock.Anything).Return(nil)

	date := "2026-09-16"
	updated, err := svc.Update(context.Background(), "e1", "org1", domain.UpdateEventInput{Date: &date})

	require.NoError(t, err)
	assert.Equal(t, "2026-09-16", updated.Date)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestEventService_Cancel_LiveEvent(t *testing.T) {
	// Mid-event: live events can still be canceled.
	now := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, _, _ := newEventService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusLive,
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	eventRepo.EXPECT().UpdateStatusIf(mock.Anything, "e1", domain.EventStatusLive, domain.EventStatusCanceled).Return(true, nil)
	rsvpRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").Return(nil, nil)

	canceled, err := svc.Cancel(context.Background(), "e1", "org1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusCanceled, canceled.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestEventService_Cancel_CompletedRejected(t *testing.T) {
	now := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newEventService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusLive, // stale cache, resolver says completed
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Cancel(context.Background(), "e1", "org1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Cancel_AlreadyCanceled(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newEventService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusCanceled,
	}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Cancel(context.Background(), "e1", "org1")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Delete_NotifiesRoster(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newEventService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
	}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	rsvpRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").
		Return([]*domain.RSVP{{ID: "r1", EventID: "e1", ParticipantID: "u1"}}, nil)
	rsvpRepo.EXPECT().DeleteByEvent(mock.Anything, "e1").Return(nil)
	eventRepo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendEventCanceled(mock.Anything, participant, event).Return(nil)

	err := svc.Delete(context.Background(), "e1", "org1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}
