package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service/ports/mocks"
)

func newNotificationService(t *testing.T, now time.Time) (*NotificationService, *mocks.MockEventRepo, *mocks.MockRSVPRepo, *mocks.MockUserRepo, *mocks.MockNotifier) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRSVPRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewNotificationService(eventRepo, rsvpRepo, userRepo, notifier, fixedClock{now: now}, newTestLogger(t))
	svc.strategy.Delay = time.Millisecond
	return svc, eventRepo, rsvpRepo, userRepo, notifier
}

func TestNotificationService_SendReminders_InWindow(t *testing.T) {
	// Event starts in 24h30m, inside [24h, 25h).
	now := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newNotificationService(t, now)

	event := &domain.Event{
		ID:        "e1",
		Title:     "Go Meetup",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.EventStatusUpcoming,
	}
	rsvp := &domain.RSVP{ID: "r1", EventID: "e1", ParticipantID: "u1"}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().DueForReminder(mock.Anything, now.Add(24*time.Hour), now.Add(25*time.Hour)).
		Return([]*domain.Event{event}, nil)
	rsvpRepo.EXPECT().PendingReminders(mock.Anything, "e1").Return([]*domain.RSVP{rsvp}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendReminder(mock.Anything, participant, event).Return(nil)
	rsvpRepo.EXPECT().MarkReminderSent(mock.Anything, "r1").Return(nil)

	err := svc.SendReminders(context.Background())
	require.NoError(t, err)
}

func TestNotificationService_SendReminders_MissedWindowLatches(t *testing.T) {
	// Selection drifted: the event now starts in under 24h. Latch without
	// sending so the stale reminder is never delivered.
	now := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, _, _ := newNotificationService(t, now)

	event := &domain.Event{
		ID:        "e1",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.EventStatusUpcoming,
	}
	rsvp := &domain.RSVP{ID: "r1", EventID: "e1", ParticipantID: "u1"}

	eventRepo.EXPECT().DueForReminder(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Event{event}, nil)
	rsvpRepo.EXPECT().PendingReminders(mock.Anything, "e1").Return([]*domain.RSVP{rsvp}, nil)
	rsvpRepo.EXPECT().MarkReminderSent(mock.Anything, "r1").Return(nil)

	err := svc.SendReminders(context.Background())
	require.NoError(t, err)
}

func TestNotificationService_SendReminders_SendFailureKeepsLatchClear(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newNotificationService(t, now)

	event := &domain.Event{
		ID:        "e1",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.EventStatusUpcoming,
	}
	rsvp := &domain.RSVP{ID: "r1", EventID: "e1", ParticipantID: "u1"}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().DueForReminder(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Event{event}, nil)
	rsvpRepo.EXPECT().PendingReminders(mock.Anything, "e1").Return([]*domain.RSVP{rsvp}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	// All three attempts fail; MarkReminderSent must not be called, so the
	// next sweep retries while the event is still in the window.
	notifier.EXPECT().SendReminder(mock.Anything, participant, event).Return(errors.New("smtp down")).Times(3)

	err := svc.SendReminders(context.Background())
	require.NoError(t, err)
	rsvpRepo.AssertNotCalled(t, "MarkReminderSent", mock.Anything, "r1")
}

func TestNotificationService_PromoteLive_FlipsAndNotifies(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 30, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newNotificationService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
	}
	organizer := &domain.User{ID: "org1", Email: "bob@gmail.com"}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().DueForLive(mock.Anything, now).Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().UpdateStatusIf(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusLive).Return(true, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "org1").Return(organizer, nil)
	notifier.EXPECT().SendEventLiveOrganizer(mock.Anything, organizer, event).Return(nil)
	eventRepo.EXPECT().MarkOrganizerLiveNotified(mock.Anything, "e1").Return(nil)
	rsvpRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").
		Return([]*domain.RSVP{{ID: "r1", ParticipantID: "u1"}}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendEventLiveParticipant(mock.Anything, participant, event).Return(nil)

	err := svc.PromoteLive(context.Background())
	require.NoError(t, err)
}

func TestNotificationService_PromoteLive_SkipsWhenNotFlipped(t *testing.T) {
	// The conditional flip lost to a concurrent cancel; nobody gets told the
	// event is live.
	now := time.Date(2026, 9, 15, 10, 0, 30, 0, time.UTC)
	svc, eventRepo, _, _, notifier := newNotificationService(t, now)

	event := &domain.Event{
		ID:          "e1",
		Date:        "2026-09-15",
		StartTime:   "10:00",
		EndTime:     "11:00",
		OrganizerID: "org1",
		Status:      domain.EventStatusUpcoming,
	}

	eventRepo.EXPECT().DueForLive(mock.Anything, now).Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().UpdateStatusIf(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusLive).Return(false, nil)

	err := svc.PromoteLive(context.Background())
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "SendEventLiveOrganizer", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_PromoteLive_OrganizerAlreadyNotified(t *testing.T) {
	now := time.Date(2026, 9, 15, 10, 0, 30, 0, time.UTC)
	svc, eventRepo, rsvpRepo, _, notifier := newNotificationService(t, now)

	event := &domain.Event{
		ID:                    "e1",
		Date:                  "2026-09-15",
		StartTime:             "10:00",
		EndTime:               "11:00",
		OrganizerID:           "org1",
		Status:                domain.EventStatusUpcoming,
		OrganizerLiveNotified: true,
	}

	eventRepo.EXPECT().DueForLive(mock.Anything, now).Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().UpdateStatusIf(mock.Anything, "e1", domain.EventStatusUpcoming, domain.EventStatusLive).Return(true, nil)
	rsvpRepo.EXPECT().ListActiveByEvent(mock.Anything, "e1").Return(nil, nil)

	err := svc.PromoteLive(context.Background())
	require.NoError(t, err)
	notifier.AssertNotCalled(t, "SendEventLiveOrganizer", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotificationService_CompleteFinished(t *testing.T) {
	now := time.Date(2026, 9, 15, 11, 5, 0, 0, time.UTC)
	svc, eventRepo, _, _, _ := newNotificationService(t, now)

	event := &domain.Event{
		ID:        "e1",
		Date:      "2026-09-15",
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.EventStatusLive,
	}

	eventRepo.EXPECT().DueForCompletion(mock.Anything, now).Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().UpdateStatusIf(mock.Anything, "e1", domain.EventStatusLive, domain.EventStatusCompleted).Return(true, nil)

	err := svc.CompleteFinished(context.Background())
	require.NoError(t, err)
}

func TestNotificationService_SweepContinuesPastBadEvent(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	svc, eventRepo, rsvpRepo, userRepo, notifier := newNotificationService(t, now)

	bad := &domain.Event{ID: "e-bad", Date: "2026-09-15", StartTime: "10:00", EndTime: "11:00"}
	good := &domain.Event{ID: "e-good", Date: "2026-09-15", StartTime: "10:00", EndTime: "11:00"}
	rsvp := &domain.RSVP{ID: "r1", EventID: "e-good", ParticipantID: "u1"}
	participant := &domain.User{ID: "u1", Email: "alice@gmail.com"}

	eventRepo.EXPECT().DueForReminder(mock.Anything, mock.Anything, mock.Anything).
		Return([]*domain.Event{bad, good}, nil)
	rsvpRepo.EXPECT().PendingReminders(mock.Anything, "e-bad").Return(nil, errors.New("db error"))
	rsvpRepo.EXPECT().PendingReminders(mock.Anything, "e-good").Return([]*domain.RSVP{rsvp}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(participant, nil)
	notifier.EXPECT().SendReminder(mock.Anything, participant, good).Return(nil)
	rsvpRepo.EXPECT().MarkReminderSent(mock.Anything, "r1").Return(nil)

	err := svc.SendReminders(context.Background())
	assert.NoError(t, err)
}
