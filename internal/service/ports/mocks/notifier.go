package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockNotifier struct {
	mock.Mock
}

func NewMockNotifier(t *testing.T) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockNotifierExpecter struct {
	mock *mock.Mock
}

func (m *MockNotifier) EXPECT() *MockNotifierExpecter {
	return &MockNotifierExpecter{mock: &m.Mock}
}

func (m *MockNotifier) SendRSVPConfirmation(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendRSVPConfirmation(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendRSVPConfirmation", ctx, participant, event)
}

func (m *MockNotifier) SendRSVPCancellation(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendRSVPCancellation(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendRSVPCancellation", ctx, participant, event)
}

func (m *MockNotifier) SendReminder(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendReminder(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendReminder", ctx, participant, event)
}

func (m *MockNotifier) SendEventLiveOrganizer(ctx context.Context, organizer *domain.User, event *domain.Event) error {
	return m.Called(ctx, organizer, event).Error(0)
}

func (e *MockNotifierExpecter) SendEventLiveOrganizer(ctx, organizer, event interface{}) *mock.Call {
	return e.mock.On("SendEventLiveOrganizer", ctx, organizer, event)
}

func (m *MockNotifier) SendEventLiveParticipant(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendEventLiveParticipant(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendEventLiveParticipant", ctx, participant, event)
}

func (m *MockNotifier) SendScheduleChange(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendScheduleChange(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendScheduleChange", ctx, participant, event)
}

func (m *MockNotifier) SendEventCanceled(ctx context.Context, participant *domain.User, event *domain.Event) error {
	return m.Called(ctx, participant, event).Error(0)
}

func (e *MockNotifierExpecter) SendEventCanceled(ctx, participant, event interface{}) *mock.Call {
	return e.mock.On("SendEventCanceled", ctx, participant, event)
}

func (m *MockNotifier) SendPasswordReset(ctx context.Context, user *domain.User, resetURL string) error {
	return m.Called(ctx, user, resetURL).Error(0)
}

func (e *MockNotifierExpecter) SendPasswordReset(ctx, user, resetURL interface{}) *mock.Call {
	return e.mock.On("SendPasswordReset", ctx, user, resetURL)
}
