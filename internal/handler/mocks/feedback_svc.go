package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockFeedbackSvc struct {
	mock.Mock
}

func NewMockFeedbackSvc(t *testing.T) *MockFeedbackSvc {
	m := &MockFeedbackSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockFeedbackSvcExpecter struct {
	mock *mock.Mock
}

func (m *MockFeedbackSvc) EXPECT() *MockFeedbackSvcExpecter {
	return &MockFeedbackSvcExpecter{mock: &m.Mock}
}

func (m *MockFeedbackSvc) Submit(ctx context.Context, eventID, participantID string, rating int, comment string) (*domain.Feedback, error) {
	ret := m.Called(ctx, eventID, participantID, rating, comment)

	var r0 *domain.Feedback
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Feedback)
	}
	return r0, ret.Error(1)
}

func (e *MockFeedbackSvcExpecter) Submit(ctx, eventID, participantID, rating, comment interface{}) *mock.Call {
	return e.mock.On("Submit", ctx, eventID, participantID, rating, comment)
}

func (m *MockFeedbackSvc) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, eventID)

	var r0 []*domain.Feedback
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Feedback)
	}
	return r0, ret.Error(1)
}

func (e *MockFeedbackSvcExpecter) ListByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, eventID)
}
