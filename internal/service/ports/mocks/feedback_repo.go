package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockFeedbackRepo struct {
	mock.Mock
}

func NewMockFeedbackRepo(t *testing.T) *MockFeedbackRepo {
	m := &MockFeedbackRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockFeedbackRepoExpecter struct {
	mock *mock.Mock
}

func (m *MockFeedbackRepo) EXPECT() *MockFeedbackRepoExpecter {
	return &MockFeedbackRepoExpecter{mock: &m.Mock}
}

func (m *MockFeedbackRepo) Upsert(ctx context.Context, f *domain.Feedback) error {
	return m.Called(ctx, f).Error(0)
}

func (e *MockFeedbackRepoExpecter) Upsert(ctx, feedback interface{}) *mock.Call {
	return e.mock.On("Upsert", ctx, feedback)
}

func (m *MockFeedbackRepo) ListByEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	ret := m.Called(ctx, eventID)

	var r0 []*domain.Feedback
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Feedback)
	}
	return r0, ret.Error(1)
}

func (e *MockFeedbackRepoExpecter) ListByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListByEvent", ctx, eventID)
}
