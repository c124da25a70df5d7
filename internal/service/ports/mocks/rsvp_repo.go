package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockRSVPRepo struct {
	mock.Mock
}

func NewMockRSVPRepo(t *testing.T) *MockRSVPRepo {
	m := &MockRSVPRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockRSVPRepoExpecter struct {
	mock *mock.Mock
}

func (m *MockRSVPRepo) EXPECT() *MockRSVPRepoExpecter {
	return &MockRSVPRepoExpecter{mock: &m.Mock}
}

func (m *MockRSVPRepo) Create(ctx context.Context, r *domain.RSVP) error {
	return m.Called(ctx, r).Error(0)
}

func (e *MockRSVPRepoExpecter) Create(ctx, rsvp interface{}) *mock.Call {
	return e.mock.On("Create", ctx, rsvp)
}

func (m *MockRSVPRepo) GetByEventAndParticipant(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	ret := m.Called(ctx, eventID, participantID)

	var r0 *domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) GetByEventAndParticipant(ctx, eventID, participantID interface{}) *mock.Call {
	return e.mock.On("GetByEventAndParticipant", ctx, eventID, participantID)
}

func (m *MockRSVPRepo) GetActive(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	ret := m.Called(ctx, eventID, participantID)

	var r0 *domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) GetActive(ctx, eventID, participantID interface{}) *mock.Call {
	return e.mock.On("GetActive", ctx, eventID, participantID)
}

func (m *MockRSVPRepo) Reactivate(ctx context.Context, id string, joinedAt time.Time) error {
	return m.Called(ctx, id, joinedAt).Error(0)
}

func (e *MockRSVPRepoExpecter) Reactivate(ctx, id, joinedAt interface{}) *mock.Call {
	return e.mock.On("Reactivate", ctx, id, joinedAt)
}

func (m *MockRSVPRepo) CancelActive(ctx context.Context, eventID, participantID string) error {
	return m.Called(ctx, eventID, participantID).Error(0)
}

func (e *MockRSVPRepoExpecter) CancelActive(ctx, eventID, participantID interface{}) *mock.Call {
	return e.mock.On("CancelActive", ctx, eventID, participantID)
}

func (m *MockRSVPRepo) ListActiveByEvent(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	ret := m.Called(ctx, eventID)

	var r0 []*domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) ListActiveByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListActiveByEvent", ctx, eventID)
}

func (m *MockRSVPRepo) ListActiveByParticipant(ctx context.Context, participantID string) ([]*domain.RSVP, error) {
	ret := m.Called(ctx, participantID)

	var r0 []*domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) ListActiveByParticipant(ctx, participantID interface{}) *mock.Call {
	return e.mock.On("ListActiveByParticipant", ctx, participantID)
}

func (m *MockRSVPRepo) ListAttendees(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	ret := m.Called(ctx, eventID)

	var r0 []domain.Attendee
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Attendee)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) ListAttendees(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("ListAttendees", ctx, eventID)
}

func (m *MockRSVPRepo) CountActive(ctx context.Context, eventID string) (int, error) {
	ret := m.Called(ctx, eventID)
	return ret.Int(0), ret.Error(1)
}

func (e *MockRSVPRepoExpecter) CountActive(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("CountActive", ctx, eventID)
}

func (m *MockRSVPRepo) PendingReminders(ctx context.Context, eventID string) ([]*domain.RSVP, error) {
	ret := m.Called(ctx, eventID)

	var r0 []*domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPRepoExpecter) PendingReminders(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("PendingReminders", ctx, eventID)
}

func (m *MockRSVPRepo) MarkReminderSent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockRSVPRepoExpecter) MarkReminderSent(ctx, id interface{}) *mock.Call {
	return e.mock.On("MarkReminderSent", ctx, id)
}

func (m *MockRSVPRepo) DeleteByEvent(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

func (e *MockRSVPRepoExpecter) DeleteByEvent(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("DeleteByEvent", ctx, eventID)
}
