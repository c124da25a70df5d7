package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockRSVPSvc struct {
	mock.Mock
}

func NewMockRSVPSvc(t *testing.T) *MockRSVPSvc {
	m := &MockRSVPSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockRSVPSvcExpecter struct {
	mock *mock.Mock
}

func (m *MockRSVPSvc) EXPECT() *MockRSVPSvcExpecter {
	return &MockRSVPSvcExpecter{mock: &m.Mock}
}

func (m *MockRSVPSvc) Register(ctx context.Context, eventID, participantID string) (*domain.RSVP, error) {
	ret := m.Called(ctx, eventID, participantID)

	var r0 *domain.RSVP
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RSVP)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPSvcExpecter) Register(ctx, eventID, participantID interface{}) *mock.Call {
	return e.mock.On("Register", ctx, eventID, participantID)
}

func (m *MockRSVPSvc) Cancel(ctx context.Context, eventID, participantID string) error {
	return m.Called(ctx, eventID, participantID).Error(0)
}

func (e *MockRSVPSvcExpecter) Cancel(ctx, eventID, participantID interface{}) *mock.Call {
	return e.mock.On("Cancel", ctx, eventID, participantID)
}

func (m *MockRSVPSvc) Count(ctx context.Context, eventID string) (int, error) {
	ret := m.Called(ctx, eventID)
	return ret.Int(0), ret.Error(1)
}

func (e *MockRSVPSvcExpecter) Count(ctx, eventID interface{}) *mock.Call {
	return e.mock.On("Count", ctx, eventID)
}

func (m *MockRSVPSvc) Attendees(ctx context.Context, eventID, viewerID string, viewerRole domain.Role) ([]domain.Attendee, error) {
	ret := m.Called(ctx, eventID, viewerID, viewerRole)

	var r0 []domain.Attendee
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Attendee)
	}
	return r0, ret.Error(1)
}

func (e *MockRSVPSvcExpecter) Attendees(ctx, eventID, viewerID, viewerRole interface{}) *mock.Call {
	return e.mock.On("Attendees", ctx, eventID, viewerID, viewerRole)
}
