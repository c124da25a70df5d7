package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
	"github.com/HarshAvichal/EventEase/internal/service"
)

type MockEventSvc struct {
	mock.Mock
}

func NewMockEventSvc(t *testing.T) *MockEventSvc {
	m := &MockEventSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEventSvcExpecter struct {
	mock *mock.Mock
}

func (m *MockEventSvc) EXPECT() *MockEventSvcExpecter {
	return &MockEventSvcExpecter{mock: &m.Mock}
}

func (m *MockEventSvc) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	ret := m.Called(ctx, input)

	var r0 *domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) Create(ctx, input interface{}) *mock.Call {
	return e.mock.On("Create", ctx, input)
}

func (m *MockEventSvc) Update(ctx context.Context, id, organizerID string, input domain.UpdateEventInput) (*domain.Event, error) {
	ret := m.Called(ctx, id, organizerID, input)

	var r0 *domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) Update(ctx, id, organizerID, input interface{}) *mock.Call {
	return e.mock.On("Update", ctx, id, organizerID, input)
}

func (m *MockEventSvc) Cancel(ctx context.Context, id, organizerID string) (*domain.Event, error) {
	ret := m.Called(ctx, id, organizerID)

	var r0 *domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) Cancel(ctx, id, organizerID interface{}) *mock.Call {
	return e.mock.On("Cancel", ctx, id, organizerID)
}

func (m *MockEventSvc) Delete(ctx context.Context, id, organizerID string) error {
	return m.Called(ctx, id, organizerID).Error(0)
}

func (e *MockEventSvcExpecter) Delete(ctx, id, organizerID interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id, organizerID)
}

func (m *MockEventSvc) GetDetails(ctx context.Context, id, viewerID string, viewerRole domain.Role) (*domain.EventDetails, error) {
	ret := m.Called(ctx, id, viewerID, viewerRole)

	var r0 *domain.EventDetails
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventDetails)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) GetDetails(ctx, id, viewerID, viewerRole interface{}) *mock.Call {
	return e.mock.On("GetDetails", ctx, id, viewerID, viewerRole)
}

func (m *MockEventSvc) ListOrganizerUpcoming(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, organizerID, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListOrganizerUpcoming(ctx, organizerID, page, limit interface{}) *mock.Call {
	return e.mock.On("ListOrganizerUpcoming", ctx, organizerID, page, limit)
}

func (m *MockEventSvc) ListOrganizerCompleted(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, organizerID, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListOrganizerCompleted(ctx, organizerID, page, limit interface{}) *mock.Call {
	return e.mock.On("ListOrganizerCompleted", ctx, organizerID, page, limit)
}

func (m *MockEventSvc) ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	ret := m.Called(ctx, organizerID)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListOrganizerAll(ctx, organizerID interface{}) *mock.Call {
	return e.mock.On("ListOrganizerAll", ctx, organizerID)
}

func (m *MockEventSvc) ListUpcoming(ctx context.Context, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListUpcoming(ctx, page, limit interface{}) *mock.Call {
	return e.mock.On("ListUpcoming", ctx, page, limit)
}

func (m *MockEventSvc) ListCompleted(ctx context.Context, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListCompleted(ctx, page, limit interface{}) *mock.Call {
	return e.mock.On("ListCompleted", ctx, page, limit)
}

func (m *MockEventSvc) ListParticipantMyEvents(ctx context.Context, participantID string) (*service.MyEvents, error) {
	ret := m.Called(ctx, participantID)

	var r0 *service.MyEvents
	if v := ret.Get(0); v != nil {
		r0 = v.(*service.MyEvents)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) ListParticipantMyEvents(ctx, participantID interface{}) *mock.Call {
	return e.mock.On("ListParticipantMyEvents", ctx, participantID)
}

func (m *MockEventSvc) Search(ctx context.Context) ([]*domain.Event, error) {
	ret := m.Called(ctx)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventSvcExpecter) Search(ctx interface{}) *mock.Call {
	return e.mock.On("Search", ctx)
}
