package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockEventRepo struct {
	mock.Mock
}

func NewMockEventRepo(t *testing.T) *MockEventRepo {
	m := &MockEventRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockEventRepoExpecter struct {
	mock *mock.Mock
}

func (m *MockEventRepo) EXPECT() *MockEventRepoExpecter {
	return &MockEventRepoExpecter{mock: &m.Mock}
}

func (m *MockEventRepo) Create(ctx context.Context, e *domain.Event) error {
	return m.Called(ctx, e).Error(0)
}

func (e *MockEventRepoExpecter) Create(ctx, event interface{}) *mock.Call {
	return e.mock.On("Create", ctx, event)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ret := m.Called(ctx, id)

	var r0 *domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) GetByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (m *MockEventRepo) Update(ctx context.Context, ev *domain.Event) error {
	return m.Called(ctx, ev).Error(0)
}

func (e *MockEventRepoExpecter) Update(ctx, event interface{}) *mock.Call {
	return e.mock.On("Update", ctx, event)
}

func (m *MockEventRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockEventRepoExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func (m *MockEventRepo) FindConflict(ctx context.Context, organizerID, date, startTime, endTime, excludeID string) (*domain.Event, error) {
	ret := m.Called(ctx, organizerID, date, startTime, endTime, excludeID)

	var r0 *domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) FindConflict(ctx, organizerID, date, startTime, endTime, excludeID interface{}) *mock.Call {
	return e.mock.On("FindConflict", ctx, organizerID, date, startTime, endTime, excludeID)
}

func (m *MockEventRepo) ListOrganizerUpcoming(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, organizerID, now, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) ListOrganizerUpcoming(ctx, organizerID, now, page, limit interface{}) *mock.Call {
	return e.mock.On("ListOrganizerUpcoming", ctx, organizerID, now, page, limit)
}

func (m *MockEventRepo) ListOrganizerCompleted(ctx context.Context, organizerID string, now time.Time, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, organizerID, now, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) ListOrganizerCompleted(ctx, organizerID, now, page, limit interface{}) *mock.Call {
	return e.mock.On("ListOrganizerCompleted", ctx, organizerID, now, page, limit)
}

func (m *MockEventRepo) ListOrganizerAll(ctx context.Context, organizerID string) ([]*domain.Event, error) {
	ret := m.Called(ctx, organizerID)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) ListOrganizerAll(ctx, organizerID interface{}) *mock.Call {
	return e.mock.On("ListOrganizerAll", ctx, organizerID)
}

func (m *MockEventRepo) ListUpcoming(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, now, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) ListUpcoming(ctx, now, page, limit interface{}) *mock.Call {
	return e.mock.On("ListUpcoming", ctx, now, page, limit)
}

func (m *MockEventRepo) ListCompleted(ctx context.Context, now time.Time, page, limit int) (*domain.EventPage, error) {
	ret := m.Called(ctx, now, page, limit)

	var r0 *domain.EventPage
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.EventPage)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) ListCompleted(ctx, now, page, limit interface{}) *mock.Call {
	return e.mock.On("ListCompleted", ctx, now, page, limit)
}

func (m *MockEventRepo) Search(ctx context.Context) ([]*domain.Event, error) {
	ret := m.Called(ctx)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) Search(ctx interface{}) *mock.Call {
	return e.mock.On("Search", ctx)
}

func (m *MockEventRepo) DueForReminder(ctx context.Context, from, to time.Time) ([]*domain.Event, error) {
	ret := m.Called(ctx, from, to)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) DueForReminder(ctx, from, to interface{}) *mock.Call {
	return e.mock.On("DueForReminder", ctx, from, to)
}

func (m *MockEventRepo) DueForLive(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	ret := m.Called(ctx, now)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) DueForLive(ctx, now interface{}) *mock.Call {
	return e.mock.On("DueForLive", ctx, now)
}

func (m *MockEventRepo) DueForCompletion(ctx context.Context, now time.Time) ([]*domain.Event, error) {
	ret := m.Called(ctx, now)

	var r0 []*domain.Event
	if v := ret.Get(0); v != nil {
		r0 = v.([]*domain.Event)
	}
	return r0, ret.Error(1)
}

func (e *MockEventRepoExpecter) DueForCompletion(ctx, now interface{}) *mock.Call {
	return e.mock.On("DueForCompletion", ctx, now)
}

func (m *MockEventRepo) UpdateStatusIf(ctx context.Context, id string, from, to domain.EventStatus) (bool, error) {
	ret := m.Called(ctx, id, from, to)
	return ret.Bool(0), ret.Error(1)
}

func (e *MockEventRepoExpecter) UpdateStatusIf(ctx, id, from, to interface{}) *mock.Call {
	return e.mock.On("UpdateStatusIf", ctx, id, from, to)
}

func (m *MockEventRepo) MarkOrganizerLiveNotified(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockEventRepoExpecter) MarkOrganizerLiveNotified(ctx, id interface{}) *mock.Call {
	return e.mock.On("MarkOrganizerLiveNotified", ctx, id)
}
