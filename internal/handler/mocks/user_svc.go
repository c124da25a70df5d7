package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockUserSvc struct {
	mock.Mock
}

func NewMockUserSvc(t *testing.T) *MockUserSvc {
	m := &MockUserSvc{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockUserSvcExpecter struct {
	mock *mock.Mock
}

func (m *MockUserSvc) EXPECT() *MockUserSvcExpecter {
	return &MockUserSvcExpecter{mock: &m.Mock}
}

func (m *MockUserSvc) Signup(ctx context.Context, input domain.SignupInput) (*domain.User, domain.TokenPair, error) {
	ret := m.Called(ctx, input)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Get(1).(domain.TokenPair), ret.Error(2)
}

func (e *MockUserSvcExpecter) Signup(ctx, input interface{}) *mock.Call {
	return e.mock.On("Signup", ctx, input)
}

func (m *MockUserSvc) Login(ctx context.Context, email, password string) (*domain.User, domain.TokenPair, error) {
	ret := m.Called(ctx, email, password)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Get(1).(domain.TokenPair), ret.Error(2)
}

func (e *MockUserSvcExpecter) Login(ctx, email, password interface{}) *mock.Call {
	return e.mock.On("Login", ctx, email, password)
}

func (m *MockUserSvc) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	ret := m.Called(ctx, refreshToken)
	return ret.Get(0).(domain.TokenPair), ret.Error(1)
}

func (e *MockUserSvcExpecter) Refresh(ctx, refreshToken interface{}) *mock.Call {
	return e.mock.On("Refresh", ctx, refreshToken)
}

func (m *MockUserSvc) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (e *MockUserSvcExpecter) Logout(ctx, refreshToken interface{}) *mock.Call {
	return e.mock.On("Logout", ctx, refreshToken)
}

func (m *MockUserSvc) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ret := m.Called(ctx, id)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserSvcExpecter) GetByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (m *MockUserSvc) UpdateProfile(ctx context.Context, id string, input domain.UpdateProfileInput) (*domain.User, error) {
	ret := m.Called(ctx, id, input)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserSvcExpecter) UpdateProfile(ctx, id, input interface{}) *mock.Call {
	return e.mock.On("UpdateProfile", ctx, id, input)
}

func (m *MockUserSvc) DeleteAccount(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockUserSvcExpecter) DeleteAccount(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeleteAccount", ctx, id)
}

func (m *MockUserSvc) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (e *MockUserSvcExpecter) RequestPasswordReset(ctx, email interface{}) *mock.Call {
	return e.mock.On("RequestPasswordReset", ctx, email)
}

func (m *MockUserSvc) ResetPassword(ctx context.Context, token, password string) error {
	return m.Called(ctx, token, password).Error(0)
}

func (e *MockUserSvcExpecter) ResetPassword(ctx, token, password interface{}) *mock.Call {
	return e.mock.On("ResetPassword", ctx, token, password)
}
