package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/HarshAvichal/EventEase/internal/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func NewMockUserRepo(t *testing.T) *MockUserRepo {
	m := &MockUserRepo{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockUserRepoExpecter struct {
	mock *mock.Mock
}

func (m *MockUserRepo) EXPECT() *MockUserRepoExpecter {
	return &MockUserRepoExpecter{mock: &m.Mock}
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (e *MockUserRepoExpecter) Create(ctx, user interface{}) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ret := m.Called(ctx, id)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserRepoExpecter) GetByID(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetByID", ctx, id)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := m.Called(ctx, email)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserRepoExpecter) GetByEmail(ctx, email interface{}) *mock.Call {
	return e.mock.On("GetByEmail", ctx, email)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	return m.Called(ctx, id, firstName, lastName).Error(0)
}

func (e *MockUserRepoExpecter) UpdateProfile(ctx, id, firstName, lastName interface{}) *mock.Call {
	return e.mock.On("UpdateProfile", ctx, id, firstName, lastName)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (e *MockUserRepoExpecter) UpdatePassword(ctx, id, passwordHash interface{}) *mock.Call {
	return e.mock.On("UpdatePassword", ctx, id, passwordHash)
}

func (m *MockUserRepo) SetRefreshToken(ctx context.Context, id string, token *string) error {
	return m.Called(ctx, id, token).Error(0)
}

func (e *MockUserRepoExpecter) SetRefreshToken(ctx, id, token interface{}) *mock.Call {
	return e.mock.On("SetRefreshToken", ctx, id, token)
}

func (m *MockUserRepo) GetByRefreshToken(ctx context.Context, token string) (*domain.User, error) {
	ret := m.Called(ctx, token)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserRepoExpecter) GetByRefreshToken(ctx, token interface{}) *mock.Call {
	return e.mock.On("GetByRefreshToken", ctx, token)
}

func (m *MockUserRepo) SetResetToken(ctx context.Context, id, token string, expires time.Time) error {
	return m.Called(ctx, id, token, expires).Error(0)
}

func (e *MockUserRepoExpecter) SetResetToken(ctx, id, token, expires interface{}) *mock.Call {
	return e.mock.On("SetResetToken", ctx, id, token, expires)
}

func (m *MockUserRepo) GetByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error) {
	ret := m.Called(ctx, token, now)

	var r0 *domain.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.User)
	}
	return r0, ret.Error(1)
}

func (e *MockUserRepoExpecter) GetByResetToken(ctx, token, now interface{}) *mock.Call {
	return e.mock.On("GetByResetToken", ctx, token, now)
}

func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (e *MockUserRepoExpecter) Delete(ctx, id interface{}) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}
