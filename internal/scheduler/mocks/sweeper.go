package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

type MockSweeper struct {
	mock.Mock
}

func NewMockSweeper(t *testing.T) *MockSweeper {
	m := &MockSweeper{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockSweeperExpecter struct {
	mock *mock.Mock
}

func (m *MockSweeper) EXPECT() *MockSweeperExpecter {
	return &MockSweeperExpecter{mock: &m.Mock}
}

func (m *MockSweeper) SendReminders(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (e *MockSweeperExpecter) SendReminders(ctx interface{}) *mock.Call {
	return e.mock.On("SendReminders", ctx)
}

func (m *MockSweeper) PromoteLive(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (e *MockSweeperExpecter) PromoteLive(ctx interface{}) *mock.Call {
	return e.mock.On("PromoteLive", ctx)
}

func (m *MockSweeper) CompleteFinished(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (e *MockSweeperExpecter) CompleteFinished(ctx interface{}) *mock.Call {
	return e.mock.On("CompleteFinished", ctx)
}
