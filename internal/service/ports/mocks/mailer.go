package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func NewMockMailer(t *testing.T) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockMailerExpecter struct {
	mock *mock.Mock
}

func (m *MockMailer) EXPECT() *MockMailerExpecter {
	return &MockMailerExpecter{mock: &m.Mock}
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	return m.Called(ctx, to, subject, htmlBody).Error(0)
}

func (e *MockMailerExpecter) Send(ctx, to, subject, htmlBody interface{}) *mock.Call {
	return e.mock.On("Send", ctx, to, subject, htmlBody)
}
