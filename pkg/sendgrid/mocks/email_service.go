package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/sendgrid"
	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (_m *EmailService) Send(ctx context.Context, msg *sendgrid.Message) error {
	ret := _m.Called(ctx, msg)

	return ret.Error(0)
}

func (_m *EmailService) Enabled() bool {
	ret := _m.Called()

	return ret.Bool(0)
}

func NewEmailService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmailService {
	m := &EmailService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
