package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/google"
	"github.com/stretchr/testify/mock"
)

type TokenVerifier struct {
	mock.Mock
}

func (_m *TokenVerifier) Verify(ctx context.Context, token string) (*google.Identity, error) {
	ret := _m.Called(ctx, token)

	var r0 *google.Identity
	if v := ret.Get(0); v != nil {
		r0 = v.(*google.Identity)
	}

	return r0, ret.Error(1)
}

func NewTokenVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *TokenVerifier {
	m := &TokenVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
