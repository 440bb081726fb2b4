package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// AuthService is a testify mock of service.AuthService.
type AuthService struct {
	mock.Mock
}

func (_m *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.AuthResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.AuthResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.AuthResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.AuthResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AuthService) GoogleLogin(ctx context.Context, req *models.GoogleAuthRequest) (*models.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.AuthResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.AuthResponse)
	}

	return r0, ret.Error(1)
}

func (_m *AuthService) Role(user *models.User) *models.AuthResponse {
	ret := _m.Called(user)

	var r0 *models.AuthResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.AuthResponse)
	}

	return r0
}

func (_m *AuthService) AccountMenu(user *models.User) *models.AuthResponse {
	ret := _m.Called(user)

	var r0 *models.AuthResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.AuthResponse)
	}

	return r0
}

func NewAuthService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthService {
	m := &AuthService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
