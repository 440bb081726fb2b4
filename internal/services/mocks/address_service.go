package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type AddressService struct {
	mock.Mock
}

func (_m *AddressService) ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressService) CreateAddress(ctx context.Context, userID int64, req *models.CreateAddressRequest) (*models.Address, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressService) UpdateAddress(ctx context.Context, userID int64, id int64, req *models.UpdateAddressRequest) (*models.Address, error) {
	ret := _m.Called(ctx, userID, id, req)

	var r0 *models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressService) DeleteAddress(ctx context.Context, userID int64, id int64) error {
	ret := _m.Called(ctx, userID, id)

	return ret.Error(0)
}

func NewAddressService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressService {
	m := &AddressService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
