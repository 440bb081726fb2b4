package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// AddressRepository is a testify mock of repository.AddressRepository.
type AddressRepository struct {
	mock.Mock
}

func (_m *AddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	ret := _m.Called(ctx, address)

	return ret.Error(0)
}

func (_m *AddressRepository) GetAddressByID(ctx context.Context, id int64) (*models.Address, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressRepository) GetUserAddress(ctx context.Context, id int64, userID int64) (*models.Address, error) {
	ret := _m.Called(ctx, id, userID)

	var r0 *models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressRepository) UpdateAddress(ctx context.Context, address *models.Address) error {
	ret := _m.Called(ctx, address)

	return ret.Error(0)
}

func (_m *AddressRepository) DeleteAddress(ctx context.Context, id int64, userID int64) error {
	ret := _m.Called(ctx, id, userID)

	return ret.Error(0)
}

func (_m *AddressRepository) ListAddresses(ctx context.Context, userID int64) ([]*models.Address, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Address
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Address)
	}

	return r0, ret.Error(1)
}

func (_m *AddressRepository) CountAddresses(ctx context.Context, userID int64) (int, error) {
	ret := _m.Called(ctx, userID)

	return ret.Int(0), ret.Error(1)
}

func (_m *AddressRepository) ClearDefault(ctx context.Context, userID int64, exceptID int64) error {
	ret := _m.Called(ctx, userID, exceptID)

	return ret.Error(0)
}

func NewAddressRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AddressRepository {
	m := &AddressRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
