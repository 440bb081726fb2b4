package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a testify mock of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrdersByUser(ctx context.Context, userID int64, page models.Pagination) ([]*models.Order, int, error) {
	ret := _m.Called(ctx, userID, page)

	var r0 []*models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Order)
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *OrderRepository) UpdateOrderTimestamps(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

func (_m *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
