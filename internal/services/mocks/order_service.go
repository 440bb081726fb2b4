package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (_m *OrderService) CreateOrder(ctx context.Context, user *models.User, req *models.CreateOrderRequest) (*models.Order, error) {
	ret := _m.Called(ctx, user, req)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) ListOrders(ctx context.Context, userID int64, page models.Pagination) (*models.PaginatedResponse, error) {
	ret := _m.Called(ctx, userID, page)

	var r0 *models.PaginatedResponse
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.PaginatedResponse)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) GetOrder(ctx context.Context, user *models.User, id int64) (*models.Order, error) {
	ret := _m.Called(ctx, user, id)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) UpdateOrder(ctx context.Context, user *models.User, id int64, req *models.UpdateOrderRequest) (*models.Order, error) {
	ret := _m.Called(ctx, user, id, req)

	var r0 *models.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderService) DeleteOrder(ctx context.Context, user *models.User, id int64) error {
	ret := _m.Called(ctx, user, id)

	return ret.Error(0)
}

func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
