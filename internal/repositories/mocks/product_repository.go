package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// ProductRepository is a testify mock of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProductsByIDs(ctx context.Context, ids []int64) ([]*models.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	ret := _m.Called(ctx, id)

	return ret.Bool(0), ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	ret := _m.Called(ctx, product)

	return ret.Error(0)
}

func (_m *ProductRepository) SoftDeleteProduct(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *ProductRepository) ReplaceImages(ctx context.Context, productID int64, images []models.ProductImage) error {
	ret := _m.Called(ctx, productID, images)

	return ret.Error(0)
}

func (_m *ProductRepository) ReplaceCollections(ctx context.Context, productID int64, collectionIDs []int64) error {
	ret := _m.Called(ctx, productID, collectionIDs)

	return ret.Error(0)
}

func (_m *ProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Int(1), ret.Error(2)
}

func (_m *ProductRepository) ListProductsByCollection(ctx context.Context, collectionID int64) ([]*models.Product, error) {
	ret := _m.Called(ctx, collectionID)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Error(1)
}

func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
