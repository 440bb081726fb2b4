package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// CollectionService is a testify mock of service.CollectionService.
type CollectionService struct {
	mock.Mock
}

func (_m *CollectionService) ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error) {
	ret := _m.Called(ctx, onlyRoot)

	var r0 []*models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) GetCollection(ctx context.Context, id int64) (*models.Collection, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) CreateCollection(ctx context.Context, req *models.CreateCollectionRequest) (*models.Collection, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) UpdateCollection(ctx context.Context, id int64, req *models.UpdateCollectionRequest) (*models.Collection, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) DeleteCollection(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *CollectionService) AddProduct(ctx context.Context, collectionID int64, productID int64) (*models.Collection, error) {
	ret := _m.Called(ctx, collectionID, productID)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) RemoveProduct(ctx context.Context, collectionID int64, productID int64) error {
	ret := _m.Called(ctx, collectionID, productID)

	return ret.Error(0)
}

func (_m *CollectionService) ListCollectionProducts(ctx context.Context, collectionID int64) ([]*models.Product, error) {
	ret := _m.Called(ctx, collectionID)

	var r0 []*models.Product
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Product)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) AddSubcollection(ctx context.Context, parentID int64, childID int64) (*models.Collection, error) {
	ret := _m.Called(ctx, parentID, childID)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionService) RemoveSubcollection(ctx context.Context, parentID int64, childID int64) error {
	ret := _m.Called(ctx, parentID, childID)

	return ret.Error(0)
}

func (_m *CollectionService) ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error) {
	ret := _m.Called(ctx, parentID)

	var r0 []*models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Collection)
	}

	return r0, ret.Error(1)
}

func NewCollectionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CollectionService {
	m := &CollectionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
