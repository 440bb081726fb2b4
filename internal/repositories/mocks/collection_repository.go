package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

// CollectionRepository is a testify mock of repository.CollectionRepository.
type CollectionRepository struct {
	mock.Mock
}

func (_m *CollectionRepository) CreateCollection(ctx context.Context, collection *models.Collection) error {
	ret := _m.Called(ctx, collection)

	return ret.Error(0)
}

func (_m *CollectionRepository) GetCollectionByID(ctx context.Context, id int64) (*models.Collection, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.(*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionRepository) GetCollectionsByIDs(ctx context.Context, ids []int64) ([]*models.Collection, error) {
	ret := _m.Called(ctx, ids)

	var r0 []*models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionRepository) ListCollections(ctx context.Context, onlyRoot bool) ([]*models.Collection, error) {
	ret := _m.Called(ctx, onlyRoot)

	var r0 []*models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionRepository) ListSubcollections(ctx context.Context, parentID int64) ([]*models.Collection, error) {
	ret := _m.Called(ctx, parentID)

	var r0 []*models.Collection
	if v := ret.Get(0); v != nil {
		r0 = v.([]*models.Collection)
	}

	return r0, ret.Error(1)
}

func (_m *CollectionRepository) UpdateCollection(ctx context.Context, collection *models.Collection) error {
	ret := _m.Called(ctx, collection)

	return ret.Error(0)
}

func (_m *CollectionRepository) DeleteCollection(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_m *CollectionRepository) AddProduct(ctx context.Context, collectionID int64, productID int64) error {
	ret := _m.Called(ctx, collectionID, productID)

	return ret.Error(0)
}

func (_m *CollectionRepository) RemoveProduct(ctx context.Context, collectionID int64, productID int64) error {
	ret := _m.Called(ctx, collectionID, productID)

	return ret.Error(0)
}

func (_m *CollectionRepository) ClearProducts(ctx context.Context, collectionID int64) error {
	ret := _m.Called(ctx, collectionID)

	return ret.Error(0)
}

func NewCollectionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CollectionRepository {
	m := &CollectionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
