package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAppError(t *testing.T, err error, code, message string) {
	t.Helper()

	appErr, ok := appErrors.IsAppError(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
}

func newCatalog(t *testing.T) (*catalogStore, service.CollectionService, *mocks.Transactor) {
	t.Helper()

	store := newCatalogStore()
	tx := &mocks.Transactor{}

	return store, service.NewCollectionService(fakeCollectionRepo{store}, fakeProductRepo{store}, tx), tx
}

func mustCreate(t *testing.T, svc service.CollectionService, name string, parentID *int64) *models.Collection {
	t.Helper()

	collection, err := svc.CreateCollection(context.Background(), &models.CreateCollectionRequest{Name: name, ParentCollectionID: parentID})
	require.NoError(t, err)

	return collection
}

func ptr[T any](v T) *T {
	return &v
}

func TestCollectionService_CreateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Root collection", func(t *testing.T) {
		// Arrange
		_, svc, tx := newCatalog(t)

		// Act
		collection, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "  Summer <b>Sale</b> "})

		// Assert
		require.NoError(t, err)
		assert.NotZero(t, collection.ID)
		assert.Equal(t, "Summer Sale", collection.Name)
		assert.Nil(t, collection.ParentCollectionID)
		assert.Equal(t, 1, tx.Calls)
	})

	t.Run("Success - Subcollection strips the parent's products", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		tee := store.addProduct("Tee")
		_, err := svc.AddProduct(ctx, parent.ID, tee)
		require.NoError(t, err)

		// Act
		child, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "Tops", ParentCollectionID: &parent.ID})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, parent.ID, *child.ParentCollectionID)

		reloaded, err := svc.GetCollection(ctx, parent.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.ProductIDs)
		assert.Equal(t, []models.Subcollection{{ID: child.ID, Name: "Tops"}}, reloaded.Subcollections)
	})

	t.Run("Failure - Parent not found", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)

		// Act
		collection, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "Tops", ParentCollectionID: ptr(int64(99))})

		// Assert
		assert.Nil(t, collection)
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Parent collection not found")
	})

	t.Run("Failure - Parent is itself a subcollection", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		child := mustCreate(t, svc, "Tops", &root.ID)

		// Act
		collection, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "Tees", ParentCollectionID: &child.ID})

		// Assert
		assert.Nil(t, collection)
		assertAppError(t, err, appErrors.ErrCodeInvalidHierarchy, "A subcollection cannot have its own subcollections")
	})

	t.Run("Failure - Blank name", func(t *testing.T) {
		// Arrange
		_, svc, tx := newCatalog(t)

		// Act
		_, err := svc.CreateCollection(ctx, &models.CreateCollectionRequest{Name: "<script></script>"})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeValidation, "")
		assert.Zero(t, tx.Calls)
	})
}

func TestCollectionService_AddSubcollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Parent loses its products, child keeps its own", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		child := mustCreate(t, svc, "Tops", nil)
		tee, polo := store.addProduct("Tee"), store.addProduct("Polo")
		_, err := svc.AddProduct(ctx, parent.ID, tee)
		require.NoError(t, err)
		_, err = svc.AddProduct(ctx, child.ID, polo)
		require.NoError(t, err)

		// Act
		updated, err := svc.AddSubcollection(ctx, parent.ID, child.ID)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, updated.ProductIDs)
		assert.True(t, updated.HasSubcollection(child.ID))

		reloaded, err := svc.GetCollection(ctx, child.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{polo}, reloaded.ProductIDs)
		assert.True(t, reloaded.IsChildOf(parent.ID))
	})

	t.Run("Failure - Shared products are named", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		child := mustCreate(t, svc, "Tops", nil)
		tee, polo := store.addProduct("Tee"), store.addProduct("Polo")
		for _, id := range []int64{tee, polo} {
			_, err := svc.AddProduct(ctx, parent.ID, id)
			require.NoError(t, err)
			_, err = svc.AddProduct(ctx, child.ID, id)
			require.NoError(t, err)
		}

		// Act
		updated, err := svc.AddSubcollection(ctx, parent.ID, child.ID)

		// Assert
		assert.Nil(t, updated)
		assertAppError(t, err, appErrors.ErrCodeConflict, "Products already in both collections: Tee, Polo")

		reloaded, err := svc.GetCollection(ctx, child.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.ParentCollectionID)
	})

	t.Run("Failure - Hierarchy rules", func(t *testing.T) {
		_, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		sub := mustCreate(t, svc, "Tops", &root.ID)
		other := mustCreate(t, svc, "Women", nil)
		loose := mustCreate(t, svc, "Outlet", nil)

		tests := []struct {
			name     string
			parentID int64
			childID  int64
			code     string
			message  string
		}{
			{"Parent missing", 404, loose.ID, appErrors.ErrCodeNotFound, "Parent collection not found"},
			{"Child missing", root.ID, 404, appErrors.ErrCodeNotFound, "Subcollection not found"},
			{"Self link", loose.ID, loose.ID, appErrors.ErrCodeInvalidHierarchy, "A collection cannot be its own subcollection"},
			{"Parent is a subcollection", sub.ID, loose.ID, appErrors.ErrCodeInvalidHierarchy, "A subcollection cannot have its own subcollections"},
			{"Child already has a parent", other.ID, sub.ID, appErrors.ErrCodeInvalidHierarchy, "Subcollection already has a parent. Remove it first."},
			{"Child has subcollections", other.ID, root.ID, appErrors.ErrCodeInvalidHierarchy, "Cannot set a collection with subcollections as a subcollection"},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				// Act
				updated, err := svc.AddSubcollection(ctx, tc.parentID, tc.childID)

				// Assert
				assert.Nil(t, updated)
				assertAppError(t, err, tc.code, tc.message)
			})
		}
	})
}

func TestCollectionService_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Adding twice keeps one membership", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)
		tee := store.addProduct("Tee")

		// Act
		_, err := svc.AddProduct(ctx, collection.ID, tee)
		require.NoError(t, err)
		updated, err := svc.AddProduct(ctx, collection.ID, tee)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, []int64{tee}, updated.ProductIDs)
	})

	t.Run("Failure - Product already in the parent", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		child := mustCreate(t, svc, "Tops", &parent.ID)
		tee := store.addProduct("Tee")
		_, err := svc.AddProduct(ctx, parent.ID, tee)
		require.NoError(t, err)

		// Act
		_, err = svc.AddProduct(ctx, child.ID, tee)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeConflict, "Product is already in the parent collection")
	})

	t.Run("Failure - Product already in a subcollection", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		child := mustCreate(t, svc, "Tops", &parent.ID)
		tee := store.addProduct("Tee")
		_, err := svc.AddProduct(ctx, child.ID, tee)
		require.NoError(t, err)

		// Act
		_, err = svc.AddProduct(ctx, parent.ID, tee)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeConflict, "Product is already in a subcollection of this collection")
	})

	t.Run("Failure - Deleted product", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)
		tee := store.addProduct("Tee")
		store.products[tee].DeletedAt = ptr(store.products[tee].CreatedAt)

		// Act
		_, err := svc.AddProduct(ctx, collection.ID, tee)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Product not found or has been deleted")
	})

	t.Run("Failure - Collection not found", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		tee := store.addProduct("Tee")

		// Act
		_, err := svc.AddProduct(ctx, 404, tee)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Collection not found")
	})
}

func TestCollectionService_RemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)
		tee := store.addProduct("Tee")
		_, err := svc.AddProduct(ctx, collection.ID, tee)
		require.NoError(t, err)

		// Act
		err = svc.RemoveProduct(ctx, collection.ID, tee)

		// Assert
		require.NoError(t, err)
		products, err := svc.ListCollectionProducts(ctx, collection.ID)
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Failure - Unknown product", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)

		// Act
		err := svc.RemoveProduct(ctx, collection.ID, 404)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Product not found")
	})
}

func TestCollectionService_UpdateCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Reparent round trip", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		parent := mustCreate(t, svc, "Men", nil)
		summer := mustCreate(t, svc, "Summer", nil)

		// Act
		updated, err := svc.UpdateCollection(ctx, summer.ID, &models.UpdateCollectionRequest{ParentCollectionID: &parent.ID})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, parent.ID, *updated.ParentCollectionID)

		reloaded, err := svc.GetCollection(ctx, summer.ID)
		require.NoError(t, err)
		assert.Equal(t, parent.ID, *reloaded.ParentCollectionID)

		reloadedParent, err := svc.GetCollection(ctx, parent.ID)
		require.NoError(t, err)
		assert.True(t, reloadedParent.HasSubcollection(summer.ID))
	})

	t.Run("Success - Rename only", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)

		// Act
		updated, err := svc.UpdateCollection(ctx, collection.ID, &models.UpdateCollectionRequest{Name: ptr("Menswear")})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "Menswear", updated.Name)
		assert.Nil(t, updated.ParentCollectionID)
	})

	t.Run("Failure - Own parent", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		collection := mustCreate(t, svc, "Men", nil)

		// Act
		_, err := svc.UpdateCollection(ctx, collection.ID, &models.UpdateCollectionRequest{ParentCollectionID: &collection.ID})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeInvalidHierarchy, "A collection cannot be its own subcollection")
	})

	t.Run("Failure - Collection with subcollections", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		mustCreate(t, svc, "Tops", &root.ID)
		other := mustCreate(t, svc, "Women", nil)

		// Act
		_, err := svc.UpdateCollection(ctx, root.ID, &models.UpdateCollectionRequest{ParentCollectionID: &other.ID})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeInvalidHierarchy, "Cannot set a collection with subcollections as a subcollection")
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)

		// Act
		_, err := svc.UpdateCollection(ctx, 404, &models.UpdateCollectionRequest{Name: ptr("Men")})

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Collection not found")
	})
}

func TestCollectionService_DeleteCollection(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Children and memberships go with the parent", func(t *testing.T) {
		// Arrange
		store, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		tops := mustCreate(t, svc, "Tops", &root.ID)
		bottoms := mustCreate(t, svc, "Bottoms", &root.ID)
		tee, pants := store.addProduct("Tee"), store.addProduct("Pants")
		_, err := svc.AddProduct(ctx, tops.ID, tee)
		require.NoError(t, err)
		_, err = svc.AddProduct(ctx, bottoms.ID, pants)
		require.NoError(t, err)

		// Act
		err = svc.DeleteCollection(ctx, root.ID)

		// Assert
		require.NoError(t, err)
		all, err := svc.ListCollections(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Empty(t, store.members)
		assert.Len(t, store.products, 2)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)

		// Act
		err := svc.DeleteCollection(ctx, 404)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeNotFound, "Collection not found")
	})
}

func TestCollectionService_Subcollections(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - List in attach order, then unlink", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		bottoms := mustCreate(t, svc, "Bottoms", nil)
		tops := mustCreate(t, svc, "Tops", nil)
		_, err := svc.AddSubcollection(ctx, root.ID, tops.ID)
		require.NoError(t, err)
		_, err = svc.AddSubcollection(ctx, root.ID, bottoms.ID)
		require.NoError(t, err)

		// Act
		children, err := svc.ListSubcollections(ctx, root.ID)
		require.NoError(t, err)
		err = svc.RemoveSubcollection(ctx, root.ID, tops.ID)

		// Assert
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, tops.ID, children[0].ID)
		assert.Equal(t, bottoms.ID, children[1].ID)

		reloaded, err := svc.GetCollection(ctx, tops.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.ParentCollectionID)

		roots, err := svc.ListCollections(ctx, true)
		require.NoError(t, err)
		assert.Len(t, roots, 2)
	})

	t.Run("Failure - Parent without subcollections", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		root := mustCreate(t, svc, "Men", nil)
		loose := mustCreate(t, svc, "Outlet", nil)

		// Act
		_, listErr := svc.ListSubcollections(ctx, root.ID)
		removeErr := svc.RemoveSubcollection(ctx, root.ID, loose.ID)

		// Assert
		assertAppError(t, listErr, appErrors.ErrCodeInvalidHierarchy, "Parent collection doesn't have subcollections")
		assertAppError(t, removeErr, appErrors.ErrCodeInvalidHierarchy, "Parent collection doesn't have subcollections")
	})

	t.Run("Failure - Child of another parent", func(t *testing.T) {
		// Arrange
		_, svc, _ := newCatalog(t)
		men := mustCreate(t, svc, "Men", nil)
		women := mustCreate(t, svc, "Women", nil)
		mustCreate(t, svc, "Tops", &men.ID)
		dresses := mustCreate(t, svc, "Dresses", &women.ID)

		// Act
		err := svc.RemoveSubcollection(ctx, men.ID, dresses.ID)

		// Assert
		assertAppError(t, err, appErrors.ErrCodeInvalidHierarchy, "Subcollection does not belong to this parent collection")
	})
}

func TestCollectionService_GetCollection_DatabaseError(t *testing.T) {
	// Arrange
	collections := mocks.NewCollectionRepository(t)
	products := mocks.NewProductRepository(t)
	svc := service.NewCollectionService(collections, products, &mocks.Transactor{})
	ctx := context.Background()

	collections.On("GetCollectionByID", ctx, int64(1)).Return(nil, errors.New("connection reset")).Once()

	// Act
	collection, err := svc.GetCollection(ctx, 1)

	// Assert
	assert.Nil(t, collection)
	assertAppError(t, err, appErrors.ErrCodeDatabaseError, "Failed to load collection")
}

func TestProductDeletion_UnlinksCollections(t *testing.T) {
	ctx := context.Background()

	// Arrange
	store, svc, tx := newCatalog(t)
	products := service.NewProductService(fakeProductRepo{store}, fakeCollectionRepo{store}, tx)

	summer := mustCreate(t, svc, "Summer", nil)
	outlet := mustCreate(t, svc, "Outlet", nil)
	tee := store.addProduct("Tee")
	polo := store.addProduct("Polo")

	for _, pair := range [][2]int64{{summer.ID, tee}, {summer.ID, polo}, {outlet.ID, tee}} {
		_, err := svc.AddProduct(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	// Act
	err := products.DeleteProduct(ctx, tee)

	// Assert
	require.NoError(t, err)

	got, err := svc.GetCollection(ctx, summer.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{polo}, got.ProductIDs)

	got, err = svc.GetCollection(ctx, outlet.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ProductIDs)

	listed, err := svc.ListCollectionProducts(ctx, summer.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, polo, listed[0].ID)

	_, err = svc.AddProduct(ctx, outlet.ID, tee)
	assertAppError(t, err, appErrors.ErrCodeNotFound, "Product not found or has been deleted")

	err = products.DeleteProduct(ctx, tee)
	assertAppError(t, err, appErrors.ErrCodeNotFound, "Product not found")
}
