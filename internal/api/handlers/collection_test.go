package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services/mocks"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateCollection(t *testing.T) {
	admin := testutils.TestUser(models.RoleAdmin)

	t.Run("Success - 201", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)
		parentID := int64(1)

		svc.On("CreateCollection", mock.Anything, &models.CreateCollectionRequest{Name: "Tops", ParentCollectionID: &parentID}).
			Return(&models.Collection{ID: 2, Name: "Tops", ParentCollectionID: &parentID, ProductIDs: []int64{}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/create",
			jsonBody(t, map[string]any{"name": "Tops", "parentCollectionId": 1}), admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateCollection().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		collection := decodeData[models.Collection](t, rr)
		assert.Equal(t, int64(2), collection.ID)
		assert.Equal(t, int64(1), *collection.ParentCollectionID)
	})

	t.Run("Failure - Missing name", func(t *testing.T) {
		// Arrange
		handler := handlers.NewCollectionHandler(mocks.NewCollectionService(t))
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/create", strings.NewReader(`{}`), admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateCollection().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decode(t, rr).Error.Code)
	})
}

func TestAddSubcollection(t *testing.T) {
	admin := testutils.TestUser(models.RoleAdmin)
	params := map[string]string{"parentId": "1", "subcollectionId": "2"}

	t.Run("Success - 200 with the parent", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)

		svc.On("AddSubcollection", mock.Anything, int64(1), int64(2)).Return(&models.Collection{
			ID:             1,
			Name:           "Men",
			ProductIDs:     []int64{},
			Subcollections: []models.Subcollection{{ID: 2, Name: "Tops"}},
		}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/1/subcollections/2", nil, admin, params)
		rr := httptest.NewRecorder()

		// Act
		handler.AddSubcollection().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		parent := decodeData[models.Collection](t, rr)
		assert.Empty(t, parent.ProductIDs)
		assert.Equal(t, []models.Subcollection{{ID: 2, Name: "Tops"}}, parent.Subcollections)
	})

	t.Run("Failure - Invalid hierarchy is a 400", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)

		svc.On("AddSubcollection", mock.Anything, int64(1), int64(2)).
			Return(nil, appErrors.InvalidHierarchyError("Subcollection already has a parent. Remove it first.")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/1/subcollections/2", nil, admin, params)
		rr := httptest.NewRecorder()

		// Act
		handler.AddSubcollection().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decode(t, rr)
		assert.Equal(t, appErrors.ErrCodeInvalidHierarchy, env.Error.Code)
		assert.Equal(t, "Subcollection already has a parent. Remove it first.", env.Error.Message)
	})

	t.Run("Failure - Non numeric id", func(t *testing.T) {
		// Arrange
		handler := handlers.NewCollectionHandler(mocks.NewCollectionService(t))
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/x/subcollections/2", nil, admin,
			map[string]string{"parentId": "x", "subcollectionId": "2"})
		rr := httptest.NewRecorder()

		// Act
		handler.AddSubcollection().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCollectionProductLinks(t *testing.T) {
	admin := testutils.TestUser(models.RoleAdmin)
	params := map[string]string{"collectionId": "3", "productId": "7"}

	t.Run("Add - Conflict is a 409", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)

		svc.On("AddProduct", mock.Anything, int64(3), int64(7)).
			Return(nil, appErrors.ConflictError("Product is already in the parent collection")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/collection/3/products/7", nil, admin, params)
		rr := httptest.NewRecorder()

		// Act
		handler.AddProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Remove - 204", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)

		svc.On("RemoveProduct", mock.Anything, int64(3), int64(7)).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/collection/3/products/7", nil, admin, params)
		rr := httptest.NewRecorder()

		// Act
		handler.RemoveProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestListCollections(t *testing.T) {
	admin := testutils.TestUser(models.RoleAdmin)

	t.Run("Only roots", func(t *testing.T) {
		// Arrange
		svc := mocks.NewCollectionService(t)
		handler := handlers.NewCollectionHandler(svc)

		svc.On("ListCollections", mock.Anything, true).Return([]*models.Collection{{ID: 1, Name: "Men"}}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/collection/list?onlyRoot=true", nil, admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListCollections().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeData[[]models.Collection](t, rr), 1)
	})

	t.Run("Invalid flag", func(t *testing.T) {
		// Arrange
		handler := handlers.NewCollectionHandler(mocks.NewCollectionService(t))
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/collection/list?onlyRoot=maybe", nil, admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListCollections().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteCollection(t *testing.T) {
	// Arrange
	svc := mocks.NewCollectionService(t)
	handler := handlers.NewCollectionHandler(svc)

	svc.On("DeleteCollection", mock.Anything, int64(4)).Return(appErrors.NotFoundError("Collection not found")).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/collection/delete/4", nil,
		testutils.TestUser(models.RoleAdmin), map[string]string{"id": "4"})
	rr := httptest.NewRecorder()

	// Act
	handler.DeleteCollection().ServeHTTP(rr, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Collection not found", decode(t, rr).Error.Message)
}
