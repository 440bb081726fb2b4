package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services/mocks"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/testutils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateProduct(t *testing.T) {
	admin := testutils.TestUser(models.RoleAdmin)
	body := map[string]any{
		"name":        "Classic Tee",
		"description": "Heavyweight cotton tee",
		"type":        "TEE",
		"gender":      "BOTH",
		"price":       "29.99",
		"sizes":       []string{"M", "L"},
		"images":      []map[string]any{{"url": "https://cdn.example.com/tee.jpg", "isMain": true}},
	}

	t.Run("Success - 201", func(t *testing.T) {
		// Arrange
		svc := mocks.NewProductService(t)
		handler := handlers.NewProductHandler(svc)

		svc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req *models.CreateProductRequest) bool {
			return req.Name == "Classic Tee" && req.Price.Equal(decimal.RequireFromString("29.99"))
		})).Return(&models.Product{ID: 1, Name: "Classic Tee", Price: decimal.RequireFromString("29.99")}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/product/create", jsonBody(t, body), admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		product := decodeData[models.Product](t, rr)
		assert.Equal(t, "29.99", product.Price.StringFixed(2))
	})

	t.Run("Failure - Unknown type", func(t *testing.T) {
		// Arrange
		handler := handlers.NewProductHandler(mocks.NewProductService(t))
		invalid := map[string]any{}
		for k, v := range body {
			invalid[k] = v
		}
		invalid["type"] = "CAPE"

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/product/create", jsonBody(t, invalid), admin, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CreateProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, decode(t, rr).Error.Code)
	})
}

func TestListProducts(t *testing.T) {

	t.Run("Success - Filters are forwarded", func(t *testing.T) {
		// Arrange
		svc := mocks.NewProductService(t)
		handler := handlers.NewProductHandler(svc)

		svc.On("ListProducts", mock.Anything, mock.MatchedBy(func(f models.ProductFilter) bool {
			return f.Name == "tee" && f.Type == models.ProductTypeTee && f.Page == 1 && f.Size == 5 &&
				f.MinPrice.Equal(decimal.NewFromInt(10)) && f.MaxPrice == nil
		})).Return(&models.PaginatedResponse{Data: []*models.Product{}, Total: 6, Page: 1, PageSize: 5}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/product/list?name=tee&type=TEE&minPrice=10&page=1&size=5", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		page := decodeData[models.PaginatedResponse](t, rr)
		assert.Equal(t, 6, page.Total)
		assert.Equal(t, 5, page.PageSize)
	})

	t.Run("Failure - Bad price", func(t *testing.T) {
		// Arrange
		handler := handlers.NewProductHandler(mocks.NewProductService(t))
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/product/list?maxPrice=cheap", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid maxPrice", decode(t, rr).Error.Message)
	})

	t.Run("Failure - Page out of range", func(t *testing.T) {
		// Arrange
		svc := mocks.NewProductService(t)
		handler := handlers.NewProductHandler(svc)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/product/list?page=9223372036854775807&size=100", nil, nil)
		rr := httptest.NewRecorder()

		// Act
		handler.ListProducts().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid page", decode(t, rr).Error.Message)
		svc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})
}

func TestGetAndDeleteProduct(t *testing.T) {

	t.Run("Get - Not found", func(t *testing.T) {
		// Arrange
		svc := mocks.NewProductService(t)
		handler := handlers.NewProductHandler(svc)

		svc.On("GetProduct", mock.Anything, int64(9)).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/product/show/9", nil, map[string]string{"id": "9"})
		rr := httptest.NewRecorder()

		// Act
		handler.GetProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Delete - 204", func(t *testing.T) {
		// Arrange
		svc := mocks.NewProductService(t)
		handler := handlers.NewProductHandler(svc)

		svc.On("DeleteProduct", mock.Anything, int64(9)).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/product/delete/9", nil,
			testutils.TestUser(models.RoleAdmin), map[string]string{"id": "9"})
		rr := httptest.NewRecorder()

		// Act
		handler.DeleteProduct().ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
