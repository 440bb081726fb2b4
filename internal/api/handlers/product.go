package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Creates a product with its images and collection memberships. Exactly one image must be the main one.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Admin role required"
//	@Failure		404		{object}	response.ErrorResponse		"Collection not found"
//	@Failure		409		{object}	response.ErrorResponse		"Collection and its subcollection selected together"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/product/create [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary	Get an active product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		int						true	"Product ID"
//	@Success	200	{object}	models.Product			"Product"
//	@Failure	400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/product/show/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProduct(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Edit a product
//	@Description	Applies the present fields. An empty sizes list keeps the stored sizes; collectionIds replaces the memberships.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Product updated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Admin role required"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Failure		409		{object}	response.ErrorResponse		"Collection and its subcollection selected together"
//	@Security		BearerAuth
//	@Router			/product/edit/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update product input", slog.Int64("productId", id))
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.Int64("productId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary	Soft delete a product
//	@Tags		Products
//	@Param		id	path	int	true	"Product ID"
//	@Success	204	"Product deleted"
//	@Failure	403	{object}	response.ErrorResponse	"Admin role required"
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/product/delete/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

// ListProducts godoc
//
//	@Summary	List active products
//	@Tags		Products
//	@Produce	json
//	@Param		name		query		string												false	"Case-insensitive name fragment"
//	@Param		type		query		string												false	"Product type"
//	@Param		minPrice	query		number												false	"Lowest price"
//	@Param		maxPrice	query		number												false	"Highest price"
//	@Param		page		query		int													false	"Zero-based page (default: 0)"	minimum(0)
//	@Param		size		query		int													false	"Page size (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{data=[]models.Product}	"Page of products"
//	@Failure	400			{object}	response.ErrorResponse								"Invalid filter"
//	@Router		/product/list [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, err := utils.ParsePagination(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		query := r.URL.Query()

		filter := models.ProductFilter{
			Name: query.Get("name"),
			Type: models.ProductType(query.Get("type")),
			Page: page.Page,
			Size: page.Size,
		}

		if filter.MinPrice, err = parsePrice(query.Get("minPrice"), "minPrice"); err != nil {
			response.Error(w, err)
			return
		}

		if filter.MaxPrice, err = parsePrice(query.Get("maxPrice"), "maxPrice"); err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

func parsePrice(raw, name string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, appErrors.BadRequestError("Invalid " + name)
	}

	return &price, nil
}
