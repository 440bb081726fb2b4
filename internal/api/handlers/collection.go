package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CollectionHandler struct {
	collectionService service.CollectionService
	validator         *validator.Validate
}

func NewCollectionHandler(collectionService service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService, validator: validator.New()}
}

// ListCollections godoc
//
//	@Summary	List collections
//	@Tags		Collections
//	@Produce	json
//	@Param		onlyRoot	query		bool					false	"Only collections without a parent"
//	@Success	200			{array}		models.Collection		"Collections"
//	@Failure	400			{object}	response.ErrorResponse	"Invalid onlyRoot"
//	@Failure	403			{object}	response.ErrorResponse	"Admin role required"
//	@Security	BearerAuth
//	@Router		/collection/list [get]
func (h *CollectionHandler) ListCollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		onlyRoot := false
		if raw := r.URL.Query().Get("onlyRoot"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				response.Error(w, appErrors.BadRequestError("Invalid onlyRoot"))
				return
			}
			onlyRoot = parsed
		}

		collections, err := h.collectionService.ListCollections(r.Context(), onlyRoot)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, collections)
	}
}

// GetCollection godoc
//
//	@Summary	Get a collection
//	@Tags		Collections
//	@Produce	json
//	@Param		id	path		int						true	"Collection ID"
//	@Success	200	{object}	models.Collection		"Collection"
//	@Failure	404	{object}	response.ErrorResponse	"Collection not found"
//	@Security	BearerAuth
//	@Router		/collection/show/{id} [get]
func (h *CollectionHandler) GetCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		collection, err := h.collectionService.GetCollection(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, collection)
	}
}

// CreateCollection godoc
//
//	@Summary		Create a collection
//	@Description	Creating a subcollection removes the products held directly by the parent.
//	@Tags			Collections
//	@Accept			json
//	@Produce		json
//	@Param			collection	body		models.CreateCollectionRequest	true	"Collection details"
//	@Success		201			{object}	models.Collection				"Collection created"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error or invalid hierarchy"
//	@Failure		404			{object}	response.ErrorResponse			"Parent collection not found"
//	@Security		BearerAuth
//	@Router			/collection/create [post]
func (h *CollectionHandler) CreateCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCollectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create collection input")
			return
		}

		collection, err := h.collectionService.CreateCollection(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create collection", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, collection)
	}
}

// UpdateCollection godoc
//
//	@Summary	Rename or reparent a collection
//	@Tags		Collections
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int								true	"Collection ID"
//	@Param		collection	body		models.UpdateCollectionRequest	true	"Fields to change"
//	@Success	200			{object}	models.Collection				"Collection updated"
//	@Failure	400			{object}	response.ErrorResponse			"Validation error or invalid hierarchy"
//	@Failure	404			{object}	response.ErrorResponse			"Collection not found"
//	@Security	BearerAuth
//	@Router		/collection/edit/{id} [put]
func (h *CollectionHandler) UpdateCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCollectionRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update collection input", slog.Int64("collectionId", id))
			return
		}

		collection, err := h.collectionService.UpdateCollection(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update collection", slog.Int64("collectionId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, collection)
	}
}

// DeleteCollection godoc
//
//	@Summary		Delete a collection
//	@Description	Deletes the collection and its subcollections. Products are unlinked, never deleted.
//	@Tags			Collections
//	@Param			id	path	int	true	"Collection ID"
//	@Success		204	"Collection deleted"
//	@Failure		404	{object}	response.ErrorResponse	"Collection not found"
//	@Security		BearerAuth
//	@Router			/collection/delete/{id} [delete]
func (h *CollectionHandler) DeleteCollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.collectionService.DeleteCollection(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

// ListCollectionProducts godoc
//
//	@Summary	Products of a collection
//	@Tags		Collections
//	@Produce	json
//	@Param		collectionId	path		int						true	"Collection ID"
//	@Success	200				{array}		models.Product			"Products"
//	@Failure	404				{object}	response.ErrorResponse	"Collection not found"
//	@Security	BearerAuth
//	@Router		/collection/{collectionId}/products [get]
func (h *CollectionHandler) ListCollectionProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.ParseID(r, "collectionId")
		if err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.collectionService.ListCollectionProducts(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// AddProduct godoc
//
//	@Summary	Add a product to a collection
//	@Tags		Collections
//	@Produce	json
//	@Param		collectionId	path		int						true	"Collection ID"
//	@Param		productId		path		int						true	"Product ID"
//	@Success	200				{object}	models.Collection		"Updated collection"
//	@Failure	404				{object}	response.ErrorResponse	"Collection or product not found"
//	@Failure	409				{object}	response.ErrorResponse	"Product already in the parent or a subcollection"
//	@Security	BearerAuth
//	@Router		/collection/{collectionId}/products/{productId} [post]
func (h *CollectionHandler) AddProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		collectionID, productID, ok := parseIDPair(w, r, "collectionId", "productId")
		if !ok {
			return
		}

		collection, err := h.collectionService.AddProduct(r.Context(), collectionID, productID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, collection)
	}
}

// RemoveProduct godoc
//
//	@Summary	Remove a product from a collection
//	@Tags		Collections
//	@Param		collectionId	path	int	true	"Collection ID"
//	@Param		productId		path	int	true	"Product ID"
//	@Success	204				"Product removed"
//	@Failure	404				{object}	response.ErrorResponse	"Collection or product not found"
//	@Security	BearerAuth
//	@Router		/collection/{collectionId}/products/{productId} [delete]
func (h *CollectionHandler) RemoveProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		collectionID, productID, ok := parseIDPair(w, r, "collectionId", "productId")
		if !ok {
			return
		}

		if err := h.collectionService.RemoveProduct(r.Context(), collectionID, productID); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

// ListSubcollections godoc
//
//	@Summary	Subcollections of a collection
//	@Tags		Collections
//	@Produce	json
//	@Param		parentId	path		int						true	"Parent collection ID"
//	@Success	200			{array}		models.Collection		"Subcollections"
//	@Failure	400			{object}	response.ErrorResponse	"Collection has no subcollections"
//	@Failure	404			{object}	response.ErrorResponse	"Parent collection not found"
//	@Security	BearerAuth
//	@Router		/collection/{parentId}/subcollections [get]
func (h *CollectionHandler) ListSubcollections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		parentID, err := utils.ParseID(r, "parentId")
		if err != nil {
			response.Error(w, err)
			return
		}

		children, err := h.collectionService.ListSubcollections(r.Context(), parentID)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, children)
	}
}

// AddSubcollection godoc
//
//	@Summary		Attach a subcollection
//	@Description	The parent loses the products it held directly; the subcollection keeps its own.
//	@Tags			Collections
//	@Produce		json
//	@Param			parentId		path		int						true	"Parent collection ID"
//	@Param			subcollectionId	path		int						true	"Subcollection ID"
//	@Success		200				{object}	models.Collection		"Updated parent"
//	@Failure		400				{object}	response.ErrorResponse	"Invalid hierarchy"
//	@Failure		404				{object}	response.ErrorResponse	"Collection not found"
//	@Failure		409				{object}	response.ErrorResponse	"Products shared by both collections"
//	@Security		BearerAuth
//	@Router			/collection/{parentId}/subcollections/{subcollectionId} [post]
func (h *CollectionHandler) AddSubcollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		parentID, childID, ok := parseIDPair(w, r, "parentId", "subcollectionId")
		if !ok {
			return
		}

		parent, err := h.collectionService.AddSubcollection(r.Context(), parentID, childID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to attach subcollection",
				slog.Int64("parentId", parentID),
				slog.Int64("subcollectionId", childID),
				slog.Any("error", err),
			)
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, parent)
	}
}

// RemoveSubcollection godoc
//
//	@Summary	Detach a subcollection
//	@Tags		Collections
//	@Param		parentId		path	int	true	"Parent collection ID"
//	@Param		subcollectionId	path	int	true	"Subcollection ID"
//	@Success	204				"Subcollection detached"
//	@Failure	400				{object}	response.ErrorResponse	"Invalid hierarchy"
//	@Failure	404				{object}	response.ErrorResponse	"Collection not found"
//	@Security	BearerAuth
//	@Router		/collection/{parentId}/subcollections/{subcollectionId} [delete]
func (h *CollectionHandler) RemoveSubcollection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		parentID, childID, ok := parseIDPair(w, r, "parentId", "subcollectionId")
		if !ok {
			return
		}

		if err := h.collectionService.RemoveSubcollection(r.Context(), parentID, childID); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}

func parseIDPair(w http.ResponseWriter, r *http.Request, first, second string) (int64, int64, bool) {

	a, err := utils.ParseID(r, first)
	if err != nil {
		response.Error(w, err)
		return 0, 0, false
	}

	b, err := utils.ParseID(r, second)
	if err != nil {
		response.Error(w, err)
		return 0, 0, false
	}

	return a, b, true
}
