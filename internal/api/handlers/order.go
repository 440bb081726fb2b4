package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	service "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/services"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
//
//	@Summary		Create a new order
//	@Description	Places an order shipped to one of the caller's addresses. Prices are captured at purchase time.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Address and order lines"
//	@Success		201		{object}	models.Order				"Order created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		403		{object}	response.ErrorResponse		"Address does not belong to user"
//	@Failure		404		{object}	response.ErrorResponse		"Address or product not found"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/order/create [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, logger, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), user, &req)
		if err != nil {
			logger.Error("Failed to create order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, order)
	}
}

// ListOrders godoc
//
//	@Summary	List the caller's orders
//	@Tags		Orders
//	@Produce	json
//	@Param		page	query		int												false	"Zero-based page (default: 0)"	minimum(0)
//	@Param		size	query		int												false	"Page size (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.Order}	"Page of orders"
//	@Failure	403		{object}	response.ErrorResponse							"Authentication required"
//	@Security	BearerAuth
//	@Router		/order/list [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		h.list(w, r, user.ID)
	}
}

// ListUserOrders godoc
//
//	@Summary	List the orders of any user
//	@Tags		Orders
//	@Produce	json
//	@Param		userId	path		int												true	"User ID"
//	@Param		page	query		int												false	"Zero-based page (default: 0)"	minimum(0)
//	@Param		size	query		int												false	"Page size (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200		{object}	models.PaginatedResponse{data=[]models.Order}	"Page of orders"
//	@Failure	403		{object}	response.ErrorResponse							"Admin role required"
//	@Security	BearerAuth
//	@Router		/order/list/{userId} [get]
func (h *OrderHandler) ListUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, err := utils.ParseID(r, "userId")
		if err != nil {
			response.Error(w, err)
			return
		}

		h.list(w, r, userID)
	}
}

func (h *OrderHandler) list(w http.ResponseWriter, r *http.Request, userID int64) {

	page, err := utils.ParsePagination(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), userID, page)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, orders)
}

// GetOrder godoc
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Produce	json
//	@Param		id	path		int						true	"Order ID"
//	@Success	200	{object}	models.Order			"Order"
//	@Failure	403	{object}	response.ErrorResponse	"Order does not belong to user"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/order/show/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, logger, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), user, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.Int64("orderId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// UpdateOrder godoc
//
//	@Summary		Set fulfilment timestamps
//	@Description	Only shippedAt and deliveredAt can change; the status is derived from them.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Order ID"
//	@Param			order	body		models.UpdateOrderRequest	true	"Timestamps"
//	@Success		200		{object}	models.Order				"Order updated"
//	@Failure		403		{object}	response.ErrorResponse		"Order does not belong to user"
//	@Failure		404		{object}	response.ErrorResponse		"Order not found"
//	@Security		BearerAuth
//	@Router			/order/edit/{id} [put]
func (h *OrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, logger, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order input", slog.Int64("orderId", id))
			return
		}

		order, err := h.orderService.UpdateOrder(r.Context(), user, id, &req)
		if err != nil {
			response.Error(w, err)
			return
		}

		logger.Info("Order updated", slog.Int64("orderId", id), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

// DeleteOrder godoc
//
//	@Summary	Delete an order
//	@Tags		Orders
//	@Param		id	path	int	true	"Order ID"
//	@Success	204	"Order deleted"
//	@Failure	403	{object}	response.ErrorResponse	"Order does not belong to user"
//	@Failure	404	{object}	response.ErrorResponse	"Order not found"
//	@Security	BearerAuth
//	@Router		/order/delete/{id} [delete]
func (h *OrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		user, _, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.orderService.DeleteOrder(r.Context(), user, id); err != nil {
			response.Error(w, err)
			return
		}

		response.NoContent(w)
	}
}
