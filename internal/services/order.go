package service

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/errors"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/metrics"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	repository "github.com/aaravmahajanofficial/apparel-commerce-backend/internal/repositories"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/pkg/sendgrid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, user *models.User, req *models.CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, userID int64, page models.Pagination) (*models.PaginatedResponse, error)
	GetOrder(ctx context.Context, user *models.User, id int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, user *models.User, id int64, req *models.UpdateOrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, user *models.User, id int64) error
}

type orderService struct {
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	products  repository.ProductRepository
	tx        repository.Transactor
	email     sendgrid.EmailService
}

func NewOrderService(orders repository.OrderRepository, addresses repository.AddressRepository, products repository.ProductRepository, tx repository.Transactor, email sendgrid.EmailService) OrderService {
	return &orderService{orders: orders, addresses: addresses, products: products, tx: tx, email: email}
}

func (s *orderService) CreateOrder(ctx context.Context, user *models.User, req *models.CreateOrderRequest) (*models.Order, error) {

	address, err := s.addresses.GetAddressByID(ctx, req.AddressID)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Address not found")
		}
		return nil, appErrors.DatabaseError("Failed to load address").WithError(err)
	}

	if address.UserID != user.ID {
		return nil, appErrors.ForbiddenError("Address does not belong to user")
	}

	ids := make([]int64, 0, len(req.Products))
	for _, item := range req.Products {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.GetProductsByIDs(ctx, dedupeIDs(ids))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load products").WithError(err)
	}

	byID := make(map[int64]*models.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	order := &models.Order{
		UserID:    user.ID,
		AddressID: address.ID,
		Address:   address,
		Products:  make([]models.OrderProduct, 0, len(req.Products)),
	}

	for _, item := range req.Products {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, appErrors.NotFoundError(fmt.Sprintf("Product not found: %d", item.ProductID))
		}

		order.Products = append(order.Products, models.OrderProduct{
			ProductID:       product.ID,
			ProductName:     product.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.CreateOrder(ctx, order); err != nil {
			return appErrors.DatabaseError("Failed to create order").WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Summarize()

	middleware.LoggerFromContext(ctx).Info("Order created",
		slog.Int64("orderId", order.ID),
		slog.Int64("userId", user.ID),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.sendConfirmation(ctx, user, order)

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64, page models.Pagination) (*models.PaginatedResponse, error) {

	if page.Size <= 0 {
		page.Size = models.DefaultPageSize
	}

	orders, total, err := s.orders.ListOrdersByUser(ctx, userID, page)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return &models.PaginatedResponse{
		Data:     orders,
		Total:    total,
		Page:     page.Page,
		PageSize: page.Size,
	}, nil
}

func (s *orderService) GetOrder(ctx context.Context, user *models.User, id int64) (*models.Order, error) {
	return s.owned(ctx, user, id)
}

// UpdateOrder only touches the fulfilment timestamps; the status follows from them.
func (s *orderService) UpdateOrder(ctx context.Context, user *models.User, id int64, req *models.UpdateOrderRequest) (*models.Order, error) {

	order, err := s.owned(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if req.ShippedAt != nil {
		order.ShippedAt = req.ShippedAt
	}

	if req.DeliveredAt != nil {
		order.DeliveredAt = req.DeliveredAt
	}

	if err := s.orders.UpdateOrderTimestamps(ctx, order); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Order not found")
		}
		return nil, appErrors.DatabaseError("Failed to update order").WithError(err)
	}

	order.Summarize()

	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, user *models.User, id int64) error {

	if _, err := s.owned(ctx, user, id); err != nil {
		return err
	}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.orders.DeleteOrder(ctx, id); err != nil {
			if isNotFound(err) {
				return appErrors.NotFoundError("Order not found")
			}
			return appErrors.DatabaseError("Failed to delete order").WithError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	middleware.LoggerFromContext(ctx).Info("Order deleted", slog.Int64("orderId", id))

	return nil
}

func (s *orderService) owned(ctx context.Context, user *models.User, id int64) (*models.Order, error) {

	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Order not found")
		}
		return nil, appErrors.DatabaseError("Failed to load order").WithError(err)
	}

	if order.UserID != user.ID {
		return nil, appErrors.ForbiddenError("Order does not belong to user")
	}

	return order, nil
}

// sendConfirmation never fails the order; delivery problems are only logged.
func (s *orderService) sendConfirmation(ctx context.Context, user *models.User, order *models.Order) {

	if s.email == nil || !s.email.Enabled() {
		metrics.RecordOrderEmail(metrics.EmailDisabled)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), emailTimeout)
	defer cancel()

	msg := &sendgrid.Message{
		To:          user.Email,
		ToName:      strings.TrimSpace(user.FirstName + " " + user.LastName),
		Subject:     fmt.Sprintf("Your order #%d has been placed", order.ID),
		Content:     confirmationText(order),
		HTMLContent: confirmationHTML(order),
	}

	if err := s.email.Send(ctx, msg); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to send order confirmation",
			slog.Int64("orderId", order.ID),
			slog.Any("error", err),
		)
		metrics.RecordOrderEmail(metrics.EmailFailed)
		return
	}

	metrics.RecordOrderEmail(metrics.EmailSent)
}

func confirmationText(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Thanks for your order #%d.\n\n", order.ID)
	for _, line := range order.Products {
		fmt.Fprintf(&b, "%d x %s  %s\n", line.Quantity, line.ProductName, line.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", order.Total.StringFixed(2))

	return b.String()
}

func confirmationHTML(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<p>Thanks for your order <strong>#%d</strong>.</p><ul>", order.ID)
	for _, line := range order.Products {
		fmt.Fprintf(&b, "<li>%d &times; %s &mdash; %s</li>", line.Quantity, html.EscapeString(line.ProductName), line.Subtotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "</ul><p>Total: <strong>%s</strong></p>", order.Total.StringFixed(2))

	return b.String()
}
