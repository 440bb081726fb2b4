package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProcess  OrderStatus = "IN_PROCESS"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusInShipment OrderStatus = "IN_SHIPMENT"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
)

// StatusFor derives the order status from its fulfilment timestamps.
// The status is never stored.
func StatusFor(shippedAt, deliveredAt *time.Time) OrderStatus {
	switch {
	case deliveredAt != nil:
		return OrderStatusDelivered
	case shippedAt != nil:
		return OrderStatusShipped
	default:
		return OrderStatusPending
	}
}

type Order struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"-"`
	AddressID   int64           `json:"-"`
	CreatedAt   time.Time       `json:"createdAt"`
	ShippedAt   *time.Time      `json:"shippedAt"`
	DeliveredAt *time.Time      `json:"deliveredAt"`
	Address     *Address        `json:"address"`
	Products    []OrderProduct  `json:"products"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
}

type OrderProduct struct {
	ID              int64           `json:"-"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

// Summarize fills the derived fields: line subtotals, the order total and the status.
func (o *Order) Summarize() {
	total := decimal.Zero

	for i := range o.Products {
		line := &o.Products[i]
		line.Subtotal = line.PriceAtPurchase.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
		total = total.Add(line.Subtotal)
	}

	o.Total = total.Round(2)
	o.Status = StatusFor(o.ShippedAt, o.DeliveredAt)
}

type CreateOrderRequest struct {
	AddressID int64              `json:"addressId" validate:"required,gt=0"`
	Products  []OrderItemRequest `json:"products" validate:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

type UpdateOrderRequest struct {
	ShippedAt   *time.Time `json:"shippedAt"`
	DeliveredAt *time.Time `json:"deliveredAt"`
}
