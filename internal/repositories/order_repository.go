package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/models"
	"github.com/aaravmahajanofficial/apparel-commerce-backend/internal/utils"
	"github.com/lib/pq"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByID(ctx context.Context, id int64) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64, page models.Pagination) ([]*models.Order, int, error)
	UpdateOrderTimestamps(ctx context.Context, order *models.Order) error
	DeleteOrder(ctx context.Context, id int64) error
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

const orderSelect = `
	SELECT o.id, o.address_id, o.created_at, o.shipped_at, o.delivered_at,
	       a.id, a.user_id, a.first_name, a.last_name, a.address, a.address2, a.area, a.state,
	       a.country, a.zip_code, a.phone_number, a.is_default
	FROM orders o
	JOIN addresses a ON a.id = o.address_id`

// CreateOrder inserts the order header and its lines; call it inside a transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	err := db.QueryRowContext(dbCtx, `INSERT INTO orders (address_id) VALUES ($1) RETURNING id, created_at`, order.AddressID).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	for i := range order.Products {
		line := &order.Products[i]
		err := db.QueryRowContext(dbCtx,
			`INSERT INTO order_products (order_id, product_id, quantity, price_at_purchase) VALUES ($1, $2, $3, $4) RETURNING id`,
			order.ID, line.ProductID, line.Quantity, line.PriceAtPurchase,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("inserting order line for product %d: %w", line.ProductID, err)
		}
	}

	return nil
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int64) (*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	order, err := scanOrder(conn(ctx, r.DB).QueryRowContext(dbCtx, orderSelect+` WHERE o.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("querying order %d: %w", id, err)
	}

	if err := r.attachLines(ctx, []*models.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrdersByUser returns the user's orders, newest first.
func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64, page models.Pagination) ([]*models.Order, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	db := conn(ctx, r.DB)

	var total int

	countQuery := `SELECT COUNT(*) FROM orders o JOIN addresses a ON a.id = o.address_id WHERE a.user_id = $1`

	if err := db.QueryRowContext(dbCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting orders: %w", err)
	}

	rows, err := db.QueryContext(dbCtx, orderSelect+` WHERE a.user_id = $1 ORDER BY o.created_at DESC, o.id DESC LIMIT $2 OFFSET $3`,
		userID, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}

	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating orders: %w", err)
	}

	if err := r.attachLines(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateOrderTimestamps(ctx context.Context, order *models.Order) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := conn(ctx, r.DB).ExecContext(dbCtx,
		`UPDATE orders SET shipped_at = $1, delivered_at = $2 WHERE id = $3`,
		order.ShippedAt, order.DeliveredAt, order.ID)
	if err != nil {
		return fmt.Errorf("updating order %d: %w", order.ID, err)
	}

	return expectAffected(result)
}

func (r *orderRepository) DeleteOrder(ctx context.Context, id int64) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := conn(ctx, r.DB).ExecContext(dbCtx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting order %d: %w", id, err)
	}

	return expectAffected(result)
}

// attachLines loads the lines of a batch of orders and fills the derived totals.
// Product names are read regardless of soft deletion.
func (r *orderRepository) attachLines(ctx context.Context, orders []*models.Order) error {

	if len(orders) == 0 {
		return nil
	}

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	byID := make(map[int64]*models.Order, len(orders))
	ids := make([]int64, 0, len(orders))

	for _, order := range orders {
		order.Products = []models.OrderProduct{}
		byID[order.ID] = order
		ids = append(ids, order.ID)
	}

	query := `
		SELECT op.id, op.order_id, op.product_id, p.name, op.quantity, op.price_at_purchase
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = ANY($1)
		ORDER BY op.order_id, op.id`

	rows, err := conn(ctx, r.DB).QueryContext(dbCtx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("querying order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderProduct
		var orderID int64
		if err := rows.Scan(&line.ID, &orderID, &line.ProductID, &line.ProductName, &line.Quantity, &line.PriceAtPurchase); err != nil {
			return fmt.Errorf("scanning order line: %w", err)
		}
		if order, ok := byID[orderID]; ok {
			order.Products = append(order.Products, line)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order lines: %w", err)
	}

	for _, order := range orders {
		order.Summarize()
	}

	return nil
}

func scanOrder(row rowScanner) (*models.Order, error) {

	order := &models.Order{Address: &models.Address{}}
	a := order.Address

	err := row.Scan(&order.ID, &order.AddressID, &order.CreatedAt, &order.ShippedAt, &order.DeliveredAt,
		&a.ID, &a.UserID, &a.FirstName, &a.LastName, &a.Address, &a.Address2, &a.Area, &a.State,
		&a.Country, &a.ZipCode, &a.PhoneNumber, &a.IsDefault)
	if err != nil {
		return nil, err
	}

	order.UserID = a.UserID

	return order, nil
}
