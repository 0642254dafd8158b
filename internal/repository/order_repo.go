package repository

import (
	"context"
	"fmt"

	"gpu_store/internal/model"
)

// OrderRepository defines operations for placed orders
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *model.Order) error
	FindByUser(ctx context.Context, userID int) ([]model.Order, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

// CreateWithItems inserts an order and its lines in one transaction
func (r *orderRepository) CreateWithItems(ctx context.Context, order *model.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderSQL := `INSERT INTO orders (user_id, total, status)
                 VALUES ($1, $2, $3) RETURNING id, created_at`
	err = tx.QueryRow(ctx, orderSQL, order.UserID, order.Total, order.Status).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemSQL := `INSERT INTO order_items (order_id, product_id, quantity)
                VALUES ($1, $2, $3) RETURNING id`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemSQL, item.OrderID, item.ProductID, item.Quantity).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order transaction: %w", err)
	}
	return nil
}

// FindByUser retrieves a user's orders, newest first, items included
func (r *orderRepository) FindByUser(ctx context.Context, userID int) ([]model.Order, error) {
	sql := `SELECT id, user_id, total, status, created_at
            FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders by user: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	var ids []int64
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemSQL := `SELECT id, order_id, product_id, quantity
                FROM order_items WHERE order_id = ANY($1) ORDER BY id`
	itemRows, err := r.db.Query(ctx, itemSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()

	itemsByOrder := make(map[int64][]model.OrderItem)
	for itemRows.Next() {
		var item model.OrderItem
		if err := itemRows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	if err = itemRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order item rows: %w", err)
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}
	return orders, nil
}
