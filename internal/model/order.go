package model

import "time"

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Order is a placed purchase. Order items reference products with a RESTRICT
// rule, so a product cannot be deleted while any order line points at it.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int         `json:"user_id"`
	Total     int64       `json:"total"` // In smallest currency unit (cents)
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        int64  `json:"id"`
	OrderID   int64  `json:"order_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderRequest places an order from one of the caller's saved builds
type CreateOrderRequest struct {
	BuildID int64 `json:"buildId" binding:"required"`
}
