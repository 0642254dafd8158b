package model

import "time"

// Build is a user-curated named list of products with a precomputed total price.
// Ownership is fixed at creation; builds are never reassigned.
type Build struct {
	ID         int64       `json:"id"`
	UserID     int         `json:"user_id"`
	Name       string      `json:"name"`
	TotalPrice int64       `json:"totalPrice"`
	CreatedAt  time.Time   `json:"created_at"`
	Items      []BuildItem `json:"items"`
}

// BuildItem is one (product, quantity) line within a Build
type BuildItem struct {
	ID        int64  `json:"id"`
	BuildID   int64  `json:"build_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateBuildRequest creates a Build together with its items in one call.
// Each entry in Items is a product ID; duplicates are kept as separate lines.
type CreateBuildRequest struct {
	Name       string   `json:"name" binding:"required"`
	TotalPrice int64    `json:"totalPrice" binding:"required,gt=0"`
	Items      []string `json:"items" binding:"required,min=1"`
}
