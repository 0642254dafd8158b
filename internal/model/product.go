package model

import "time"

// Product is a catalog entry. IDs are catalog slugs (e.g. "rtx-4070-super"),
// assigned when the product is created, never reused.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	Price     int64     `json:"price"` // In smallest currency unit (cents)
	Stock     int       `json:"stock"`
	ImageURL  *string   `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProductRequest is used by admins to add a catalog entry
type CreateProductRequest struct {
	ID       string  `json:"id" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Brand    string  `json:"brand" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    int64   `json:"price" binding:"required,gt=0"`
	Stock    int     `json:"stock" binding:"gte=0"`
	ImageURL *string `json:"image_url"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name,omitempty"`
	Brand    *string `json:"brand,omitempty"`
	Category *string `json:"category,omitempty"`
	Price    *int64  `json:"price,omitempty" binding:"omitempty,gt=0"`
	Stock    *int    `json:"stock,omitempty" binding:"omitempty,gte=0"`
	ImageURL *string `json:"image_url,omitempty"`
}

// ProductFilters contains filter parameters for catalog queries
type ProductFilters struct {
	Category *string
	Brand    *string
}
