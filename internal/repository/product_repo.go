package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gpu_store/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrProductReferenced is returned by Delete when order or build rows still
// point at the product (foreign key RESTRICT).
var ErrProductReferenced = errors.New("product is referenced by existing records")

// ErrProductMissing is returned by Delete when no row matched the id.
var ErrProductMissing = errors.New("product does not exist")

const pgForeignKeyViolation = "23503"

// ProductRepository defines operations for catalog data
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new catalog entry
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	sql := `INSERT INTO products (id, name, brand, category, price, stock, image_url, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, p.ID, p.Name, p.Brand, p.Category, p.Price, p.Stock, p.ImageURL, p.CreatedAt).Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update modifies an existing catalog entry
func (r *productRepository) Update(ctx context.Context, p *model.Product) error {
	sql := `UPDATE products SET name = $1, brand = $2, category = $3, price = $4, stock = $5, image_url = $6
            WHERE id = $7`
	cmdTag, err := r.db.Exec(ctx, sql, p.Name, p.Brand, p.Category, p.Price, p.Stock, p.ImageURL, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductMissing
	}
	return nil
}

// FindByID retrieves a product by its catalog id
func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	p := &model.Product{}
	sql := `SELECT id, name, brand, category, price, stock, image_url, created_at
            FROM products WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return p, nil
}

// FindAll retrieves catalog entries with optional filters
func (r *productRepository) FindAll(ctx context.Context, filters model.ProductFilters) ([]model.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, name, brand, category, price, stock, image_url, created_at FROM products`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.Category != nil && *filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filters.Category)
		argCount++
	}
	if filters.Brand != nil && *filters.Brand != "" {
		conditions = append(conditions, fmt.Sprintf("brand = $%d", argCount))
		args = append(args, *filters.Brand)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Brand, &p.Category, &p.Price, &p.Stock, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Delete removes a product from the catalog. Fails with ErrProductReferenced
// while order or build rows still reference it, and with ErrProductMissing
// when the row is already gone (a second delete of the same id errors).
func (r *productRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM products WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrProductReferenced
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrProductMissing
	}
	return nil
}
