package repository

import (
	"context"
	"errors"
	"fmt"

	"gpu_store/internal/model"

	"github.com/jackc/pgx/v5"
)

// BuildRepository defines operations for saved builds
type BuildRepository interface {
	CreateWithItems(ctx context.Context, build *model.Build) error
	FindByID(ctx context.Context, id int64) (*model.Build, error)
	FindByUser(ctx context.Context, userID int) ([]model.Build, error)
}

type buildRepository struct {
	db DB
}

// NewBuildRepository creates a new BuildRepository
func NewBuildRepository(db DB) BuildRepository {
	return &buildRepository{db: db}
}

// CreateWithItems inserts a build and all of its items in one transaction.
// Either the build and every item land, or nothing does.
func (r *buildRepository) CreateWithItems(ctx context.Context, build *model.Build) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin build transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op after a successful commit

	buildSQL := `INSERT INTO builds (user_id, name, total_price, created_at)
                 VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err = tx.QueryRow(ctx, buildSQL, build.UserID, build.Name, build.TotalPrice, build.CreatedAt).
		Scan(&build.ID, &build.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert build: %w", err)
	}

	itemSQL := `INSERT INTO build_items (build_id, product_id, quantity)
                VALUES ($1, $2, $3) RETURNING id`
	for i := range build.Items {
		item := &build.Items[i]
		item.BuildID = build.ID
		if err := tx.QueryRow(ctx, itemSQL, item.BuildID, item.ProductID, item.Quantity).Scan(&item.ID); err != nil {
			return fmt.Errorf("failed to insert build item %s: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit build transaction: %w", err)
	}
	return nil
}

// FindByID retrieves a build with its items
func (r *buildRepository) FindByID(ctx context.Context, id int64) (*model.Build, error) {
	sql := `SELECT id, user_id, name, total_price, created_at FROM builds WHERE id = $1`
	b := &model.Build{}
	err := r.db.QueryRow(ctx, sql, id).Scan(&b.ID, &b.UserID, &b.Name, &b.TotalPrice, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find build by ID: %w", err)
	}

	items, err := r.loadItems(ctx, []int64{b.ID})
	if err != nil {
		return nil, err
	}
	b.Items = items[b.ID]
	return b, nil
}

// FindByUser retrieves all builds owned by a user, newest first, items included
func (r *buildRepository) FindByUser(ctx context.Context, userID int) ([]model.Build, error) {
	sql := `SELECT id, user_id, name, total_price, created_at
            FROM builds WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query builds by user: %w", err)
	}
	defer rows.Close()

	var builds []model.Build
	var ids []int64
	for rows.Next() {
		var b model.Build
		if err := rows.Scan(&b.ID, &b.UserID, &b.Name, &b.TotalPrice, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan build row: %w", err)
		}
		builds = append(builds, b)
		ids = append(ids, b.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating build rows: %w", err)
	}

	if len(ids) == 0 {
		return builds, nil
	}
	itemsByBuild, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range builds {
		builds[i].Items = itemsByBuild[builds[i].ID]
	}
	return builds, nil
}

func (r *buildRepository) loadItems(ctx context.Context, buildIDs []int64) (map[int64][]model.BuildItem, error) {
	sql := `SELECT id, build_id, product_id, quantity
            FROM build_items WHERE build_id = ANY($1) ORDER BY id`
	rows, err := r.db.Query(ctx, sql, buildIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query build items: %w", err)
	}
	defer rows.Close()

	itemsByBuild := make(map[int64][]model.BuildItem)
	for rows.Next() {
		var item model.BuildItem
		if err := rows.Scan(&item.ID, &item.BuildID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan build item row: %w", err)
		}
		itemsByBuild[item.BuildID] = append(itemsByBuild[item.BuildID], item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating build item rows: %w", err)
	}
	return itemsByBuild, nil
}
