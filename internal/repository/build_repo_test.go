package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"gpu_store/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRepository_CreateWithItems(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBuildRepository(mock)
	now := time.Now()

	build := &model.Build{
		UserID:     7,
		Name:       "Build A",
		TotalPrice: 1500,
		CreatedAt:  now,
		Items: []model.BuildItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
			{ProductID: "p2", Quantity: 1}, // duplicates stay separate lines
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO builds`)).
		WithArgs(7, "Build A", int64(1500), now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), now))
	for i, productID := range []string{"p1", "p2", "p2"} {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO build_items`)).
			WithArgs(int64(42), productID, 1).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(100 + i)))
	}
	mock.ExpectCommit()

	err = repo.CreateWithItems(context.Background(), build)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), build.ID)
	require.Len(t, build.Items, 3)
	for _, item := range build.Items {
		assert.Equal(t, int64(42), item.BuildID)
		assert.Equal(t, 1, item.Quantity)
	}
	assert.Equal(t, "p1", build.Items[0].ProductID)
	assert.Equal(t, "p2", build.Items[1].ProductID)
	assert.Equal(t, "p2", build.Items[2].ProductID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildRepository_CreateWithItems_ItemFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewBuildRepository(mock)
	now := time.Now()

	build := &model.Build{
		UserID:     7,
		Name:       "Build B",
		TotalPrice: 900,
		CreatedAt:  now,
		Items:      []model.BuildItem{{ProductID: "ghost-gpu", Quantity: 1}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO builds`)).
		WithArgs(7, "Build B", int64(900), now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(43), now))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO build_items`)).
		WithArgs(int64(43), "ghost-gpu", 1).
		WillReturnError(errors.New("foreign key violation"))
	mock.ExpectRollback()

	err = repo.CreateWithItems(context.Background(), build)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ghost-gpu")
	assert.NoError(t, mock.ExpectationsWereMet())
}
