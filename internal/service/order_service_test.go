package service

import (
	"context"
	"testing"

	"gpu_store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepo struct {
	created *model.Order
}

func (s *stubOrderRepo) CreateWithItems(ctx context.Context, order *model.Order) error {
	order.ID = 7
	s.created = order
	return nil
}

func (s *stubOrderRepo) FindByUser(ctx context.Context, userID int) ([]model.Order, error) {
	return nil, nil
}

func TestOrderService_Checkout_CopiesBuildItems(t *testing.T) {
	buildRepo := &stubBuildRepo{byID: &model.Build{
		ID:         42,
		UserID:     5,
		Name:       "Build A",
		TotalPrice: 1500,
		Items: []model.BuildItem{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p2", Quantity: 1},
		},
	}}
	orderRepo := &stubOrderRepo{}
	svc := NewOrderService(orderRepo, buildRepo)

	order, err := svc.Checkout(context.Background(), 5, model.CreateOrderRequest{BuildID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(1500), order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, "p2", order.Items[1].ProductID)
}

func TestOrderService_Checkout_RejectsForeignBuild(t *testing.T) {
	buildRepo := &stubBuildRepo{byID: &model.Build{ID: 42, UserID: 5, Items: []model.BuildItem{{ProductID: "p1", Quantity: 1}}}}
	orderRepo := &stubOrderRepo{}
	svc := NewOrderService(orderRepo, buildRepo)

	_, err := svc.Checkout(context.Background(), 6, model.CreateOrderRequest{BuildID: 42})

	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, orderRepo.created)
}

func TestOrderService_Checkout_UnknownBuild(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, &stubBuildRepo{})

	_, err := svc.Checkout(context.Background(), 5, model.CreateOrderRequest{BuildID: 99})

	assert.ErrorIs(t, err, ErrBuildNotFound)
}

func TestOrderService_Checkout_EmptyBuild(t *testing.T) {
	buildRepo := &stubBuildRepo{byID: &model.Build{ID: 42, UserID: 5}}
	svc := NewOrderService(&stubOrderRepo{}, buildRepo)

	_, err := svc.Checkout(context.Background(), 5, model.CreateOrderRequest{BuildID: 42})

	assert.ErrorIs(t, err, ErrEmptyBuild)
}
