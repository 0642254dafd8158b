package service

import (
	"context"
	"errors"
	"fmt"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

var (
	ErrBuildNotFound = errors.New("build not found")
	ErrEmptyBuild    = errors.New("build has no items to order")
)

// OrderService places orders from saved builds
type OrderService interface {
	Checkout(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error)
	GetUserOrders(ctx context.Context, userID int) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	buildRepo repository.BuildRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository, buildRepo repository.BuildRepository) OrderService {
	return &orderService{orderRepo: orderRepo, buildRepo: buildRepo}
}

// Checkout copies an owned build's lines into a new pending order. The order
// lines keep the products pinned in the catalog from here on.
func (s *orderService) Checkout(ctx context.Context, userID int, req model.CreateOrderRequest) (*model.Order, error) {
	build, err := s.buildRepo.FindByID(ctx, req.BuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to find build for checkout: %w", err)
	}
	if build == nil {
		return nil, ErrBuildNotFound
	}
	if build.UserID != userID {
		return nil, ErrForbidden
	}
	if len(build.Items) == 0 {
		return nil, ErrEmptyBuild
	}

	items := make([]model.OrderItem, 0, len(build.Items))
	for _, bi := range build.Items {
		items = append(items, model.OrderItem{
			ProductID: bi.ProductID,
			Quantity:  bi.Quantity,
		})
	}

	order := &model.Order{
		UserID: userID,
		Total:  build.TotalPrice,
		Status: model.OrderStatusPending,
		Items:  items,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order in repo: %w", err)
	}
	return order, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID int) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user orders from repo: %w", err)
	}
	return orders, nil
}
