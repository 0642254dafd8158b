package service

import (
	"context"
	"fmt"
	"time"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

// BuildService defines operations for saved builds
type BuildService interface {
	CreateBuild(ctx context.Context, userID int, req model.CreateBuildRequest) (*model.Build, error)
	GetUserBuilds(ctx context.Context, userID int) ([]model.Build, error)
}

type buildService struct {
	repo repository.BuildRepository
}

// NewBuildService creates a new BuildService
func NewBuildService(repo repository.BuildRepository) BuildService {
	return &buildService{repo: repo}
}

// CreateBuild persists a build together with one item row per requested
// product id. Duplicate ids stay separate lines, each with quantity 1.
func (s *buildService) CreateBuild(ctx context.Context, userID int, req model.CreateBuildRequest) (*model.Build, error) {
	items := make([]model.BuildItem, 0, len(req.Items))
	for _, productID := range req.Items {
		items = append(items, model.BuildItem{
			ProductID: productID,
			Quantity:  1,
		})
	}

	build := &model.Build{
		UserID:     userID,
		Name:       req.Name,
		TotalPrice: req.TotalPrice,
		CreatedAt:  time.Now(),
		Items:      items,
	}

	if err := s.repo.CreateWithItems(ctx, build); err != nil {
		return nil, fmt.Errorf("failed to create build in repo: %w", err)
	}
	return build, nil
}

func (s *buildService) GetUserBuilds(ctx context.Context, userID int) ([]model.Build, error) {
	builds, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user builds from repo: %w", err)
	}
	return builds, nil
}
