package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductAlreadyExists = errors.New("product with this id already exists")
	ErrProductInUse         = errors.New("product is referenced by existing orders or builds")
)

// ProductService defines operations for the catalog
type ProductService interface {
	ListProducts(ctx context.Context, filters model.ProductFilters) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context, filters model.ProductFilters) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list products from repo: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing product: %w", err)
	}
	if existing != nil {
		return nil, ErrProductAlreadyExists
	}

	product := &model.Product{
		ID:        req.ID,
		Name:      req.Name,
		Brand:     req.Brand,
		Category:  req.Category,
		Price:     req.Price,
		Stock:     req.Stock,
		ImageURL:  req.ImageURL,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in repo: %w", err)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	// Apply updates
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Brand != nil {
		existing.Brand = *req.Brand
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Stock != nil {
		existing.Stock = *req.Stock
	}
	if req.ImageURL != nil { // handles setting to "" as well
		existing.ImageURL = req.ImageURL
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrProductMissing) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product in repo: %w", err)
	}
	return existing, nil
}

// DeleteProduct removes a catalog entry. Deleting the same id twice fails the
// second time, and a product referenced by order rows cannot be deleted at all.
func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductMissing) {
			return ErrProductNotFound
		}
		if errors.Is(err, repository.ErrProductReferenced) {
			return ErrProductInUse
		}
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}
