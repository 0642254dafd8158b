package handler

import (
	"errors"
	"log"
	"net/http"

	"gpu_store/internal/model"
	"gpu_store/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles catalog requests
type ProductHandler struct {
	service service.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ListProducts returns catalog entries, optionally filtered by category/brand
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var filters model.ProductFilters
	if categoryParam := c.Query("category"); categoryParam != "" {
		filters.Category = &categoryParam
	}
	if brandParam := c.Query("brand"); brandParam != "" {
		filters.Brand = &brandParam
	}

	products, err := h.service.ListProducts(c.Request.Context(), filters)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error getting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req model.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrProductAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error creating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a catalog entry. A repeated delete of the same id is
// 404; a product still referenced by orders is 409.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	err := h.service.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, service.ErrProductInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterProductRoutes registers catalog routes. Reads are public, every
// mutation sits behind auth + admin.
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	productRoutes := rg.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
	}

	adminProductRoutes := rg.Group("/products")
	adminProductRoutes.Use(authMW)
	adminProductRoutes.Use(adminMW)
	{
		adminProductRoutes.POST("", h.CreateProduct)
		adminProductRoutes.PUT("/:id", h.UpdateProduct)
		adminProductRoutes.DELETE("/:id", h.DeleteProduct)
	}
}
