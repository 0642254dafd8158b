package handler

import (
	"errors"
	"log"
	"net/http"

	"gpu_store/internal/model"
	"gpu_store/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order listing
type OrderHandler struct {
	service service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// Checkout places a pending order from one of the caller's saved builds
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrBuildNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrEmptyBuild) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error placing order: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GetMyOrders lists the caller's orders, newest first
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	orders, err := h.service.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting user orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// RegisterOrderRoutes registers order routes
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	orderRoutes := rg.Group("/orders")
	orderRoutes.Use(authMW)
	{
		orderRoutes.POST("", h.Checkout)
		orderRoutes.GET("", h.GetMyOrders)
	}
}
