package handler

import (
	"errors"
	"log"
	"net/http"

	"gpu_store/internal/middleware"
	"gpu_store/internal/model"
	"gpu_store/internal/service"

	"github.com/gin-gonic/gin"
)

// BuildHandler handles saved-build requests
type BuildHandler struct {
	service service.BuildService
}

// NewBuildHandler creates a new BuildHandler
func NewBuildHandler(s service.BuildService) *BuildHandler {
	return &BuildHandler{service: s}
}

// Helper to get authenticated user ID from context
func getAuthUserID(c *gin.Context) (int, error) {
	userIDVal, exists := c.Get(middleware.AuthUserKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}
	userID, ok := userIDVal.(int)
	if !ok {
		return 0, errors.New("invalid user ID type in context")
	}
	return userID, nil
}

// Helper to get authenticated user role from context
func getAuthUserRole(c *gin.Context) (string, error) {
	roleVal, exists := c.Get(middleware.AuthRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}
	role, ok := roleVal.(string)
	if !ok {
		return "", errors.New("invalid user role type in context")
	}
	return role, nil
}

// CreateBuild persists a named build with one item row per submitted product id
func (h *BuildHandler) CreateBuild(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.CreateBuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	build, err := h.service.CreateBuild(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Error creating build: %v", err) // Log detailed error
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create build"})
		return
	}
	c.JSON(http.StatusOK, build)
}

// GetMyBuilds lists the caller's saved builds, newest first
func (h *BuildHandler) GetMyBuilds(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	builds, err := h.service.GetUserBuilds(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting user builds: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve builds"})
		return
	}
	c.JSON(http.StatusOK, builds)
}

// RegisterBuildRoutes registers build routes
func (h *BuildHandler) RegisterBuildRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	buildRoutes := rg.Group("/builder")
	buildRoutes.Use(authMW)
	{
		buildRoutes.POST("", h.CreateBuild)
		buildRoutes.GET("", h.GetMyBuilds)
	}
}
