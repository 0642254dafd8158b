package handler

import (
	"errors"
	"log"
	"net/http"

	"gpu_store/internal/model"
	"gpu_store/internal/service"

	"github.com/gin-gonic/gin"
)

// PreferencesHandler handles per-user UI preference requests
type PreferencesHandler struct {
	service service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(s service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: s}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	prefs, err := h.service.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req model.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	prefs, err := h.service.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedLocale) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating preferences: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// RegisterPreferencesRoutes registers preference routes
func (h *PreferencesHandler) RegisterPreferencesRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	prefRoutes := rg.Group("/user/preferences")
	prefRoutes.Use(authMW)
	{
		prefRoutes.GET("", h.GetPreferences)
		prefRoutes.PUT("", h.UpdatePreferences)
	}
}
