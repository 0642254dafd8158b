package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gpu_store/internal/model"
	"gpu_store/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles support chat requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(s service.ChatService) *ChatHandler {
	return &ChatHandler{service: s}
}

// ListRooms returns every room with its latest message, newest activity first.
// Admin only; route registration enforces the role gate before this runs.
func (h *ChatHandler) ListRooms(c *gin.Context) {
	summaries, err := h.service.ListRoomSummaries(c.Request.Context())
	if err != nil {
		log.Printf("Error listing chat rooms: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat rooms"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetMyRoom returns the caller's support room, creating it on first use
func (h *ChatHandler) GetMyRoom(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	room, err := h.service.GetOrCreateMyRoom(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error getting chat room for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve chat room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found"})
		return
	}

	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req model.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	msg, err := h.service.PostMessage(c.Request.Context(), roomID, userID, userRole, req.Body)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error posting message: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post message"})
		}
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *ChatHandler) GetRoomMessages(c *gin.Context) {
	userID, err := getAuthUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	userRole, err := getAuthUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found"})
		return
	}

	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	messages, err := h.service.GetRoomMessages(c.Request.Context(), roomID, userID, userRole)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, service.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("Error getting room messages: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		}
		return
	}
	c.JSON(http.StatusOK, messages)
}

// RegisterChatRoutes registers chat routes
func (h *ChatHandler) RegisterChatRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	chatRoutes := rg.Group("/chat")
	chatRoutes.Use(authMW)
	{
		chatRoutes.GET("/my-room", h.GetMyRoom)
		chatRoutes.GET("/rooms/:id/messages", h.GetRoomMessages)
		chatRoutes.POST("/rooms/:id/messages", h.PostMessage)
		chatRoutes.GET("/rooms", adminMW, h.ListRooms)
	}
}
