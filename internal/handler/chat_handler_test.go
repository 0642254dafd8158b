package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gpu_store/internal/middleware"
	"gpu_store/internal/model"
	"gpu_store/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	listCalled bool
	summaries  []model.RoomSummary
}

func (s *stubChatService) ListRoomSummaries(ctx context.Context) ([]model.RoomSummary, error) {
	s.listCalled = true
	return s.summaries, nil
}

func (s *stubChatService) GetOrCreateMyRoom(ctx context.Context, userID int) (*model.ChatRoom, error) {
	return &model.ChatRoom{ID: 1, UserID: userID}, nil
}

func (s *stubChatService) PostMessage(ctx context.Context, roomID int64, senderID int, senderRole, body string) (*model.Message, error) {
	return &model.Message{ID: 1, RoomID: roomID, SenderID: senderID, Body: body}, nil
}

func (s *stubChatService) GetRoomMessages(ctx context.Context, roomID int64, userID int, userRole string) ([]model.Message, error) {
	return nil, nil
}

func newChatTestRouter(svc *stubChatService, jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewChatHandler(svc).RegisterChatRoutes(api, middleware.JWTAuthMiddleware(jwtUtil), middleware.AdminMiddleware())
	return router
}

func TestListRooms_NoToken(t *testing.T) {
	svc := &stubChatService{}
	router := newChatTestRouter(svc, utils.NewJWTUtil("secret", 1))

	req := httptest.NewRequest(http.MethodGet, "/api/chat/rooms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, svc.listCalled) // gate rejects before any persistence work
}

func TestListRooms_NonAdminForbidden(t *testing.T) {
	svc := &stubChatService{summaries: []model.RoomSummary{{UserEmail: "buyer@example.com"}}}
	jwtUtil := utils.NewJWTUtil("secret", 1)
	router := newChatTestRouter(svc, jwtUtil)

	token, err := jwtUtil.GenerateToken(5, "buyer@example.com", model.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, svc.listCalled)
	assert.NotContains(t, rec.Body.String(), "buyer@example.com") // no room data leaked
}

func TestListRooms_AdminAllowed(t *testing.T) {
	svc := &stubChatService{summaries: []model.RoomSummary{
		{Room: model.ChatRoom{ID: 2, UserID: 9}, UserEmail: "buyer@example.com"},
	}}
	jwtUtil := utils.NewJWTUtil("secret", 1)
	router := newChatTestRouter(svc, jwtUtil)

	token, err := jwtUtil.GenerateToken(1, "admin@example.com", model.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/rooms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.listCalled)

	var payload []model.RoomSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Len(t, payload, 1)
	assert.Equal(t, "buyer@example.com", payload[0].UserEmail)
}
