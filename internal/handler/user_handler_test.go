package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gpu_store/internal/middleware"
	"gpu_store/internal/model"
	"gpu_store/internal/service"
	"gpu_store/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserService struct {
	updatedFor int
	updatedReq *model.UpdateProfileRequest
	updateErr  error
}

func (s *stubUserService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	return &model.User{ID: userID, Email: "buyer@example.com", Role: model.RoleUser}, nil
}

func (s *stubUserService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	s.updatedFor = userID
	s.updatedReq = &req
	return &model.User{ID: userID, Email: "buyer@example.com", Name: req.Name, Role: model.RoleUser}, nil
}

func newUserTestRouter(svc *stubUserService, jwtUtil *utils.JWTUtil) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api")
	NewUserHandler(svc).RegisterUserRoutes(api, middleware.JWTAuthMiddleware(jwtUtil))
	return router
}

func TestUpdateProfile_NoToken(t *testing.T) {
	svc := &stubUserService{}
	router := newUserTestRouter(svc, utils.NewJWTUtil("secret", 1))

	body := bytes.NewBufferString(`{"name":"Jane"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/user/update", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.updatedReq)
}

func TestUpdateProfile_Success(t *testing.T) {
	svc := &stubUserService{}
	jwtUtil := utils.NewJWTUtil("secret", 1)
	router := newUserTestRouter(svc, jwtUtil)

	token, err := jwtUtil.GenerateToken(5, "buyer@example.com", model.RoleUser)
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"name":"Jane","phone":"+998901234567","dateOfBirth":"1995-04-12"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/user/update", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, svc.updatedFor) // identity comes from the token, not the body
	require.NotNil(t, svc.updatedReq)
	require.NotNil(t, svc.updatedReq.DateOfBirth)
	assert.Equal(t, "1995-04-12", *svc.updatedReq.DateOfBirth)

	var payload struct {
		Success bool       `json:"success"`
		User    model.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.True(t, payload.Success)
	assert.Equal(t, "buyer@example.com", payload.User.Email)
}

func TestUpdateProfile_BadDateOfBirth(t *testing.T) {
	svc := &stubUserService{updateErr: service.ErrInvalidDateOfBirth}
	jwtUtil := utils.NewJWTUtil("secret", 1)
	router := newUserTestRouter(svc, jwtUtil)

	token, err := jwtUtil.GenerateToken(5, "buyer@example.com", model.RoleUser)
	require.NoError(t, err)

	body := bytes.NewBufferString(`{"dateOfBirth":"12/04/1995"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/user/update", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
