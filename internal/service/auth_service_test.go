package service

import (
	"context"
	"testing"

	"gpu_store/internal/model"
	"gpu_store/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_NewUser(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 1))

	user, token, err := svc.Register(context.Background(), "buyer@example.com", "password123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "buyer@example.com", user.Email)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestAuthService_Register_ExistingEmail(t *testing.T) {
	repo := &stubUserRepo{user: &model.User{ID: 1, Email: "buyer@example.com"}}
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 1))

	_, _, err := svc.Register(context.Background(), "buyer@example.com", "password123")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, _ := utils.HashPassword("password123")
	repo := &stubUserRepo{user: &model.User{ID: 1, Email: "buyer@example.com", PasswordHash: hash, Role: model.RoleUser}}
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 1))

	_, _, err := svc.Login(context.Background(), "buyer@example.com", "wrongpassword")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, _ := utils.HashPassword("password123")
	repo := &stubUserRepo{user: &model.User{ID: 1, Email: "buyer@example.com", PasswordHash: hash, Role: model.RoleAdmin}}
	jwtUtil := utils.NewJWTUtil("secret", 1)
	svc := NewAuthService(repo, jwtUtil)

	user, token, err := svc.Login(context.Background(), "buyer@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}
