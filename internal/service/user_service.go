package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

var ErrInvalidDateOfBirth = errors.New("invalid date of birth, use YYYY-MM-DD")

// UserService provides profile operations for the authenticated user
type UserService interface {
	GetProfile(ctx context.Context, userID int) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the self-service fields. A provided dateOfBirth must
// parse as YYYY-MM-DD; omitting it (or sending null) clears the stored date.
// Role is never touched here.
func (s *userService) UpdateProfile(ctx context.Context, userID int, req model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for profile update: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Phone = req.Phone
	user.Address = req.Address

	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateOfBirth
		}
		user.DateOfBirth = &dob
	} else {
		user.DateOfBirth = nil
	}

	if err := s.repo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile in repo: %w", err)
	}
	return user, nil
}
