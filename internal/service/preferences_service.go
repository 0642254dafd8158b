package service

import (
	"context"
	"errors"
	"fmt"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

var ErrUnsupportedLocale = errors.New("unsupported locale")

// PreferencesService stores per-user UI preferences (locale, theme flag).
// The server only holds the values; rendering them is up to the client.
type PreferencesService interface {
	GetPreferences(ctx context.Context, userID int) (*model.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID int, req model.UpdatePreferencesRequest) (*model.UserPreferences, error)
}

type preferencesService struct {
	repo repository.PreferencesRepository
}

// NewPreferencesService creates a new PreferencesService
func NewPreferencesService(repo repository.PreferencesRepository) PreferencesService {
	return &preferencesService{repo: repo}
}

// GetPreferences returns the stored preferences, falling back to defaults
// when the user never saved any.
func (s *preferencesService) GetPreferences(ctx context.Context, userID int) (*model.UserPreferences, error) {
	prefs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences from repo: %w", err)
	}
	if prefs == nil {
		return &model.UserPreferences{
			UserID:   userID,
			Locale:   model.DefaultLocale,
			DarkMode: false,
		}, nil
	}
	return prefs, nil
}

// UpdatePreferences merges the request into the stored preferences. Locale
// must be one of the supported tags.
func (s *preferencesService) UpdatePreferences(ctx context.Context, userID int, req model.UpdatePreferencesRequest) (*model.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Locale != nil {
		if !isSupportedLocale(*req.Locale) {
			return nil, ErrUnsupportedLocale
		}
		prefs.Locale = *req.Locale
	}
	if req.DarkMode != nil {
		prefs.DarkMode = *req.DarkMode
	}

	if err := s.repo.Upsert(ctx, prefs); err != nil {
		return nil, fmt.Errorf("failed to save preferences in repo: %w", err)
	}
	return prefs, nil
}

func isSupportedLocale(locale string) bool {
	for _, l := range model.SupportedLocales {
		if locale == l {
			return true
		}
	}
	return false
}
