package repository

import (
	"context"
	"errors"
	"fmt"

	"gpu_store/internal/model"

	"github.com/jackc/pgx/v5"
)

// PreferencesRepository defines operations for per-user UI preferences
type PreferencesRepository interface {
	FindByUser(ctx context.Context, userID int) (*model.UserPreferences, error)
	Upsert(ctx context.Context, prefs *model.UserPreferences) error
}

type preferencesRepository struct {
	db DB
}

// NewPreferencesRepository creates a new PreferencesRepository
func NewPreferencesRepository(db DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// FindByUser retrieves a user's stored preferences, nil when none were saved yet
func (r *preferencesRepository) FindByUser(ctx context.Context, userID int) (*model.UserPreferences, error) {
	prefs := &model.UserPreferences{}
	sql := `SELECT user_id, locale, dark_mode, updated_at FROM user_preferences WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&prefs.UserID, &prefs.Locale, &prefs.DarkMode, &prefs.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No preferences saved yet, caller applies defaults
		}
		return nil, fmt.Errorf("failed to find preferences by user: %w", err)
	}
	return prefs, nil
}

// Upsert writes a user's preferences, creating the row on first save
func (r *preferencesRepository) Upsert(ctx context.Context, prefs *model.UserPreferences) error {
	sql := `INSERT INTO user_preferences (user_id, locale, dark_mode, updated_at)
            VALUES ($1, $2, $3, NOW())
            ON CONFLICT (user_id) DO UPDATE
            SET locale = EXCLUDED.locale, dark_mode = EXCLUDED.dark_mode, updated_at = NOW()
            RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, prefs.UserID, prefs.Locale, prefs.DarkMode).Scan(&prefs.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}
	return nil
}
