package service

import (
	"context"
	"testing"

	"gpu_store/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrefsRepo struct {
	stored *model.UserPreferences
	saved  *model.UserPreferences
}

func (s *stubPrefsRepo) FindByUser(ctx context.Context, userID int) (*model.UserPreferences, error) {
	return s.stored, nil
}

func (s *stubPrefsRepo) Upsert(ctx context.Context, prefs *model.UserPreferences) error {
	s.saved = prefs
	return nil
}

func TestPreferencesService_GetPreferences_Defaults(t *testing.T) {
	repo := &stubPrefsRepo{}
	svc := NewPreferencesService(repo)

	prefs, err := svc.GetPreferences(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, model.DefaultLocale, prefs.Locale)
	assert.False(t, prefs.DarkMode)
	assert.Equal(t, 5, prefs.UserID)
}

func TestPreferencesService_UpdatePreferences_MergesPartial(t *testing.T) {
	repo := &stubPrefsRepo{stored: &model.UserPreferences{UserID: 5, Locale: "ru", DarkMode: false}}
	svc := NewPreferencesService(repo)

	dark := true
	prefs, err := svc.UpdatePreferences(context.Background(), 5, model.UpdatePreferencesRequest{DarkMode: &dark})

	require.NoError(t, err)
	assert.Equal(t, "ru", prefs.Locale) // untouched
	assert.True(t, prefs.DarkMode)
	require.NotNil(t, repo.saved)
}

func TestPreferencesService_UpdatePreferences_RejectsUnknownLocale(t *testing.T) {
	repo := &stubPrefsRepo{}
	svc := NewPreferencesService(repo)

	locale := "fr"
	_, err := svc.UpdatePreferences(context.Background(), 5, model.UpdatePreferencesRequest{Locale: &locale})

	assert.ErrorIs(t, err, ErrUnsupportedLocale)
	assert.Nil(t, repo.saved)
}

func TestPreferencesService_UpdatePreferences_AcceptsSupportedLocales(t *testing.T) {
	for _, locale := range model.SupportedLocales {
		repo := &stubPrefsRepo{}
		svc := NewPreferencesService(repo)

		l := locale
		prefs, err := svc.UpdatePreferences(context.Background(), 5, model.UpdatePreferencesRequest{Locale: &l})

		require.NoError(t, err)
		assert.Equal(t, locale, prefs.Locale)
	}
}
