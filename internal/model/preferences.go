package model

import "time"

// SupportedLocales is the fixed set of UI language tags
var SupportedLocales = []string{"en", "ru", "uz"}

const DefaultLocale = "en"

// UserPreferences holds per-user UI state (locale and theme flag). The server
// only stores the flags; applying them visually is the client's concern.
type UserPreferences struct {
	UserID    int       `json:"user_id"`
	Locale    string    `json:"locale"`
	DarkMode  bool      `json:"dark_mode"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdatePreferencesRequest struct {
	Locale   *string `json:"locale,omitempty"`
	DarkMode *bool   `json:"dark_mode,omitempty"`
}
