package store

import (
	"github.com/avelis/countdowntab/internal/model"
)

// Theme returns the stored color theme, falling back to the default when the
// key is absent or no tier is readable. Preference reads never fail loudly.
func (s *Store) Theme() string {
	return s.pref(KeyTheme, model.DefaultTheme)
}

// Mode returns the stored light/dark mode.
func (s *Store) Mode() string {
	return s.pref(KeyMode, model.DefaultMode)
}

// SetTheme stores the color theme through the usual tier walk.
func (s *Store) SetTheme(theme string) error {
	return s.set(KeyTheme, []byte(theme))
}

// SetMode stores the light/dark mode.
func (s *Store) SetMode(mode string) error {
	return s.set(KeyMode, []byte(mode))
}

func (s *Store) pref(key, fallback string) string {
	data, err := s.get(key)
	if err != nil || len(data) == 0 {
		return fallback
	}
	return string(data)
}
