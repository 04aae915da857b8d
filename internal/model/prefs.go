package model

// Preference defaults shared by every surface.
const (
	DefaultTheme = "coffee"
	DefaultMode  = "light"
)

// Themes lists the selectable color themes in display order.
var Themes = []string{"coffee", "matcha", "caramel", "oat", "espresso"}

// Modes lists the selectable light/dark modes.
var Modes = []string{"light", "dark"}

// ValidTheme reports whether s names a known theme.
func ValidTheme(s string) bool {
	for _, t := range Themes {
		if s == t {
			return true
		}
	}
	return false
}

// ValidMode reports whether s names a known mode.
func ValidMode(s string) bool {
	for _, m := range Modes {
		if s == m {
			return true
		}
	}
	return false
}
