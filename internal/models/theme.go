package models

import (
	"fmt"
	"strings"
)

// Theme is the display mode.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used when no valid preference is stored.
const DefaultTheme = ThemeDark

// ParseTheme accepts only "dark" and "light" (case-insensitive).
func ParseTheme(value string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(value))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", fmt.Errorf("invalid theme %q: must be dark or light", value)
	}
}

// Valid reports whether t is one of the two display modes.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Opposite returns the other theme. Invalid values flip from the default.
func (t Theme) Opposite() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string {
	return string(t)
}
