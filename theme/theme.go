// Package theme holds the site-wide color theme and its palettes.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is one of the three site color schemes.
type Theme uint8

const (
	Light Theme = iota
	Dark
	Dynamic
)

// ErrUnknownTheme is returned by Parse for names that are not a theme.
var ErrUnknownTheme = errors.New("unknown theme")

// All lists every theme in toggle order.
var All = []Theme{Light, Dark, Dynamic}

func (t Theme) String() string {
	switch t {
	case Light:
		return "light"
	case Dark:
		return "dark"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("theme(%d)", uint8(t))
	}
}

// Parse converts a theme name to a Theme.
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	case "dynamic":
		return Dynamic, nil
	}
	return Dark, fmt.Errorf("parsing %q: %w", s, ErrUnknownTheme)
}

// Next returns the theme after t in toggle order, wrapping around.
func (t Theme) Next() Theme {
	return (t + 1) % Theme(len(All))
}
