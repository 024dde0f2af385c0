package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a decoded background color
type Color struct {
	R, G, B, A uint8
}

// FallbackColor is used when a class has no color configured
var FallbackColor = Color{R: 255, G: 0, B: 0, A: 255}

// ParseARGB decodes "#AARRGGBB" (the leading # is optional).
// An empty string yields FallbackColor.
func ParseARGB(s string) (Color, error) {
	if s == "" {
		return FallbackColor, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q: want 8 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}

	return Color{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
