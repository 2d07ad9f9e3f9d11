package ingest

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedColor reports a color encoding the resolver has no rule for.
// It fails the whole ingestion, not just one deck.
var ErrUnsupportedColor = errors.New("unsupported color encoding")

// neutralColor is what a styleless or zero-fill cell resolves to
const neutralColor = "white"

// ColorKind is the encoding of a workbook color
type ColorKind int

// color encodings found in workbook styles
const (
	ColorNone ColorKind = iota
	ColorRGB
	ColorTheme
	ColorIndexed
)

// ColorSpec is a raw cell or font color as found in a workbook style, before
// resolution to a renderable value. Exactly one of the encoding fields is
// meaningful, selected by Kind.
type ColorSpec struct {
	Kind    ColorKind
	RGB     string  // ARGB or RGB hex digits
	Theme   int     // index into the theme palette
	Tint    float64 // luminance adjustment in -1..1
	Indexed int     // index into the legacy indexed palette
}

// Resolve turns the raw color into a renderable value. ColorNone resolves
// to "" so the caller can apply its own default.
func (c ColorSpec) Resolve() (string, error) {
	switch c.Kind {
	case ColorNone:
		return "", nil
	case ColorRGB:
		return resolveRGB(c.RGB), nil
	case ColorTheme:
		return resolveTheme(c.Theme, c.Tint)
	case ColorIndexed:
		if c.Indexed < 0 || c.Indexed >= len(indexedPalette) {
			return "", fmt.Errorf("%w: indexed color %d out of range", ErrUnsupportedColor, c.Indexed)
		}

		return "#" + strings.ToLower(indexedPalette[c.Indexed]), nil
	}

	return "", fmt.Errorf("%w: kind %d", ErrUnsupportedColor, int(c.Kind))
}

// resolveRGB keeps the lowest six hex digits, dropping the leading alpha
// byte. A fully zero value means "no fill" and resolves to the neutral
// default.
func resolveRGB(rgb string) string {
	if strings.Trim(rgb, "0") == "" {
		return neutralColor
	}

	if len(rgb) > 6 {
		rgb = rgb[len(rgb)-6:]
	}

	return "#" + strings.ToLower(rgb)
}

// resolveTheme looks the index up in the theme palette and applies the tint
// as a luminance adjustment: a negative tint scales the luminance toward
// black, a positive tint moves it toward full lightness by the tint
// fraction.
func resolveTheme(theme int, tint float64) (string, error) {
	if theme < 0 || theme >= len(themePalette) {
		return "", fmt.Errorf("%w: theme color %d out of range", ErrUnsupportedColor, theme)
	}

	base, err := colorful.Hex("#" + themePalette[theme])
	if err != nil {
		return "", err
	}

	if tint == 0 {
		return base.Hex(), nil
	}

	h, s, l := base.Hsl()
	if tint < 0 {
		l *= 1 + tint
	} else {
		l = l*(1-tint) + tint
	}

	return colorful.Hsl(h, s, l).Clamped().Hex(), nil
}
