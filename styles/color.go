package styles

import (
	"fmt"
	"math"
	"regexp"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB holds channel values of a color.
type RGB struct {
	R, G, B uint8
}

var hexPattern = regexp.MustCompile(`^\s*#([0-9A-Fa-f]{6})\s*$`)

// ParseHexColor decodes "#rrggbb" (surrounding whitespace allowed). It never
// fails loudly, ok is false for anything else.
func ParseHexColor(hex string) (rgb RGB, ok bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	c, err := colorful.Hex("#" + m[1])
	if err != nil {
		return RGB{}, false
	}
	rgb.R, rgb.G, rgb.B = c.RGB255()
	return rgb, true
}

// RequireValidHexColor is ParseHexColor reporting ErrInvalidColorFormat.
func RequireValidHexColor(hex string) (RGB, error) {
	rgb, ok := ParseHexColor(hex)
	if !ok {
		return RGB{}, NewError(ErrorKindInvalidColorFormat, "%q is not a #rrggbb color", hex)
	}
	return rgb, nil
}

// HexToRGBA returns "rgba(r, g, b, opacity)" for hex color, opacity must be
// within [0, 1].
func HexToRGBA(hex string, opacity float64) (string, error) {
	rgb, err := RequireValidHexColor(hex)
	if err != nil {
		return "", err
	}
	if math.IsNaN(opacity) || opacity < 0 || opacity > 1 {
		return "", NewError(ErrorKindInvalidOpacity, "opacity must be a number between 0 and 1, got %v", opacity)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", rgb.R, rgb.G, rgb.B, formatNumber(opacity)), nil
}
