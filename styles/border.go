package styles

import (
	"fmt"
	"strings"
)

// Position selects the side a border declaration applies to.
type Position string

const (
	PositionAll    Position = ""
	PositionTop    Position = "top"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
	PositionBottom Position = "bottom"
)

var positions = []Position{PositionTop, PositionLeft, PositionRight, PositionBottom}

// HairlinesSelector scopes rules which apply on high density displays, where
// whole pixel borders look too thick.
const HairlinesSelector = "html.hairlines &"

// DefaultBorderStyle is used when no style is given.
const DefaultBorderStyle = "solid"

// IsValid reports whether p is one of the known sides or PositionAll.
func (p Position) IsValid() bool {
	if p == PositionAll {
		return true
	}
	for _, known := range positions {
		if p == known {
			return true
		}
	}
	return false
}

func (p Position) property() string {
	if p == PositionAll {
		return "border-width"
	}
	return "border-" + string(p) + "-width"
}

// BorderWidthDeclaration sets border width in px and halves it under
// HairlinesSelector. Halving is exact, odd widths produce fractional pixels
// (3 -> 1.5px).
func BorderWidthDeclaration[L Length](width L, position Position) (Fragment, error) {
	px, err := ParsePixelLength(width)
	if err != nil {
		return "", err
	}
	if !position.IsValid() {
		return "", NewError(ErrorKindInvalidPosition, "position must be one of %s, got %q", joinPositions(), string(position))
	}

	key := position.property()
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %spx;\n", key, formatNumber(px))
	sb.WriteString(block(HairlinesSelector, fmt.Sprintf("%s: %spx;", key, formatNumber(px/2))))
	return Fragment(sb.String()), nil
}

// BorderDeclaration composes style, color and width declarations. Empty style
// means DefaultBorderStyle.
func BorderDeclaration[L Length](width L, color string, position Position, style string) (Fragment, error) {
	if _, err := RequireValidHexColor(color); err != nil {
		return "", err
	}
	if style == "" {
		style = DefaultBorderStyle
	}
	widths, err := BorderWidthDeclaration(width, position)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "border-style: %s;\n", style)
	fmt.Fprintf(&sb, "border-color: %s;\n", strings.TrimSpace(color))
	sb.WriteString(string(widths))
	return Fragment(sb.String()), nil
}

func joinPositions() string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		names = append(names, string(p))
	}
	return strings.Join(names, ",")
}
