package svgdoc

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errParamMismatch = errors.New("svgdoc: param mismatch")

// ParseColor resolves a CSS color as used in fill and stroke
// attributes: a named color, "#rgb", "#rrggbb", "currentColor"
// (resolved as black) or "none".
// "none" and the empty string return a nil color, which disables painting.
func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "", "none":
		return nil, nil
	case "currentcolor":
		return color.NRGBA{A: 0xff}, nil
	}
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	c, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return nil, fmt.Errorf("svgdoc: unknown color %q", v)
	}
	return c, nil
}

func parseHexColor(hex string) (color.Color, error) {
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, errParamMismatch
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, err
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

// mustColor is ParseColor for values produced by the chart itself;
// unknown colors are not painted.
func mustColor(v string) color.Color {
	c, err := ParseColor(v)
	if err != nil {
		return nil
	}
	return c
}
