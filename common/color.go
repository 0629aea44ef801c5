package common

import (
	"fmt"
	"image/color"
)

// ParseHexColor parses "#rrggbb". ok is false when s is not in that form.
func ParseHexColor(s string) (c color.RGBA, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
}
