package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a parsed "#rrggbb" color
type RGB struct {
	R, G, B uint8
}

// ParseHexColor parses a "#rrggbb" string into its channels, in R, G, B order
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || len(hex) == len(s) {
		return RGB{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}

	// colorful also takes the short #rgb form, rejected above
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the color back to "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Light reports whether dark text reads better than light text on this color
func (c RGB) Light() bool {
	luma := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return luma >= 150
}
