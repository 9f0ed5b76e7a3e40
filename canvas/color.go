package canvas

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":       "#000000",
	"white":       "#ffffff",
	"transparent": "",
}

// ParseColor understands CSS hex colours (#rgb, #rrggbb) and a few names.
// "transparent" yields a zero colour.
func ParseColor(style string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(style))

	if hex, ok := namedColors[s]; ok {
		if hex == "" {
			return color.RGBA{}, nil
		}
		s = hex
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", style, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
