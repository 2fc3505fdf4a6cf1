package components

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// shadeStep is the Lab lightness offset used to derive light and dark shades.
const shadeStep = 0.15

// ParseColor converts a CSS colour into a hex string suitable for
// lipgloss.Color. It accepts #rgb, #rrggbb, rgb(r, g, b) and
// rgba(r, g, b, a). Translucent colours are flattened over the hex colour
// over, since terminals have no alpha channel.
func ParseColor(css, over string) (string, error) {
	css = strings.TrimSpace(strings.ToLower(css))
	switch {
	case strings.HasPrefix(css, "#"):
		c, err := colorful.Hex(css)
		if err != nil {
			return "", fmt.Errorf("parse colour %q: %w", css, err)
		}
		return c.Hex(), nil
	case strings.HasPrefix(css, "rgba(") || strings.HasPrefix(css, "rgb("):
		return parseRGBFunc(css, over)
	default:
		return "", fmt.Errorf("parse colour %q: unsupported format", css)
	}
}

func parseRGBFunc(css, over string) (string, error) {
	open := strings.IndexByte(css, '(')
	if open < 0 || !strings.HasSuffix(css, ")") {
		return "", fmt.Errorf("parse colour %q: malformed", css)
	}
	parts := strings.Split(css[open+1:len(css)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return "", fmt.Errorf("parse colour %q: want 3 or 4 components", css)
	}

	var rgb [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil || v < 0 || v > 255 {
			return "", fmt.Errorf("parse colour %q: bad channel %q", css, parts[i])
		}
		rgb[i] = v / 255
	}
	fg := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return "", fmt.Errorf("parse colour %q: bad alpha %q", css, parts[3])
		}
		alpha = a
	}
	if alpha >= 1 {
		return fg.Hex(), nil
	}

	if over == "" {
		over = "#ffffff"
	}
	bg, err := colorful.Hex(over)
	if err != nil {
		return "", fmt.Errorf("parse backdrop %q: %w", over, err)
	}
	return bg.BlendRgb(fg, alpha).Clamped().Hex(), nil
}

// lighten shifts a hex colour's Lab lightness by delta, clamping to gamut.
func lighten(hex string, delta float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	l, a, b := c.Lab()
	l += delta
	if l > 1 {
		l = 1
	}
	if l < 0 {
		l = 0
	}
	return colorful.Lab(l, a, b).Clamped().Hex()
}

// contrastText picks black or white text for the given background.
func contrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#000000"
	}
	r, g, b := c.LinearRgb()
	if 0.2126*r+0.7152*g+0.0722*b > 0.179 {
		return "#000000"
	}
	return "#ffffff"
}
