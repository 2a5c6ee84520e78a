package quill

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at rasterization time.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default fill.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorBlack is the default stroke.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorTransparent fills nothing.
	ColorTransparent = Color{}
)

// RGBA returns a Color from its components.
func RGBA(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

// Clamp returns c with every component limited to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// Premultiplied returns c clamped, with the color channels multiplied by alpha.
func (c Color) Premultiplied() Color {
	c = c.Clamp()
	return Color{c.R * c.A, c.G * c.A, c.B * c.A, c.A}
}

// NRGBA converts c to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	c = c.Clamp()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

// ColorFrom converts any image/color value to a Color.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255}
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG/CSS color name
// such as "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("quill: unknown color name %q", s)
		}
		return ColorFrom(named), nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("quill: malformed color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("quill: malformed color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level color tables.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
