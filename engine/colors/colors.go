package colors

import "github.com/lucasb-eyer/go-colorful"

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Red      = Color{1, 0, 0, 1}
	Green    = Color{0, 1, 0, 1}
	Blue     = Color{0, 0, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Clear    = Color{0, 0, 0, 0}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lighten raises the HSL luminance by amount (0..1), preserving alpha.
func (c Color) Lighten(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l += amount
	if l > 1 {
		l = 1
	}
	return fromColorful(colorful.Hsl(h, s, l), c[3])
}

// Darken lowers the HSL luminance by amount (0..1), preserving alpha.
func (c Color) Darken(amount float64) Color {
	h, s, l := c.colorful().Hsl()
	l -= amount
	if l < 0 {
		l = 0
	}
	return fromColorful(colorful.Hsl(h, s, l), c[3])
}

// FromHex parses "#rrggbb" into a Color with full alpha.
func FromHex(s string) (Color, error) {
	cc, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return fromColorful(cc, 1), nil
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}

func fromColorful(cc colorful.Color, alpha float32) Color {
	return Color{float32(cc.R), float32(cc.G), float32(cc.B), alpha}
}
