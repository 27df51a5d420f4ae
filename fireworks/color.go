package fireworks

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrBadColor is returned for color tokens that are not 3 or 6 digit hex
var ErrBadColor = errors.New("bad color")

// Color is an opaque RGB triple. Translucency is applied at draw time.
type Color struct {
	R, G, B uint8
}

// Palette is the set of burst colors
var Palette = []Color{
	MustParseHex("#ffd166"),
	MustParseHex("#ef476f"),
	MustParseHex("#06d6a0"),
	MustParseHex("#118ab2"),
	MustParseHex("#ffd43b"),
	MustParseHex("#f72585"),
	MustParseHex("#ffa69e"),
	MustParseHex("#9b5de5"),
	MustParseHex("#00b4d8"),
}

var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
)

// ParseHex parses "#rgb", "#rrggbb" or the same without the leading '#'
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MustParseHex is ParseHex for literals; it panics on malformed input
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as "#rrggbb"
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Shade moves every channel toward white (percent > 0) or black (percent < 0)
// by |percent|/100 of the remaining distance.
func (c Color) Shade(percent float64) Color {
	target := 255.0
	if percent < 0 {
		target = 0
	}
	p := math.Min(math.Abs(percent)/100, 1)
	shade := func(ch uint8) uint8 {
		v := float64(ch)
		return uint8(math.Round((target-v)*p) + v)
	}
	return Color{R: shade(c.R), G: shade(c.G), B: shade(c.B)}
}

// Alpha returns the color with the given opacity, clamped to [0, 1]
func (c Color) Alpha(a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp(a, 0, 1) * 255))}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
