package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"fireworks/fireworks"
)

// Scale is the number of half-block subpixels per logical unit. A 120x40
// terminal becomes a 960x640 logical show.
const Scale = 1.0 / 8

// Canvas is a framebuffer of half-block subpixels: every terminal cell shows
// two vertically stacked pixels. It implements fireworks.Surface.
type Canvas struct {
	cols, rows int // terminal cells
	w, h       int // subpixels
	pix        []colorful.Color
}

// NewCanvas creates a black canvas for a terminal of cols x rows cells
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the framebuffer, discarding its content
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(0, cols), max(0, rows)
	c.w, c.h = c.cols, 2*c.rows
	c.pix = make([]colorful.Color, c.w*c.h)
}

// LogicalSize is the show size matching the framebuffer
func (c *Canvas) LogicalSize() (float64, float64) {
	return float64(c.w) / Scale, float64(c.h) / Scale
}

// ToLogical converts a terminal cell to the logical point at its center
func (c *Canvas) ToLogical(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / Scale, (2*float64(row) + 1) / Scale
}

// At returns the subpixel at x, y
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return colorful.Color{}
	}
	return c.pix[y*c.w+x]
}

func (c *Canvas) plot(x, y int, src colorful.Color, a float64, blend fireworks.Blend) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := y*c.w + x
	dst := c.pix[i]
	switch blend {
	case fireworks.BlendLighter:
		c.pix[i] = colorful.Color{R: dst.R + src.R*a, G: dst.G + src.G*a, B: dst.B + src.B*a}.Clamped()
	default:
		c.pix[i] = dst.BlendRgb(src, a)
	}
}

func split(clr color.NRGBA) (colorful.Color, float64) {
	return colorful.Color{R: float64(clr.R) / 255, G: float64(clr.G) / 255, B: float64(clr.B) / 255}, float64(clr.A) / 255
}

// FillRect implements fireworks.Surface
func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA, blend fireworks.Blend) {
	src, a := split(clr)
	x0, y0 := int(math.Floor(x*Scale)), int(math.Floor(y*Scale))
	x1, y1 := int(math.Ceil((x+w)*Scale)), int(math.Ceil((y+h)*Scale))
	x0, y0 = max(0, x0), max(0, y0)
	x1, y1 = min(c.w, x1), min(c.h, y1)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.plot(px, py, src, a, blend)
		}
	}
}

// FillCircle implements fireworks.Surface. Discs smaller than a subpixel
// plot their center with alpha scaled by the covered area.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA, blend fireworks.Blend) {
	src, a := split(clr)
	c.disc(cx*Scale, cy*Scale, r*Scale, blend, func(float64) (colorful.Color, float64) { return src, a })
}

// FillGlow implements fireworks.Surface
func (c *Canvas) FillGlow(cx, cy, r, gr float64, stops []fireworks.GradientStop, blend fireworks.Blend) {
	if len(stops) == 0 || gr <= 0 {
		return
	}
	sgr := gr * Scale
	c.disc(cx*Scale, cy*Scale, r*Scale, blend, func(d float64) (colorful.Color, float64) {
		return split(gradientAt(stops, d/sgr))
	})
}

// disc rasterizes a circle in subpixel space; shade maps the distance from
// the center to a color and alpha
func (c *Canvas) disc(cx, cy, r float64, blend fireworks.Blend, shade func(d float64) (colorful.Color, float64)) {
	if r <= 0 {
		return
	}
	if r < 0.5 {
		src, a := shade(0)
		c.plot(int(math.Floor(cx)), int(math.Floor(cy)), src, a*math.Pi*r*r, blend)
		return
	}
	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	for py := max(0, y0); py < min(c.h, y1); py++ {
		for px := max(0, x0); px < min(c.w, x1); px++ {
			d := math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy)
			if d > r {
				continue
			}
			src, a := shade(d)
			c.plot(px, py, src, a, blend)
		}
	}
}

// StrokePolyline implements fireworks.Surface. Lines thinner than a
// subpixel are drawn one subpixel wide with their alpha scaled down.
func (c *Canvas) StrokePolyline(points []fireworks.Vec2, width float64, clr color.NRGBA, blend fireworks.Blend) {
	src, a := split(clr)
	a *= math.Min(1, width*Scale)
	for i := 1; i < len(points); i++ {
		x0, y0 := points[i-1].X*Scale, points[i-1].Y*Scale
		x1, y1 := points[i].X*Scale, points[i].Y*Scale
		steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
		for s := 0; s <= steps; s++ {
			t := 0.0
			if steps > 0 {
				t = float64(s) / float64(steps)
			}
			if s == steps && i < len(points)-1 {
				continue // shared with the next segment
			}
			c.plot(int(math.Floor(x0+(x1-x0)*t)), int(math.Floor(y0+(y1-y0)*t)), src, a, blend)
		}
	}
}

// gradientAt interpolates stops at offset t in [0, 1]
func gradientAt(stops []fireworks.GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		f := (t - lo.Offset) / span
		lerp := func(a, b uint8) uint8 {
			return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
		}
		return color.NRGBA{
			R: lerp(lo.Color.R, hi.Color.R),
			G: lerp(lo.Color.G, hi.Color.G),
			B: lerp(lo.Color.B, hi.Color.B),
			A: lerp(lo.Color.A, hi.Color.A),
		}
	}
	return stops[len(stops)-1].Color
}

// Present copies the framebuffer to the screen, one half block per cell
func (c *Canvas) Present(screen tcell.Screen) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[2*row*c.w+col]
			bottom := c.pix[(2*row+1)*c.w+col]
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, '▀', nil, style)
		}
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
