package fireworks

import (
	"image/color"
	"math"
)

// Vec2 is a point or velocity in surface-local logical units
type Vec2 struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Blend selects how a draw call composites onto the surface
type Blend int

const (
	// BlendSourceOver paints over what is already there
	BlendSourceOver Blend = iota
	// BlendLighter adds to what is already there
	BlendLighter
)

func (b Blend) String() string {
	switch b {
	case BlendSourceOver:
		return "source-over"
	case BlendLighter:
		return "lighter"
	default:
		return "unknown"
	}
}

// GradientStop is one color stop of a radial gradient, Offset in [0, 1]
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is the immediate-mode 2D context the show draws on.
// Coordinates are logical; implementations own the resolution transform.
type Surface interface {
	FillRect(x, y, w, h float64, clr color.NRGBA, blend Blend)
	FillCircle(cx, cy, r float64, clr color.NRGBA, blend Blend)

	// FillGlow fills a disc of radius r with a radial gradient whose stops
	// span the gradient radius gr
	FillGlow(cx, cy, r, gr float64, stops []GradientStop, blend Blend)

	StrokePolyline(points []Vec2, width float64, clr color.NRGBA, blend Blend)
}

// Audio plays the burst clip from the start. Overlapping plays are fine.
type Audio interface {
	Replay() error
}

// Revealer receives the one-shot notification of the central detonation
type Revealer interface {
	Reveal(c Color)
}

// RevealFunc adapts a function to Revealer
type RevealFunc func(c Color)

// Reveal calls f(c)
func (f RevealFunc) Reveal(c Color) {
	f(c)
}

type silence struct{}

func (silence) Replay() error { return nil }
