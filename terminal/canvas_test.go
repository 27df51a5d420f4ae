package terminal

import (
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"fireworks/fireworks"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestCanvasGeometry(t *testing.T) {
	c := NewCanvas(80, 24)
	w, h := c.LogicalSize()
	if w != 640 || h != 384 {
		t.Fatalf("logical size = %vx%v, want 640x384", w, h)
	}
	x, y := c.ToLogical(0, 0)
	if x != 4 || y != 8 {
		t.Errorf("ToLogical(0, 0) = (%v, %v), want (4, 8)", x, y)
	}
}

func TestSourceOverFade(t *testing.T) {
	c := NewCanvas(2, 1)
	c.pix[0] = colorful.Color{R: 1, G: 1, B: 1}

	c.FillRect(0, 0, 16, 16, color.NRGBA{A: 128}, fireworks.BlendSourceOver)
	got := c.At(0, 0)
	want := 1 - 128.0/255
	if !near(got.R, want) || !near(got.G, want) {
		t.Errorf("faded pixel = %v, want %v per channel", got, want)
	}
	if c.At(1, 1) != (colorful.Color{}) {
		t.Errorf("black pixel changed under a black fade: %v", c.At(1, 1))
	}
}

func TestLighterAddsAndClamps(t *testing.T) {
	c := NewCanvas(1, 1)
	red := color.NRGBA{R: 255, A: 255}
	c.FillRect(0, 0, 8, 8, red, fireworks.BlendLighter)
	c.FillRect(0, 0, 8, 8, color.NRGBA{R: 255, G: 255, A: 128}, fireworks.BlendLighter)

	got := c.At(0, 0)
	if got.R != 1 {
		t.Errorf("red = %v, want clamped to 1", got.R)
	}
	if !near(got.G, 128.0/255) {
		t.Errorf("green = %v, want %v", got.G, 128.0/255)
	}
}

func TestSubpixelCircleScalesAlpha(t *testing.T) {
	c := NewCanvas(4, 4)
	// radius 2 logical units is a quarter subpixel
	c.FillCircle(12, 12, 2, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, fireworks.BlendLighter)
	got := c.At(1, 1)
	want := math.Pi * 0.25 * 0.25
	if !near(got.R, want) {
		t.Errorf("coverage = %v, want %v", got.R, want)
	}
}

func TestFillCircleStaysInside(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(80, 80, 24, color.NRGBA{R: 255, A: 255}, fireworks.BlendSourceOver)
	if c.At(10, 10).R != 1 {
		t.Errorf("center not filled")
	}
	if c.At(0, 0).R != 0 || c.At(19, 19).R != 0 {
		t.Errorf("pixels outside the disc were filled")
	}
	// off-canvas draws are clipped, not fatal
	c.FillCircle(-1000, -1000, 50, color.NRGBA{R: 255, A: 255}, fireworks.BlendLighter)
}

func TestGradientAt(t *testing.T) {
	stops := []fireworks.GradientStop{
		{Offset: 0, Color: color.NRGBA{255, 255, 255, 255}},
		{Offset: 0.5, Color: color.NRGBA{255, 0, 0, 255}},
		{Offset: 1, Color: color.NRGBA{255, 0, 0, 0}},
	}
	if got := gradientAt(stops, 0); got != stops[0].Color {
		t.Errorf("t=0: %v", got)
	}
	if got := gradientAt(stops, 0.25); got != (color.NRGBA{255, 128, 128, 255}) {
		t.Errorf("t=0.25: %v", got)
	}
	if got := gradientAt(stops, 2); got != stops[2].Color {
		t.Errorf("t=2: %v", got)
	}
}

func TestStrokePolylineVisitsEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	pts := []fireworks.Vec2{{X: 4, Y: 4}, {X: 76, Y: 4}}
	c.StrokePolyline(pts, 8, color.NRGBA{G: 255, A: 255}, fireworks.BlendSourceOver)
	if c.At(0, 0).G != 1 || c.At(9, 0).G != 1 {
		t.Errorf("endpoints not drawn: %v %v", c.At(0, 0), c.At(9, 0))
	}
	if c.At(5, 1).G != 0 {
		t.Errorf("row below the line was drawn")
	}
}
