package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"fireworks/fireworks"
)

// Camera maps logical show coordinates to physical canvas pixels. The show
// always fills the window, so the mapping is a pure scale.
type Camera struct {
	Zoom   float64 // Device scale factor
	Width  float64 // Viewport width in logical units
	Height float64 // Viewport height in logical units
}

// NewCamera creates a camera for a logical viewport at the given device scale
func NewCamera(width, height, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		Zoom:   zoom,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts logical coordinates to canvas pixels
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx * c.Zoom, wy * c.Zoom
}

// ScreenToWorld converts canvas pixels to logical coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	return sx / c.Zoom, sy / c.Zoom
}

// PixelSize returns the canvas size in physical pixels
func (c *Camera) PixelSize() (int, int) {
	return int(math.Ceil(c.Width * c.Zoom)), int(math.Ceil(c.Height * c.Zoom))
}

// Canvas is a persistent offscreen image the show draws on. It is never
// cleared between frames; the show fades it instead.
type Canvas struct {
	img    *ebiten.Image
	camera *Camera

	// white is a 1x1 source for untextured triangles
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewCanvas allocates a canvas covering the camera's viewport
func NewCanvas(camera *Camera) *Canvas {
	w, h := camera.PixelSize()
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Canvas{
		img:    ebiten.NewImage(max(1, w), max(1, h)),
		camera: camera,
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Image returns the backing image
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

// FillRect implements fireworks.Surface
func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA, blend fireworks.Blend) {
	sx, sy := c.camera.WorldToScreen(x, y)
	z := c.camera.Zoom
	if blend == fireworks.BlendSourceOver {
		vector.DrawFilledRect(c.img, float32(sx), float32(sy), float32(w*z), float32(h*z), clr, false)
		return
	}
	c.vertices, c.indices = appendQuad(c.vertices[:0], c.indices[:0],
		[4][2]float32{
			{float32(sx), float32(sy)},
			{float32(sx + w*z), float32(sy)},
			{float32(sx + w*z), float32(sy + h*z)},
			{float32(sx), float32(sy + h*z)},
		}, clr)
	c.flush(blend)
}

// FillCircle implements fireworks.Surface
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA, blend fireworks.Blend) {
	if clr.A == 0 || r <= 0 {
		return
	}
	sx, sy := c.camera.WorldToScreen(cx, cy)
	rad := r * c.camera.Zoom
	c.vertices, c.indices = appendGlow(c.vertices[:0], c.indices[:0],
		float32(sx), float32(sy), float32(rad), float32(rad),
		[]fireworks.GradientStop{{Offset: 0, Color: clr}, {Offset: 1, Color: clr}},
		segmentsFor(rad))
	c.flush(blend)
}

// FillGlow implements fireworks.Surface
func (c *Canvas) FillGlow(cx, cy, r, gr float64, stops []fireworks.GradientStop, blend fireworks.Blend) {
	if len(stops) == 0 || r <= 0 {
		return
	}
	sx, sy := c.camera.WorldToScreen(cx, cy)
	z := c.camera.Zoom
	c.vertices, c.indices = appendGlow(c.vertices[:0], c.indices[:0],
		float32(sx), float32(sy), float32(r*z), float32(gr*z), stops, segmentsFor(r*z))
	c.flush(blend)
}

// StrokePolyline implements fireworks.Surface
func (c *Canvas) StrokePolyline(points []fireworks.Vec2, width float64, clr color.NRGBA, blend fireworks.Blend) {
	if len(points) < 2 || clr.A == 0 {
		return
	}
	z := c.camera.Zoom
	sw := float32(width * z)
	if blend == fireworks.BlendSourceOver {
		for i := 1; i < len(points); i++ {
			x0, y0 := c.camera.WorldToScreen(points[i-1].X, points[i-1].Y)
			x1, y1 := c.camera.WorldToScreen(points[i].X, points[i].Y)
			vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), sw, clr, true)
		}
		return
	}
	vs, is := c.vertices[:0], c.indices[:0]
	for i := 1; i < len(points); i++ {
		x0, y0 := c.camera.WorldToScreen(points[i-1].X, points[i-1].Y)
		x1, y1 := c.camera.WorldToScreen(points[i].X, points[i].Y)
		vs, is = appendSegment(vs, is, float32(x0), float32(y0), float32(x1), float32(y1), sw, clr)
	}
	c.vertices, c.indices = vs, is
	c.flush(blend)
}

func (c *Canvas) flush(blend fireworks.Blend) {
	if len(c.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	switch blend {
	case fireworks.BlendLighter:
		op.Blend = ebiten.BlendLighter
	default:
		op.Blend = ebiten.BlendSourceOver
	}
	c.img.DrawTriangles(c.vertices, c.indices, c.white, op)
}

// segmentsFor picks a polygon resolution for a circle of radius r pixels
func segmentsFor(r float64) int {
	return int(math.Min(48, math.Max(8, r*2)))
}

func vertex(x, y float32, clr color.NRGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(clr.R) / 255,
		ColorG: float32(clr.G) / 255,
		ColorB: float32(clr.B) / 255,
		ColorA: float32(clr.A) / 255,
	}
}

// appendGlow appends a disc of radius r shaded by a radial gradient spanning
// gr. Each stop becomes a ring; colors interpolate linearly between rings.
func appendGlow(vs []ebiten.Vertex, is []uint16, cx, cy, r, gr float32, stops []fireworks.GradientStop, segments int) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	vs = append(vs, vertex(cx, cy, stops[0].Color))

	prevRing := -1 // index offset of the previous ring, -1 for the center
	for _, stop := range stops {
		radius := float32(stop.Offset) * gr
		if radius <= 0 {
			continue
		}
		if radius > r {
			radius = r
		}
		ring := len(vs) - int(base)
		for k := 0; k < segments; k++ {
			a := 2 * math.Pi * float64(k) / float64(segments)
			vs = append(vs, vertex(cx+radius*float32(math.Cos(a)), cy+radius*float32(math.Sin(a)), stop.Color))
		}
		for k := 0; k < segments; k++ {
			next := (k + 1) % segments
			outerA := base + uint16(ring+k)
			outerB := base + uint16(ring+next)
			if prevRing < 0 {
				is = append(is, base, outerA, outerB)
				continue
			}
			innerA := base + uint16(prevRing+k)
			innerB := base + uint16(prevRing+next)
			is = append(is, innerA, outerA, outerB, innerA, outerB, innerB)
		}
		prevRing = ring
		if radius >= r {
			break
		}
	}
	return vs, is
}

// appendQuad appends a convex quad given in winding order
func appendQuad(vs []ebiten.Vertex, is []uint16, pts [4][2]float32, clr color.NRGBA) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	for _, p := range pts {
		vs = append(vs, vertex(p[0], p[1], clr))
	}
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}

// appendSegment appends a line segment of the given width as a quad
func appendSegment(vs []ebiten.Vertex, is []uint16, x0, y0, x1, y1, width float32, clr color.NRGBA) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return vs, is
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	return appendQuad(vs, is, [4][2]float32{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, clr)
}
