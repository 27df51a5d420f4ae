package fireworks

import "math"

// TrailPoint is a remembered spark position. Budget is fixed when the point
// is recorded; the trail is bounded by length, not by budget.
type TrailPoint struct {
	Pos    Vec2
	Budget int
}

// Spark is a short-lived explosion fragment
type Spark struct {
	Pos   Vec2
	Vel   Vec2
	Color Color

	Life    int
	MaxLife int
	Size    float64
	Alpha   float64
	Flicker bool

	// Trail holds recent positions, oldest first
	Trail []TrailPoint
}

// NewSpark launches a spark from pos at the given speed and direction
func NewSpark(pos Vec2, c Color, speed, angle float64, life int, size float64, flicker bool) *Spark {
	if life < 1 {
		life = 1
	}
	return &Spark{
		Pos:     pos,
		Vel:     Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    size,
		Alpha:   1,
		Flicker: flicker,
	}
}

// Update advances the spark by one tick
func (s *Spark) Update(t *Tuning, rng *Rand) {
	s.Trail = append(s.Trail, TrailPoint{Pos: s.Pos, Budget: max(4, s.MaxLife/10)})
	if len(s.Trail) > t.SparkTrailLength {
		s.Trail = append(s.Trail[:0], s.Trail[len(s.Trail)-t.SparkTrailLength:]...)
	}

	s.Vel.X *= t.SparkFriction
	s.Vel.Y *= t.SparkFriction
	s.Vel.Y += t.Gravity
	s.Pos.X += s.Vel.X
	s.Pos.Y += s.Vel.Y

	s.Life--
	s.Alpha = math.Max(0, float64(s.Life)/float64(s.MaxLife))
	if s.Flicker && rng.Chance(t.SparkFlickerChance) {
		s.Alpha *= rng.Range(0.6, 1.0)
	}
}

// Expired reports whether the spark should leave the world. bottom is the
// surface height in logical units.
func (s *Spark) Expired(t *Tuning, bottom float64) bool {
	if !s.Pos.finite() || !s.Vel.finite() || math.IsNaN(s.Alpha) {
		return true
	}
	return s.Life <= 0 || s.Alpha <= t.SparkMinAlpha || s.Pos.Y > bottom+t.OffscreenMargin
}

// Draw renders the trail as a fading, shrinking stack of discs and then the head
func (s *Spark) Draw(dst Surface) {
	n := len(s.Trail)
	for i, p := range s.Trail {
		// f is 0 at the oldest point and grows toward the head
		f := float64(i) / float64(n)
		r := math.Max(0.6, s.Size*(1-f)*0.8)
		dst.FillCircle(p.Pos.X, p.Pos.Y, r, s.Color.Alpha(s.Alpha*(1-f)*0.5), BlendLighter)
	}
	dst.FillCircle(s.Pos.X, s.Pos.Y, s.Size, s.Color.Alpha(s.Alpha), BlendLighter)
}
