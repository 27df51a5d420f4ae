package fireworks

import (
	"math"
)

// SizeClass governs explosion scale and whether a secondary burst follows
type SizeClass int

const (
	SizeNormal SizeClass = iota
	SizeBig
)

func (s SizeClass) String() string {
	if s == SizeBig {
		return "big"
	}
	return "normal"
}

// Detonation is a value snapshot of a rocket at the moment it burst
type Detonation struct {
	Origin  Vec2
	Color   Color
	Size    SizeClass
	Central bool
}

// Rocket is an ascending projectile that bursts near its target
type Rocket struct {
	Pos    Vec2
	Vel    Vec2
	Target Vec2
	Color  Color

	// Trail holds recent positions, oldest first
	Trail []Vec2

	Central  bool
	Exploded bool

	// Age counts ticks since creation
	Age int
}

// NewRocket aims a rocket from start toward target with a randomized launch speed
func NewRocket(rng *Rand, t *Tuning, start, target Vec2, c Color, central bool) *Rocket {
	angle := math.Atan2(target.Y-start.Y, target.X-start.X)
	speed := rng.Range(t.RocketMinSpeed, t.RocketMaxSpeed)
	return &Rocket{
		Pos: start,
		Vel: Vec2{
			X: math.Cos(angle)*speed + rng.Range(-0.5, 0.5),
			Y: math.Sin(angle)*speed + rng.Range(-1, 1),
		},
		Target:  target,
		Color:   c,
		Trail:   make([]Vec2, 0, t.RocketTrailLength+1),
		Central: central,
	}
}

// Update advances the rocket by one tick. It returns true on the tick the
// rocket detonates; after that it is exploded and must not be updated again.
func (r *Rocket) Update(t *Tuning) bool {
	if r.Exploded {
		return false
	}
	r.Age++

	r.Trail = append(r.Trail, r.Pos)
	if len(r.Trail) > t.RocketTrailLength {
		r.Trail = append(r.Trail[:0], r.Trail[len(r.Trail)-t.RocketTrailLength:]...)
	}

	r.Vel.Y += t.Gravity * t.RocketLift
	r.Vel.X *= t.RocketDamping
	r.Vel.Y *= t.RocketDamping
	r.Pos.X += r.Vel.X
	r.Pos.Y += r.Vel.Y

	// vy above the fall limit means the rocket is dropping: burst where it is
	if r.Pos.Dist(r.Target) < t.RocketDetonateDistance ||
		r.Age > t.RocketMaxAge ||
		r.Vel.Y > t.RocketFallLimit {
		r.Exploded = true
		return true
	}
	return false
}

// Detonation returns the burst parameters for this rocket
func (r *Rocket) Detonation() Detonation {
	size := SizeNormal
	if r.Central {
		size = SizeBig
	}
	return Detonation{Origin: r.Pos, Color: r.Color, Size: size, Central: r.Central}
}

// Valid reports whether the rocket's numeric state is usable
func (r *Rocket) Valid() bool {
	return r.Pos.finite() && r.Vel.finite()
}

// Draw renders the glowing head and the faint trail
func (r *Rocket) Draw(dst Surface) {
	dst.FillGlow(r.Pos.X, r.Pos.Y, 10, 8, []GradientStop{
		{Offset: 0, Color: White.Alpha(0.9)},
		{Offset: 0.2, Color: r.Color.Alpha(1)},
		{Offset: 1, Color: Black.Alpha(0)},
	}, BlendLighter)

	if len(r.Trail) < 2 {
		return
	}
	// newest first so the segment nearest the head is laid down first
	points := make([]Vec2, 0, len(r.Trail))
	for i := len(r.Trail) - 1; i >= 0; i-- {
		points = append(points, r.Trail[i])
	}
	dst.StrokePolyline(points, 1, White.Alpha(0.05), BlendSourceOver)
}
