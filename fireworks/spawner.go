package fireworks

import (
	"math"
	"time"
)

// Spawner decides where rockets start and where they aim
type Spawner struct {
	world  *World
	rng    *Rand
	tuning *Tuning
	sched  *Scheduler
}

// NewSpawner creates a spawner adding rockets to world
func NewSpawner(world *World, rng *Rand, tuning *Tuning, sched *Scheduler) *Spawner {
	return &Spawner{world: world, rng: rng, tuning: tuning, sched: sched}
}

// bottomStart is a random launch point just below the bottom edge
func (s *Spawner) bottomStart() Vec2 {
	return Vec2{
		X: s.rng.Range(40, math.Max(40, s.world.Width-40)),
		Y: s.world.Height + 10,
	}
}

// Ambient launches a background rocket at a random point in the upper half
func (s *Spawner) Ambient() *Rocket {
	const margin = 60.0
	target := Vec2{
		X: s.rng.Range(margin, math.Max(margin, s.world.Width-margin)),
		Y: s.rng.Range(60, math.Max(60, s.world.Height*0.5)),
	}
	r := NewRocket(s.rng, s.tuning, s.bottomStart(), target, s.rng.PaletteColor(), false)
	s.world.AddRocket(r)
	return r
}

// AmbientBatch launches between 1 and min(3, cap) ambient rockets
func (s *Spawner) AmbientBatch() int {
	n := s.rng.Int(1, min(3, s.tuning.AmbientCap))
	for i := 0; i < n; i++ {
		s.Ambient()
	}
	return n
}

// Central launches the ceremonial rocket from near bottom-center toward the middle
func (s *Spawner) Central() *Rocket {
	w, h := s.world.Width, s.world.Height
	start := Vec2{X: w/2 + s.rng.Range(-120, 120), Y: h + 20}
	target := Vec2{X: w / 2, Y: h/2 - 40}
	r := NewRocket(s.rng, s.tuning, start, target, s.rng.PaletteColor(), true)
	s.world.AddRocket(r)
	return r
}

// Launch sends a rocket from the bottom edge toward a user-chosen point
func (s *Spawner) Launch(target Vec2) *Rocket {
	r := NewRocket(s.rng, s.tuning, s.bottomStart(), target, s.rng.PaletteColor(), false)
	s.world.AddRocket(r)
	return r
}

// StartPeriodic starts the timer-driven ambient policy. It runs beside the
// per-frame ambient chance and is not merged with it.
func (s *Spawner) StartPeriodic() {
	t := s.tuning
	s.sched.Every(func() time.Duration {
		return s.rng.Duration(t.PeriodicMin, t.PeriodicMax)
	}, func() {
		if s.rng.Chance(t.PeriodicChance) {
			s.Ambient()
		}
	})
}
