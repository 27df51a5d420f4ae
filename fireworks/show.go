// Package fireworks simulates and renders a firework display: rockets climbing
// toward targets, bursts of sparks under gravity and friction, delayed crackle
// bursts and a twinkling starfield. Front ends drive it one frame at a time
// and supply the drawing surface, audio and reveal collaborators.
package fireworks

import (
	"log"
	"time"
)

// Options configures a Show. Zero values fall back to sensible defaults.
type Options struct {
	Width, Height float64

	// Seed for the random source; zero seeds from the clock
	Seed int64

	// Tuning overrides DefaultTuning when non-nil
	Tuning *Tuning

	Audio    Audio
	Revealer Revealer
	Logger   *log.Logger
}

// Stats is a snapshot of the world for diagnostics
type Stats struct {
	Rockets int
	Sparks  int
	Stars   int
	Pending int
	Frame   time.Duration
}

// Show owns the world and runs the simulation loop. All methods must be
// called from the same goroutine.
type Show struct {
	tuning   Tuning
	rng      *Rand
	world    *World
	sched    *Scheduler
	spawner  *Spawner
	exploder *Exploder
	revealer Revealer
	logger   *log.Logger

	frameTime time.Duration
	closed    bool
}

// New creates a show for a surface of the given logical size
func New(opts Options) *Show {
	tuning := DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Show{
		tuning:   tuning,
		rng:      NewRand(opts.Seed),
		world:    NewWorld(opts.Width, opts.Height),
		sched:    NewScheduler(),
		revealer: opts.Revealer,
		logger:   logger,
	}
	s.spawner = NewSpawner(s.world, s.rng, &s.tuning, s.sched)
	s.exploder = NewExploder(s.world, s.rng, &s.tuning, s.sched, opts.Audio, logger)
	return s
}

// World exposes the live state, mainly for tests and diagnostics
func (s *Show) World() *World { return s.world }

// Spawner exposes the rocket launcher
func (s *Show) Spawner() *Spawner { return s.spawner }

// Exploder exposes the explosion generator
func (s *Show) Exploder() *Exploder { return s.exploder }

// Scheduler exposes the deferred callback queue
func (s *Show) Scheduler() *Scheduler { return s.sched }

// Start opens the show: the central rocket, the periodic ambient policy and
// three ambient rockets
func (s *Show) Start() {
	if s.closed {
		return
	}
	s.spawner.Central()
	s.spawner.StartPeriodic()
	for i := 0; i < 3; i++ {
		s.spawner.Ambient()
	}
}

// Resize handles a change of surface size. It rederives all size-dependent
// state and may be called at any time, any number of times.
func (s *Show) Resize(width, height float64) {
	if s.closed {
		return
	}
	s.world.Resize(width, height)
}

// Launch sends a user rocket toward a surface-local point
func (s *Show) Launch(x, y float64) {
	if s.closed {
		return
	}
	s.spawner.Launch(Vec2{X: x, Y: y})
}

// Frame advances the show by one tick at clock now and draws it onto dst
func (s *Show) Frame(now time.Duration, dst Surface) {
	if s.closed {
		return
	}
	w := s.world
	s.frameTime = now - w.LastTime
	w.LastTime = now
	s.sched.Run(now)

	// a translucent wash instead of a clear leaves fading ghosts of earlier frames
	dst.FillRect(0, 0, w.Width, w.Height, Black.Alpha(s.tuning.FadeAlpha), BlendSourceOver)

	s.drawStars(dst)

	for i := len(w.Rockets) - 1; i >= 0; i-- {
		r := w.Rockets[i]
		detonated := r.Update(&s.tuning)
		if !r.Valid() {
			w.removeRocket(i)
			continue
		}
		r.Draw(dst)
		if detonated {
			s.detonate(r.Detonation())
		}
		if r.Exploded {
			w.removeRocket(i)
		}
	}

	for i := len(w.Sparks) - 1; i >= 0; i-- {
		p := w.Sparks[i]
		p.Update(&s.tuning, s.rng)
		if p.Pos.finite() {
			p.Draw(dst)
		}
		if p.Expired(&s.tuning, w.Height) {
			w.removeSpark(i)
		}
	}

	if s.rng.Chance(s.tuning.AmbientDensity) {
		s.spawner.AmbientBatch()
	}
}

func (s *Show) detonate(d Detonation) {
	s.exploder.Explode(d.Origin, d.Color, d.Size)
	if !d.Central || s.revealer == nil {
		return
	}
	color := d.Color
	s.sched.After(s.tuning.RevealDelay, func() {
		s.revealer.Reveal(color)
	})
}

func (s *Show) drawStars(dst Surface) {
	w := s.world
	w.EnsureStars(s.rng, s.tuning.StarArea)
	for i := range w.Stars {
		star := &w.Stars[i]
		a := star.Twinkle()
		dst.FillCircle(star.Pos.X, star.Pos.Y, star.Radius, White.Alpha(a), BlendLighter)
	}
}

// Stats returns current counts
func (s *Show) Stats() Stats {
	return Stats{
		Rockets: len(s.world.Rockets),
		Sparks:  len(s.world.Sparks),
		Stars:   len(s.world.Stars),
		Pending: s.sched.Pending(),
		Frame:   s.frameTime,
	}
}

// Close stops the show. Deferred callbacks still pending are dropped and
// later calls are no-ops.
func (s *Show) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.sched.Close()
}
