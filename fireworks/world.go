package fireworks

import "time"

// World holds the live particles, the starfield and the frame timing.
// Slices keep insertion order so reverse-index removal is deterministic.
type World struct {
	Rockets []*Rocket
	Sparks  []*Spark
	Stars   []Star

	Width, Height float64

	// LastTime is the timestamp of the previous frame
	LastTime time.Duration

	starsValid bool
}

// NewWorld creates an empty world for a width x height surface
func NewWorld(width, height float64) *World {
	return &World{
		Rockets: make([]*Rocket, 0, 16),
		Sparks:  make([]*Spark, 0, 1024),
		Width:   width,
		Height:  height,
	}
}

// AddRocket inserts a rocket
func (w *World) AddRocket(r *Rocket) {
	w.Rockets = append(w.Rockets, r)
}

// AddSparks inserts a batch of sparks
func (w *World) AddSparks(sparks ...*Spark) {
	w.Sparks = append(w.Sparks, sparks...)
}

// Resize records the new surface size and drops the starfield so it is rebuilt
// from scratch. Calling it repeatedly with the same size is harmless.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
	w.Stars = nil
	w.starsValid = false
}

// EnsureStars builds the starfield if it was never built or was invalidated
func (w *World) EnsureStars(rng *Rand, area float64) {
	if w.starsValid {
		return
	}
	w.Stars = BuildStars(rng, w.Width, w.Height, area)
	w.starsValid = true
}

func (w *World) removeRocket(i int) {
	w.Rockets = append(w.Rockets[:i], w.Rockets[i+1:]...)
}

func (w *World) removeSpark(i int) {
	w.Sparks = append(w.Sparks[:i], w.Sparks[i+1:]...)
}
