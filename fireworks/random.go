package fireworks

import (
	"math"
	"math/rand"
	"time"
)

// Rand wraps a seeded source with the sampling helpers the show needs.
// It is not safe for concurrent use; the show only touches it from the loop.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a source seeded with seed. A zero seed picks one from the clock.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Range returns a uniform float in [a, b)
func (r *Rand) Range(a, b float64) float64 {
	return a + r.r.Float64()*(b-a)
}

// Int returns a uniform integer in [a, b], both ends included
func (r *Rand) Int(a, b int) int {
	if b <= a {
		return a
	}
	return a + r.r.Intn(b-a+1)
}

// Gaussian returns a standard normal sample
func (r *Rand) Gaussian() float64 {
	return r.r.NormFloat64()
}

// Chance reports true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Angle returns a uniform direction in radians
func (r *Rand) Angle() float64 {
	return r.Range(0, 2*math.Pi)
}

// Duration returns a uniform duration in [a, b], rounded to whole milliseconds
func (r *Rand) Duration(a, b time.Duration) time.Duration {
	return time.Duration(r.Int(int(a/time.Millisecond), int(b/time.Millisecond))) * time.Millisecond
}

// PaletteColor picks a uniformly random palette entry
func (r *Rand) PaletteColor() Color {
	return Palette[r.r.Intn(len(Palette))]
}
