package fireworks

import "time"

// Tuning holds every physics and spawn constant of the show.
// Values are per-tick multipliers tuned for a ~60Hz frame clock.
type Tuning struct {
	// Gravity is the downward acceleration applied to sparks each tick
	Gravity float64

	// RocketLift scales Gravity for rockets so they keep climbing
	RocketLift float64

	// RocketDamping is applied to both rocket velocity components each tick
	RocketDamping float64

	RocketMinSpeed float64
	RocketMaxSpeed float64

	// RocketDetonateDistance is how close to its target a rocket must get
	RocketDetonateDistance float64

	// RocketMaxAge is the number of ticks after which a rocket detonates anyway
	RocketMaxAge int

	// RocketFallLimit is the vertical speed above which a rocket detonates early
	RocketFallLimit float64

	RocketTrailLength int
	SparkTrailLength  int

	SparkFriction      float64
	SparkFlickerChance float64

	// SparkMinAlpha is the visibility threshold below which a spark is retired
	SparkMinAlpha float64

	// OffscreenMargin is how far below the bottom edge a spark may fall
	OffscreenMargin float64

	// FadeAlpha is the opacity of the black wash laid over each frame
	FadeAlpha float64

	// AmbientDensity is the per-frame probability of an ambient launch
	AmbientDensity float64

	// AmbientCap bounds how many rockets a single ambient launch may send up
	AmbientCap int

	BigBurstCount   int
	NormalBurstMin  int
	NormalBurstMax  int
	SecondaryMin    int
	SecondaryMax    int
	SecondaryJitter float64

	// StarArea is the surface area covered by one star
	StarArea float64

	// RevealDelay is the wait between the central detonation and the reveal
	RevealDelay time.Duration

	PeriodicMin    time.Duration
	PeriodicMax    time.Duration
	PeriodicChance float64
}

// DefaultTuning returns the constants the show was designed around
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:                0.05,
		RocketLift:             0.05,
		RocketDamping:          0.999,
		RocketMinSpeed:         5.5,
		RocketMaxSpeed:         8.5,
		RocketDetonateDistance: 18,
		RocketMaxAge:           120,
		RocketFallLimit:        3.5,
		RocketTrailLength:      12,
		SparkTrailLength:       10,
		SparkFriction:          0.985,
		SparkFlickerChance:     0.06,
		SparkMinAlpha:          0.02,
		OffscreenMargin:        50,
		FadeAlpha:              0.18,
		AmbientDensity:         0.006,
		AmbientCap:             5,
		BigBurstCount:          180,
		NormalBurstMin:         30,
		NormalBurstMax:         80,
		SecondaryMin:           10,
		SecondaryMax:           22,
		SecondaryJitter:        10,
		StarArea:               90000,
		RevealDelay:            40 * time.Millisecond,
		PeriodicMin:            900 * time.Millisecond,
		PeriodicMax:            1700 * time.Millisecond,
		PeriodicChance:         0.8,
	}
}
