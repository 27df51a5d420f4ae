package fireworks

import (
	"log"
	"math"
	"time"
)

// Exploder fans a detonation out into sparks and inserts them into the world
type Exploder struct {
	world  *World
	rng    *Rand
	tuning *Tuning
	sched  *Scheduler
	audio  Audio
	logger *log.Logger

	audioFailed bool
}

// NewExploder wires an explosion generator to its world
func NewExploder(world *World, rng *Rand, tuning *Tuning, sched *Scheduler, audio Audio, logger *log.Logger) *Exploder {
	if audio == nil {
		audio = silence{}
	}
	return &Exploder{
		world:  world,
		rng:    rng,
		tuning: tuning,
		sched:  sched,
		audio:  audio,
		logger: logger,
	}
}

// ExplodeRandom bursts at origin in a random palette color
func (e *Exploder) ExplodeRandom(origin Vec2, size SizeClass) int {
	return e.Explode(origin, e.rng.PaletteColor(), size)
}

// Explode inserts a batch of sparks shaded from c at origin and returns how
// many were inserted. Big bursts also schedule a delayed secondary crackle.
func (e *Exploder) Explode(origin Vec2, c Color, size SizeClass) int {
	e.play()

	t := e.tuning
	big := size == SizeBig

	var count int
	var spread, speedBase float64
	if big {
		count = t.BigBurstCount
		spread = e.rng.Range(0.9, 1.2)
		speedBase = e.rng.Range(3.4, 6.2)
	} else {
		count = e.rng.Int(t.NormalBurstMin, t.NormalBurstMax)
		spread = e.rng.Range(0.6, 1.0)
		speedBase = e.rng.Range(2.0, 4.6)
	}

	sparks := make([]*Spark, 0, count)
	for i := 0; i < count; i++ {
		angle := e.rng.Angle()
		// most sparks land near the base speed; the normal tail leaves rare fast ones
		speed := math.Abs(e.rng.Gaussian()*0.6+1) * speedBase * (0.6 + e.rng.Range(0, spread))
		life := float64(e.rng.Int(40, 109))
		var sparkSize float64
		if big {
			life *= 1.2
			sparkSize = e.rng.Range(1.6, 3.2)
		} else {
			sparkSize = e.rng.Range(0.9, 2.2)
		}
		shade := c.Shade(e.rng.Range(-40, 40))
		sparks = append(sparks, NewSpark(origin, shade, speed, angle, int(math.Round(life)), sparkSize, true))
	}
	e.world.AddSparks(sparks...)

	if big {
		delay := e.rng.Duration(150*time.Millisecond, 350*time.Millisecond)
		e.sched.After(delay, func() {
			e.secondary(origin)
		})
	}
	return count
}

// secondary drops a small crackle of multi-colored sparks around origin
func (e *Exploder) secondary(origin Vec2) {
	t := e.tuning
	n := e.rng.Int(t.SecondaryMin, t.SecondaryMax)
	sparks := make([]*Spark, 0, n)
	for i := 0; i < n; i++ {
		pos := Vec2{
			X: origin.X + e.rng.Range(-t.SecondaryJitter, t.SecondaryJitter),
			Y: origin.Y + e.rng.Range(-t.SecondaryJitter, t.SecondaryJitter),
		}
		sparks = append(sparks, NewSpark(pos, e.rng.PaletteColor(),
			e.rng.Range(1.2, 3.0), e.rng.Angle(), e.rng.Int(30, 70), e.rng.Range(0.8, 1.8), true))
	}
	e.world.AddSparks(sparks...)
}

func (e *Exploder) play() {
	err := e.audio.Replay()
	if err == nil || e.audioFailed {
		return
	}
	e.audioFailed = true
	if e.logger != nil {
		e.logger.Printf("audio playback failed, continuing without it: %v", err)
	}
}
