// Package sfx synthesizes the firework report used when no clip is configured.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"
)

// Bang renders a stereo firework report: a noise crack over a low thump,
// followed by a sparse crackle tail. Samples are in [-1, 1].
func Bang(sampleRate int, d time.Duration, seed int64) [][2]float64 {
	n := int(float64(sampleRate) * d.Seconds())
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([][2]float64, n)

	fade := max(1, sampleRate/200)
	var lp float64 // one-pole low-pass state for the crack
	for i := range out {
		t := float64(i) / float64(sampleRate)

		noise := rng.Float64()*2 - 1
		lp += (noise - lp) * 0.35
		crack := lp * math.Exp(-t*18)

		thump := math.Sin(2*math.Pi*55*t) * math.Exp(-t*7) * 0.8

		var crackle float64
		if t > 0.12 && rng.Float64() < 0.002*math.Exp(-t*2.5) {
			crackle = (rng.Float64()*2 - 1) * 0.9
		}

		v := clamp(crack*0.9+thump+crackle, -1, 1)
		// fade the last 5ms so the clip never ends on a click
		if tail := n - 1 - i; tail < fade {
			v *= float64(tail) / float64(fade)
		}
		pan := (rng.Float64() - 0.5) * 0.1
		out[i] = [2]float64{v * (1 - pan), v * (1 + pan)}
		out[i][0] = clamp(out[i][0], -1, 1)
		out[i][1] = clamp(out[i][1], -1, 1)
	}
	return out
}

// PCM16 encodes stereo samples as interleaved little-endian signed 16-bit
// frames, scaled by volume.
func PCM16(samples [][2]float64, volume float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, s := range samples {
		l := int16(clamp(s[0]*volume, -1, 1) * math.MaxInt16)
		r := int16(clamp(s[1]*volume, -1, 1) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(l))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(r))
	}
	return buf
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
