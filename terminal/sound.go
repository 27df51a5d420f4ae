package terminal

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"fireworks/sfx"
)

const sampleRate = beep.SampleRate(48000)

// Sound plays the burst report through the speaker. The clip is buffered
// once; each Replay mixes a fresh stream of it so reports overlap.
type Sound struct {
	mu          sync.Mutex
	buf         *beep.Buffer
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSound loads a WAV clip from path, or synthesizes a report when path is
// empty. It does not touch the audio device.
func NewSound(path string, volume float64, seed int64) (*Sound, error) {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})

	if path == "" {
		samples := sfx.Bang(int(sampleRate), 900*time.Millisecond, seed)
		buf.Append(beep.StreamerFunc(func(dst [][2]float64) (int, bool) {
			if len(samples) == 0 {
				return 0, false
			}
			n := copy(dst, samples)
			samples = samples[n:]
			return n, true
		}))
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open sound: %w", err)
		}
		defer f.Close()
		streamer, format, err := wav.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		defer streamer.Close()
		var s beep.Streamer = streamer
		if format.SampleRate != sampleRate {
			s = beep.Resample(4, format.SampleRate, sampleRate, streamer)
		}
		buf.Append(s)
	}

	return &Sound{
		buf:    buf,
		volume: volume,
		mixer:  &beep.Mixer{},
	}, nil
}

// Initialize opens the speaker and starts the mixer
func (s *Sound) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Replay implements fireworks.Audio. Before Initialize it is silent.
func (s *Sound) Replay() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}
	v := &effects.Volume{
		Streamer: s.buf.Streamer(0, s.buf.Len()),
		Base:     2,
		Volume:   math.Log2(max(s.volume, 1e-3)),
		Silent:   s.volume <= 0,
	}
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
	return nil
}

// Cleanup stops playback
func (s *Sound) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Len is the clip length in samples
func (s *Sound) Len() int {
	return s.buf.Len()
}
