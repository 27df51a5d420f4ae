package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"fireworks/sfx"
)

const maxVoices = 16

var errVoicesBusy = errors.New("all voices busy")

// Sound plays the burst report. Every Replay gets its own player so reports
// overlap instead of restarting each other.
type Sound struct {
	ctx    *audio.Context
	pcm    []byte
	volume float64
	voices []*audio.Player
}

// NewSound loads a WAV clip from path, or synthesizes a report when path is
// empty. The clip is decoded once and kept as 16-bit stereo PCM.
func NewSound(ctx *audio.Context, path string, volume float64, seed int64) (*Sound, error) {
	var pcm []byte
	if path == "" {
		pcm = sfx.PCM16(sfx.Bang(ctx.SampleRate(), 900*time.Millisecond, seed), 1)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read sound: %w", err)
		}
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		if pcm, err = io.ReadAll(stream); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return &Sound{
		ctx:    ctx,
		pcm:    pcm,
		volume: volume,
		voices: make([]*audio.Player, 0, maxVoices),
	}, nil
}

// Replay implements fireworks.Audio
func (s *Sound) Replay() error {
	s.reap()
	if len(s.voices) >= maxVoices {
		return errVoicesBusy
	}
	p := s.ctx.NewPlayerFromBytes(s.pcm)
	p.SetVolume(s.volume)
	p.Play()
	s.voices = append(s.voices, p)
	return nil
}

// reap drops players that finished
func (s *Sound) reap() {
	n := 0
	for _, p := range s.voices {
		if p.IsPlaying() {
			s.voices[n] = p
			n++
			continue
		}
		p.Close()
	}
	clear(s.voices[n:])
	s.voices = s.voices[:n]
}
