package game

import (
	"errors"
	"fmt"
	"time"
)

// Config holds front end configuration
type Config struct {
	// ScreenWidth is the initial window width in logical pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in logical pixels
	ScreenHeight int

	// Title and Subtitle are revealed by the central burst
	Title    string
	Subtitle string

	// SubtitleDelay is how long after the title the subtitle appears
	SubtitleDelay time.Duration

	// Seed for the show's random source; zero picks one from the clock
	Seed int64

	// SoundPath points to a WAV clip; empty uses the synthesized report
	SoundPath string

	// Volume of the burst clip in [0, 1]
	Volume float64

	// SampleRate of the audio context
	SampleRate int

	// ShowStats starts with the stats overlay visible (F1 toggles it)
	ShowStats bool

	// ProfileOnDrop captures a CPU profile and trace when TPS drops below FPSDropThreshold
	ProfileOnDrop    bool
	ProfileDir       string
	FPSDropThreshold float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1024,
		ScreenHeight:     768,
		Title:            "Happy New Year",
		Subtitle:         "may every spark find its way home",
		SubtitleDelay:    3 * time.Second,
		Volume:           0.3,
		SampleRate:       44100,
		ProfileDir:       "profiles",
		FPSDropThreshold: 45.0,
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size %dx%d: %w", c.ScreenWidth, c.ScreenHeight, errInvalidConfig)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %.2f outside [0, 1]: %w", c.Volume, errInvalidConfig)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d: %w", c.SampleRate, errInvalidConfig)
	}
	if c.ProfileOnDrop && c.ProfileDir == "" {
		return fmt.Errorf("profiling enabled without a profile dir: %w", errInvalidConfig)
	}
	return nil
}

var errInvalidConfig = errors.New("invalid config")
