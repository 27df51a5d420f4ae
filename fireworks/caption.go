package fireworks

import "time"

// Caption tracks a title revealed by the central burst and a subtitle that
// follows it. Front ends draw it; Caption only answers what to draw and how
// strongly at the current clock.
type Caption struct {
	Title         string
	Subtitle      string
	SubtitleDelay time.Duration
	FadeIn        time.Duration

	color    Color
	revealed bool
	at       time.Duration
	now      time.Duration
}

// NewCaption creates an unrevealed caption
func NewCaption(title, subtitle string, subtitleDelay time.Duration) *Caption {
	return &Caption{
		Title:         title,
		Subtitle:      subtitle,
		SubtitleDelay: subtitleDelay,
		FadeIn:        1200 * time.Millisecond,
	}
}

// Tick advances the caption clock. Call it before the show's frame so a
// reveal fired during the frame is stamped with the frame time.
func (c *Caption) Tick(now time.Duration) {
	c.now = now
}

// Reveal implements Revealer. Only the first reveal counts.
func (c *Caption) Reveal(col Color) {
	if c.revealed {
		return
	}
	c.revealed = true
	c.color = col
	c.at = c.now
}

// Revealed reports whether the caption has been revealed
func (c *Caption) Revealed() bool { return c.revealed }

// Color is the burst color the caption was revealed with
func (c *Caption) Color() Color { return c.color }

// TitleAlpha is the title opacity in [0, 1]
func (c *Caption) TitleAlpha() float64 {
	if !c.revealed {
		return 0
	}
	return revealAlpha(c.now-c.at, c.FadeIn)
}

// SubtitleAlpha is the subtitle opacity in [0, 1]
func (c *Caption) SubtitleAlpha() float64 {
	if !c.revealed || c.Subtitle == "" {
		return 0
	}
	return revealAlpha(c.now-c.at-c.SubtitleDelay, c.FadeIn)
}

func revealAlpha(elapsed, fade time.Duration) float64 {
	if elapsed < 0 {
		return 0
	}
	if fade <= 0 || elapsed >= fade {
		return 1
	}
	return float64(elapsed) / float64(fade)
}
