package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"fireworks/fireworks"
)

// Title writes the revealed caption over the framebuffer
type Title struct {
	*fireworks.Caption
}

// NewTitle creates a hidden title
func NewTitle(title, subtitle string, subtitleDelay time.Duration) *Title {
	return &Title{Caption: fireworks.NewCaption(title, subtitle, subtitleDelay)}
}

// Draw renders the caption centered a fifth of the way down the screen
func (t *Title) Draw(screen tcell.Screen, canvas *Canvas) {
	if !t.Revealed() {
		return
	}
	row := canvas.rows / 5
	c := t.Color()
	t.drawLine(screen, canvas, t.Title, row, colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}, t.TitleAlpha())
	t.drawLine(screen, canvas, t.Subtitle, row+2, colorful.Color{R: 1, G: 1, B: 1}, t.SubtitleAlpha())
}

func (t *Title) drawLine(screen tcell.Screen, canvas *Canvas, s string, row int, fg colorful.Color, alpha float64) {
	if s == "" || alpha <= 0 || row >= canvas.rows {
		return
	}
	runes := []rune(s)
	col := (canvas.cols - len(runes)) / 2
	for i, r := range runes {
		x := col + i
		if x < 0 || x >= canvas.cols {
			continue
		}
		bg := canvas.At(x, 2*row).BlendRgb(canvas.At(x, 2*row+1), 0.5)
		style := tcell.StyleDefault.
			Foreground(tcellColor(bg.BlendRgb(fg, alpha))).
			Background(tcellColor(bg)).
			Bold(true)
		screen.SetContent(x, row, r, nil, style)
	}
}
