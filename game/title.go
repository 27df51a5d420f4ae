package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"fireworks/fireworks"
)

// glowOffsets are the pixel offsets of the additive halo behind the title
var glowOffsets = [...][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Title draws the caption revealed by the central burst
type Title struct {
	*fireworks.Caption
	face *text.GoXFace
}

// NewTitle creates a hidden title
func NewTitle(cfg Config) *Title {
	return &Title{
		Caption: fireworks.NewCaption(cfg.Title, cfg.Subtitle, cfg.SubtitleDelay),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders the caption centered in the upper part of the screen
func (t *Title) Draw(screen *ebiten.Image, camera *Camera) {
	if !t.Revealed() {
		return
	}
	cx, _ := camera.WorldToScreen(camera.Width/2, 0)
	_, ty := camera.WorldToScreen(0, camera.Height*0.2)

	t.drawLine(screen, t.Title, cx, ty, 4*camera.Zoom, t.TitleAlpha(), t.Color())
	t.drawLine(screen, t.Subtitle, cx, ty+64*camera.Zoom, 1.5*camera.Zoom, t.SubtitleAlpha(), fireworks.White)
}

func (t *Title) drawLine(screen *ebiten.Image, s string, x, y, scale, alpha float64, c fireworks.Color) {
	if s == "" || alpha <= 0 {
		return
	}
	clr := c.Alpha(1)

	for _, off := range glowOffsets {
		op := t.options(x+off[0]*scale, y+off[1]*scale, scale)
		op.ColorScale.ScaleWithColor(clr)
		op.ColorScale.ScaleAlpha(float32(alpha * 0.35))
		op.Blend = ebiten.BlendLighter
		text.Draw(screen, s, t.face, op)
	}

	op := t.options(x, y, scale)
	op.ColorScale.ScaleWithColor(c.Shade(60).Alpha(1))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, t.face, op)
}

func (t *Title) options(x, y, scale float64) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	return op
}
