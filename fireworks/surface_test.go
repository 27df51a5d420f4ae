package fireworks

import "image/color"

// recorder is a Surface that counts draw calls
type recorder struct {
	rects    int
	circles  int
	glows    int
	lines    int
	byBlend  map[Blend]int
	maxAlpha uint8

	// circleAlphas holds the alpha of every disc in draw order
	circleAlphas []uint8
}

func newRecorder() *recorder {
	return &recorder{byBlend: map[Blend]int{}}
}

func (r *recorder) count(blend Blend) {
	if r.byBlend == nil {
		r.byBlend = map[Blend]int{}
	}
	r.byBlend[blend]++
}

func (r *recorder) note(clr color.NRGBA, blend Blend) {
	r.count(blend)
	if clr.A > r.maxAlpha {
		r.maxAlpha = clr.A
	}
}

func (r *recorder) FillRect(x, y, w, h float64, clr color.NRGBA, blend Blend) {
	r.rects++
	r.note(clr, blend)
}

func (r *recorder) FillCircle(cx, cy, rad float64, clr color.NRGBA, blend Blend) {
	r.circles++
	r.circleAlphas = append(r.circleAlphas, clr.A)
	r.note(clr, blend)
}

func (r *recorder) FillGlow(cx, cy, rad, gr float64, stops []GradientStop, blend Blend) {
	r.glows++
	r.count(blend)
}

func (r *recorder) StrokePolyline(points []Vec2, width float64, clr color.NRGBA, blend Blend) {
	r.lines++
	r.note(clr, blend)
}

// failingAudio counts plays and always fails
type failingAudio struct {
	plays int
}

func (a *failingAudio) Replay() error {
	a.plays++
	return errAudioBusy
}

type audioErr string

func (e audioErr) Error() string { return string(e) }

const errAudioBusy = audioErr("device busy")
