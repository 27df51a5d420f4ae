package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"fireworks/fireworks"
)

// InputProvider is polled once per tick by the game
type InputProvider interface {
	// Update samples the devices for this tick
	Update()

	// Launches returns the points pressed this tick, in screen pixels
	Launches() []fireworks.Vec2

	// ToggleStats reports whether the stats overlay was toggled this tick
	ToggleStats() bool
}

// PointerInput reads mouse clicks, touches and the F1 key
type PointerInput struct {
	launches []fireworks.Vec2
	touchIDs []ebiten.TouchID
	toggle   bool
}

// NewPointerInput creates a new pointer input provider
func NewPointerInput() *PointerInput {
	return &PointerInput{
		launches: make([]fireworks.Vec2, 0, 4),
		touchIDs: make([]ebiten.TouchID, 0, 4),
	}
}

// Update implements InputProvider
func (p *PointerInput) Update() {
	p.launches = p.launches[:0]

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.launches = append(p.launches, fireworks.Vec2{X: float64(x), Y: float64(y)})
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		p.launches = append(p.launches, fireworks.Vec2{X: float64(x), Y: float64(y)})
	}

	p.toggle = inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

// Launches implements InputProvider
func (p *PointerInput) Launches() []fireworks.Vec2 {
	return p.launches
}

// ToggleStats implements InputProvider
func (p *PointerInput) ToggleStats() bool {
	return p.toggle
}
