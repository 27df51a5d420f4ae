package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fireworks/fireworks"
)

// DebugState holds debug flags that persist for the life of the process
type DebugState struct {
	ShowStats bool // Overlay world counters and frame rate
}

var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// statsLine formats the overlay text
func statsLine(s fireworks.Stats, fps, tps float64) string {
	return fmt.Sprintf("FPS %.1f  TPS %.1f\nrockets %d  sparks %d  stars %d\npending %d  t=%s",
		fps, tps, s.Rockets, s.Sparks, s.Stars, s.Pending, s.Frame.Truncate(1e7))
}

func drawStats(screen *ebiten.Image, s fireworks.Stats) {
	ebitenutil.DebugPrint(screen, statsLine(s, ebiten.ActualFPS(), ebiten.ActualTPS()))
}
