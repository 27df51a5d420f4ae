package game

import (
	"strings"
	"testing"
	"time"

	"fireworks/fireworks"
)

func TestStatsLine(t *testing.T) {
	line := statsLine(fireworks.Stats{Rockets: 2, Sparks: 180, Stars: 5, Pending: 1, Frame: 16 * time.Millisecond}, 59.9, 60)
	for _, want := range []string{"FPS 59.9", "rockets 2", "sparks 180", "stars 5", "pending 1"} {
		if !strings.Contains(line, want) {
			t.Errorf("stats line %q missing %q", line, want)
		}
	}
}
