package terminal

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)

	cfg := DefaultConfig()
	cfg.Seed = 7
	app, err := NewApp(cfg, screen, nil, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return app, screen
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.FrameInterval = 0
	if err := cfg.Validate(); !errors.Is(err, errInvalidConfig) {
		t.Errorf("zero frame interval: got %v, want errInvalidConfig", err)
	}
}

func TestAppSizesShowToScreen(t *testing.T) {
	app, _ := newTestApp(t)
	w := app.Show().World()
	if w.Width != 320 || w.Height != 320 {
		t.Errorf("world = %vx%v, want 320x320", w.Width, w.Height)
	}
}

func TestMouseLaunchesOncePerPress(t *testing.T) {
	app, _ := newTestApp(t)

	app.handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	app.handle(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone)) // drag
	app.handle(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))

	rockets := app.Show().World().Rockets
	if len(rockets) != 1 {
		t.Fatalf("rockets = %d, want 1", len(rockets))
	}
	if rockets[0].Target.X != 84 || rockets[0].Target.Y != 88 {
		t.Errorf("target = %+v, want (84, 88)", rockets[0].Target)
	}
}

func TestResizeEvent(t *testing.T) {
	app, _ := newTestApp(t)
	app.handle(tcell.NewEventResize(80, 10))
	w := app.Show().World()
	if w.Width != 640 || w.Height != 160 {
		t.Errorf("world = %vx%v, want 640x160", w.Width, w.Height)
	}
}

func TestQuitKeys(t *testing.T) {
	app, _ := newTestApp(t)
	if !app.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("escape should quit")
	}
	if !app.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("q should quit")
	}
	if app.handle(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone)) || !app.showStats {
		t.Error("s should toggle stats without quitting")
	}
}

func TestFramePresentsHalfBlocks(t *testing.T) {
	app, screen := newTestApp(t)
	app.show.Start()
	for i := 1; i <= 5; i++ {
		app.frame(time.Duration(i) * 16 * time.Millisecond)
	}
	r, _, _, _ := screen.GetContent(0, 0)
	if r != '▀' {
		t.Errorf("cell rune = %q, want half block", r)
	}
	if len(app.Show().World().Rockets) == 0 {
		t.Error("opening rockets missing after frames")
	}
}
