// Package terminal runs a firework show in a terminal using half-block
// characters for pixels.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"fireworks/fireworks"
)

var errInvalidConfig = errors.New("invalid config")

// Config holds terminal front end configuration
type Config struct {
	Title         string
	Subtitle      string
	SubtitleDelay time.Duration
	Seed          int64

	// FrameInterval is the ticker period driving the show
	FrameInterval time.Duration

	// ShowStats prints world counters on the bottom row (s toggles it)
	ShowStats bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Title:         "Happy New Year",
		Subtitle:      "may every spark find its way home",
		SubtitleDelay: 3 * time.Second,
		FrameInterval: 16 * time.Millisecond,
	}
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval %v: %w", c.FrameInterval, errInvalidConfig)
	}
	if c.SubtitleDelay < 0 {
		return fmt.Errorf("subtitle delay %v: %w", c.SubtitleDelay, errInvalidConfig)
	}
	return nil
}

// App drives a show on a tcell screen
type App struct {
	config Config
	screen tcell.Screen
	logger *log.Logger

	show   *fireworks.Show
	canvas *Canvas
	title  *Title

	showStats bool
	buttons   tcell.ButtonMask
}

// NewApp creates the show sized to the screen. The screen must already be
// initialized; audio may be nil.
func NewApp(config Config, screen tcell.Screen, audio fireworks.Audio, logger *log.Logger) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	cols, rows := screen.Size()
	canvas := NewCanvas(cols, rows)
	title := NewTitle(config.Title, config.Subtitle, config.SubtitleDelay)
	w, h := canvas.LogicalSize()

	return &App{
		config: config,
		screen: screen,
		logger: logger,
		canvas: canvas,
		title:  title,
		show: fireworks.New(fireworks.Options{
			Width:    w,
			Height:   h,
			Seed:     config.Seed,
			Audio:    audio,
			Revealer: title,
			Logger:   logger,
		}),
		showStats: config.ShowStats,
	}, nil
}

// Show returns the running show
func (a *App) Show() *fireworks.Show {
	return a.show
}

// Run starts the show and blocks until ctx is done or the user quits
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(a.config.FrameInterval)
	defer ticker.Stop()

	start := time.Now()
	a.show.Start()
	defer a.show.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handle(ev) {
				return nil
			}

		case <-ticker.C:
			a.frame(time.Since(start))
		}
	}
}

// handle applies one event and reports whether the app should exit
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 's':
				a.showStats = !a.showStats
			}
		}

	case *tcell.EventMouse:
		// launch on press only; drags report the held button on every motion
		pressed := ev.Buttons() &^ a.buttons
		a.buttons = ev.Buttons()
		if pressed&tcell.Button1 != 0 {
			col, row := ev.Position()
			a.show.Launch(a.canvas.ToLogical(col, row))
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.canvas.Resize(cols, rows)
		a.show.Resize(a.canvas.LogicalSize())
		a.screen.Sync()
	}
	return false
}

func (a *App) frame(now time.Duration) {
	a.title.Tick(now)
	a.show.Frame(now, a.canvas)

	a.canvas.Present(a.screen)
	a.title.Draw(a.screen, a.canvas)
	if a.showStats {
		a.drawStats()
	}
	a.screen.Show()
}

func (a *App) drawStats() {
	s := a.show.Stats()
	line := fmt.Sprintf(" rockets %d  sparks %d  stars %d  pending %d ", s.Rockets, s.Sparks, s.Stars, s.Pending)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorBlack)
	row := a.canvas.rows - 1
	for i, r := range line {
		if i >= a.canvas.cols {
			break
		}
		a.screen.SetContent(i, row, r, nil, style)
	}
}
