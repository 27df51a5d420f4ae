package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"fireworks/fireworks"
)

var colorBackground = color.NRGBA{3, 5, 16, 255}

// Game adapts a fireworks.Show to ebiten's Update/Draw/Layout loop
type Game struct {
	config Config
	logger *log.Logger

	show   *fireworks.Show
	camera *Camera
	canvas *Canvas
	input  InputProvider
	title  *Title

	// Latest size reported by Layout, applied on the next Update
	outsideWidth, outsideHeight int
	scale                       float64

	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	gameStartTime time.Time
}

// NewGame creates the game and opens the show. audio may be nil for a silent
// show.
func NewGame(config Config, audio fireworks.Audio, logger *log.Logger) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}

	title := NewTitle(config)
	show := fireworks.New(fireworks.Options{
		Width:    float64(config.ScreenWidth),
		Height:   float64(config.ScreenHeight),
		Seed:     config.Seed,
		Audio:    audio,
		Revealer: title,
		Logger:   logger,
	})

	g := &Game{
		config:          config,
		logger:          logger,
		show:            show,
		camera:          NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight), 1),
		input:           NewPointerInput(),
		title:           title,
		outsideWidth:    config.ScreenWidth,
		outsideHeight:   config.ScreenHeight,
		scale:           1,
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
	}
	if config.ProfileOnDrop {
		g.profiler = NewProfiler(config.ProfileDir, logger)
	}
	GetDebugState().ShowStats = config.ShowStats

	show.Start()
	return g, nil
}

// Show returns the running show
func (g *Game) Show() *fireworks.Show {
	return g.show
}

// Update advances the show by one tick
func (g *Game) Update() error {
	now := time.Since(g.gameStartTime)
	g.applyLayout()

	g.input.Update()
	if g.input.ToggleStats() {
		ds := GetDebugState()
		ds.ShowStats = !ds.ShowStats
	}
	for _, p := range g.input.Launches() {
		x, y := g.camera.ScreenToWorld(p.X, p.Y)
		g.show.Launch(x, y)
	}

	g.title.Tick(now)
	g.show.Frame(now, g.canvas)

	g.checkFrameRate(now)
	return nil
}

// applyLayout rebuilds the camera and canvas when the window size or device
// scale changed since the last tick
func (g *Game) applyLayout() {
	w, h := float64(g.outsideWidth), float64(g.outsideHeight)
	if g.canvas != nil && w == g.camera.Width && h == g.camera.Height && g.scale == g.camera.Zoom {
		return
	}
	g.camera = NewCamera(w, h, g.scale)
	g.canvas = NewCanvas(g.camera)
	g.show.Resize(w, h)
}

func (g *Game) checkFrameRate(now time.Duration) {
	if g.profiler == nil || now < 3*time.Second {
		return
	}
	tps := ebiten.ActualTPS()
	if tps >= g.config.FPSDropThreshold || time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	stats := g.show.Stats()
	reason := fmt.Sprintf("tps%.0f-sparks%d-rockets%d", tps, stats.Sparks, stats.Rockets)
	g.logger.Printf("frame rate drop detected (%.0f TPS), capturing profile", tps)
	if err := g.profiler.CaptureProfile(reason); err != nil {
		g.logger.Printf("failed to capture profile: %v", err)
	}
}

// Draw renders the canvas, the title and the optional stats overlay
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if g.canvas != nil {
		screen.DrawImage(g.canvas.Image(), nil)
	}
	g.title.Draw(screen, g.camera)

	if GetDebugState().ShowStats {
		drawStats(screen, g.show.Stats())
	}
}

// Layout records the window size and returns the canvas size in device pixels
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideWidth, g.outsideHeight = outsideWidth, outsideHeight
	g.scale = ebiten.Monitor().DeviceScaleFactor()
	if g.scale <= 0 {
		g.scale = 1
	}
	return int(float64(outsideWidth) * g.scale), int(float64(outsideHeight) * g.scale)
}

// Close stops the show
func (g *Game) Close() {
	g.show.Close()
}
