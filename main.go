package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"fireworks/fireworks"
	"fireworks/game"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ScreenWidth, "width", getEnvInt("FIREWORKS_WIDTH", config.ScreenWidth), "window width")
	flag.IntVar(&config.ScreenHeight, "height", getEnvInt("FIREWORKS_HEIGHT", config.ScreenHeight), "window height")
	flag.StringVar(&config.Title, "title", getEnv("FIREWORKS_TITLE", config.Title), "title revealed by the central burst")
	flag.StringVar(&config.Subtitle, "subtitle", getEnv("FIREWORKS_SUBTITLE", config.Subtitle), "subtitle shown after the title")
	flag.Int64Var(&config.Seed, "seed", int64(getEnvInt("FIREWORKS_SEED", 0)), "random seed (0 picks one)")
	flag.StringVar(&config.SoundPath, "sound", getEnv("FIREWORKS_SOUND", ""), "WAV clip for bursts (empty synthesizes one)")
	flag.Float64Var(&config.Volume, "volume", getEnvFloat("FIREWORKS_VOLUME", config.Volume), "burst volume in [0, 1]")
	flag.BoolVar(&config.ShowStats, "stats", false, "show the stats overlay (F1 toggles)")
	flag.BoolVar(&config.ProfileOnDrop, "profile", false, "capture a CPU profile and trace when the frame rate drops")
	flag.StringVar(&config.ProfileDir, "profile-dir", config.ProfileDir, "directory for captured profiles")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	var sound fireworks.Audio
	if !*mute {
		s, err := game.NewSound(audio.NewContext(config.SampleRate), config.SoundPath, config.Volume, config.Seed)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			sound = s
		}
	}

	g, err := game.NewGame(config, sound, log.Default())
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizable(true)

	start := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("show closed after %s", time.Since(start).Round(time.Second))
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}
