package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"fireworks/fireworks"
	"fireworks/terminal"
)

func main() {
	config := terminal.DefaultConfig()

	flag.StringVar(&config.Title, "title", getEnv("FIREWORKS_TITLE", config.Title), "title revealed by the central burst")
	flag.StringVar(&config.Subtitle, "subtitle", getEnv("FIREWORKS_SUBTITLE", config.Subtitle), "subtitle shown after the title")
	flag.Int64Var(&config.Seed, "seed", getEnvInt64("FIREWORKS_SEED", 0), "random seed (0 picks one)")
	flag.DurationVar(&config.FrameInterval, "frame", config.FrameInterval, "frame interval")
	flag.BoolVar(&config.ShowStats, "stats", false, "show world counters (s toggles)")
	soundPath := flag.String("sound", getEnv("FIREWORKS_SOUND", ""), "WAV clip for bursts (empty synthesizes one)")
	volume := flag.Float64("volume", 0.3, "burst volume in [0, 1]")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", getEnv("FIREWORKS_LOG", ""), "log file (the terminal is busy drawing)")
	flag.Parse()

	// the screen owns stdout, so logs go to a file or nowhere
	logger := log.New(io.Discard, "fireworks: ", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	var sound fireworks.Audio
	if !*mute {
		s, err := terminal.NewSound(*soundPath, *volume, config.Seed)
		if err == nil {
			err = s.Initialize()
		}
		if err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			defer s.Cleanup()
			sound = s
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	app, err := terminal.NewApp(config, screen, sound, logger)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = app.Run(ctx)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}
