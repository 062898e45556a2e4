package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"mazegame/internal/app"
	"mazegame/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("[config] %v", err)
	}
	cfg.TPS = term.DefaultOptions().TPS
	cfg.Bind(flag.CommandLine)
	zoom := flag.Float64("zoom", term.DefaultOptions().Zoom, "terminal pixels per world unit")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	// The screen owns the terminal; stray log lines would corrupt it.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("[log] %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	chime := app.NewChime(cfg)
	if chime != nil {
		defer chime.Close()
	}
	sc, _ := app.NewScene(cfg, app.Notifier(chime))

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("[term] %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("[term] %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := term.DefaultOptions()
	opts.TPS = cfg.TPS
	opts.Zoom = *zoom
	game := term.NewGame(screen, sc, opts)
	defer game.Close()
	if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[term] %v", err)
	}
}
