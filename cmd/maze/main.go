//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"mazegame/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("[config] %v", err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	chime := app.NewChime(cfg)
	if chime != nil {
		defer chime.Close()
	}
	sc, seed := app.NewScene(cfg, app.Notifier(chime))

	game := app.New(sc, cfg)
	defer game.Close()

	ebiten.SetWindowTitle(fmt.Sprintf("maze %dx%d (seed %d)", cfg.Width, cfg.Height, seed))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Window, cfg.Window)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
