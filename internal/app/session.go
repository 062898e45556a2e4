package app

import (
	"log"

	"mazegame/internal/audio"
	"mazegame/internal/core"
	"mazegame/internal/maze"
	"mazegame/internal/scene"
)

// NewScene generates a maze from cfg and wraps it in a scene. The returned
// seed reproduces the maze when passed back through cfg.Seed.
func NewScene(cfg *Config, notifier scene.Notifier) (*scene.Scene, int64) {
	seed := cfg.ResolveSeed()
	m := maze.NewGenerator(cfg.Width, cfg.Height, core.NewRNG(seed)).Generate()
	log.Printf("[maze] generated %dx%d seed=%d open=%d end=%v", m.Width(), m.Height(), seed, m.Paths(), m.End())

	opts := scene.DefaultOptions()
	opts.Speed = cfg.Speed
	opts.StrictCorners = cfg.StrictCorners
	opts.Seed = seed
	opts.Notifier = notifier
	return scene.New(m, opts), seed
}

// NewChime returns an initialized chime when sound is enabled. Audio failures
// are logged and yield nil so the game runs silently.
func NewChime(cfg *Config) *audio.Chime {
	if !cfg.Sound {
		return nil
	}
	c := audio.NewChime(cfg.Volume)
	if err := c.Init(); err != nil {
		log.Printf("[audio] disabled: %v", err)
		return nil
	}
	return c
}

// Notifier adapts an optional chime to scene.Notifier.
func Notifier(c *audio.Chime) scene.Notifier {
	if c == nil {
		return nil
	}
	return c
}
