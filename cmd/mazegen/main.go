package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"mazegame/internal/app"
	"mazegame/internal/core"
	"mazegame/internal/maze"
	"mazegame/internal/survey"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatalf("[config] %v", err)
	}
	fs := flag.CommandLine
	fs.IntVar(&cfg.Width, "w", cfg.Width, "maze width in cells")
	fs.IntVar(&cfg.Height, "h", cfg.Height, "maze height in cells")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "maze seed (0 picks a random seed)")
	count := flag.Int("count", 1, "number of mazes; above 1 prints statistics instead of the maze")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "longest solutions to list")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	seed := cfg.ResolveSeed()
	if *count <= 1 {
		m := maze.NewGenerator(cfg.Width, cfg.Height, core.NewRNG(seed)).Generate()
		fmt.Printf("seed=%d solution=%d\n", seed, m.SolutionLength())
		fmt.Print(m.String())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Generating %d mazes of %dx%d (%d workers, first seed %d)\n", *count, cfg.Width, cfg.Height, *workers, seed)
	start := time.Now()
	results, err := survey.Run(ctx, survey.Jobs(cfg.Width, cfg.Height, seed, *count), *workers)
	if err != nil {
		log.Printf("[survey] stopped early after %d mazes: %v", len(results), err)
	}
	s := survey.Summarize(results)
	fmt.Printf("\n%d mazes in %s: density=%.3f solution=%.1f deadEnds=%.1f\n",
		s.Count, time.Since(start).Round(time.Millisecond), s.MeanDensity, s.MeanSolution, s.MeanDeadEnds)
	if s.Count == 0 {
		return
	}
	fmt.Printf("Shortest: %s\n", s.Shortest)

	longest := survey.Longest(results)
	fmt.Printf("\nTop %d by solution length:\n", min(*top, len(longest)))
	for i := 0; i < len(longest) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, longest[i])
	}
}
