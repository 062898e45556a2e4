// Package survey generates batches of mazes in parallel and summarizes their
// shape, for tuning maze sizes from the command line.
package survey

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mazegame/internal/core"
	"mazegame/internal/maze"
)

// Job describes one maze to generate.
type Job struct {
	Width  int
	Height int
	Seed   int64
}

// Result captures the measurements of one generated maze.
type Result struct {
	Job      Job
	Open     int
	Density  float64
	Solution int
	DeadEnds int
	Elapsed  time.Duration
}

func (r Result) String() string {
	return fmt.Sprintf("seed=%d %dx%d open=%d density=%.3f solution=%d deadEnds=%d (%s)",
		r.Job.Seed, r.Job.Width, r.Job.Height, r.Open, r.Density, r.Solution, r.DeadEnds, r.Elapsed.Round(time.Microsecond))
}

// Jobs returns count jobs of the given size with consecutive seeds.
func Jobs(w, h int, firstSeed int64, count int) []Job {
	jobs := make([]Job, 0, max(0, count))
	for i := 0; i < count; i++ {
		jobs = append(jobs, Job{Width: w, Height: h, Seed: firstSeed + int64(i)})
	}
	return jobs
}

// Measure generates the maze for j and records its statistics.
func Measure(j Job) Result {
	start := time.Now()
	m := maze.NewGenerator(j.Width, j.Height, core.NewRNG(j.Seed)).Generate()
	open := m.Paths()
	return Result{
		Job:      j,
		Open:     open,
		Density:  float64(open) / float64(m.Width()*m.Height()),
		Solution: m.SolutionLength(),
		DeadEnds: m.DeadEnds(),
		Elapsed:  time.Since(start),
	}
}

// Run measures every job on workers goroutines. Results are ordered by seed.
// Cancelling ctx stops dispatching new jobs and returns ctx's error.
func Run(ctx context.Context, jobs []Job, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	in := make(chan Job)
	out := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range in {
				out <- Measure(j)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	go func() {
		defer close(in)
		for _, j := range jobs {
			select {
			case in <- j:
			case <-ctx.Done():
				return
			}
		}
	}()

	all := make([]Result, 0, len(jobs))
	for res := range out {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return all, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Job.Seed < all[j].Job.Seed })
	return all, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Count        int
	MeanDensity  float64
	MeanSolution float64
	MeanDeadEnds float64
	Longest      Result
	Shortest     Result
}

// Summarize folds results into a Summary. An empty batch yields the zero value.
func Summarize(results []Result) Summary {
	var s Summary
	if len(results) == 0 {
		return s
	}
	s.Count = len(results)
	s.Longest, s.Shortest = results[0], results[0]
	for _, r := range results {
		s.MeanDensity += r.Density
		s.MeanSolution += float64(r.Solution)
		s.MeanDeadEnds += float64(r.DeadEnds)
		if r.Solution > s.Longest.Solution {
			s.Longest = r
		}
		if r.Solution < s.Shortest.Solution {
			s.Shortest = r
		}
	}
	n := float64(s.Count)
	s.MeanDensity /= n
	s.MeanSolution /= n
	s.MeanDeadEnds /= n
	return s
}

// Longest returns a copy of results ordered by descending solution length,
// ties broken by seed.
func Longest(results []Result) []Result {
	out := append([]Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Solution != out[j].Solution {
			return out[i].Solution > out[j].Solution
		}
		return out[i].Job.Seed < out[j].Job.Seed
	})
	return out
}
