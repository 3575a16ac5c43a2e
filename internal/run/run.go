// Package run fans the generation of a segment's variants out over a
// worker pool. Child seeds are derived before fan-out, so the result is
// identical whatever the worker count or scheduling.
package run

import (
	"sync"

	"mcpt-data/internal/model"
	"mcpt-data/internal/permute"
	"mcpt-data/internal/slogx"
)

// Job is one variant to generate.
type Job struct {
	Index int
	Seed  int64
}

// GenerateAll produces one synthetic table per child seed, in seed order.
// Each worker computes a pure permute.Generate and stores into its own
// result slot; no shared mutable state beyond the disjoint slots.
func GenerateAll(f *permute.Features, src []model.Bar, seeds []int64, workers int) [][]model.Bar {
	results := make([][]model.Bar, len(seeds))
	if len(seeds) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}

	logs := make(chan string, 256)
	logger := slogx.NewChanLogger(logs)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		runLogWriter(logs)
	}()

	pending := make(chan Job, len(seeds))
	for i, s := range seeds {
		pending <- Job{Index: i, Seed: s}
	}
	close(pending)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for job := range pending {
				results[job.Index] = permute.Generate(f, src, job.Seed)
				logger.Info("variant generated", "variant", job.Index+1, "bars", len(src))
			}
		}()
	}
	wg.Wait()
	close(logs)
	logWg.Wait()

	return results
}
