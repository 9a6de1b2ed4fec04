package fbtpng

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of converting one file.
type Result struct {
	Input  string
	Output string // empty on failure
	Err    error
}

// Summary collects the results of a batch in input order.
type Summary struct {
	Results []Result
}

// Total returns the number of files attempted.
func (s Summary) Total() int { return len(s.Results) }

// Failed returns the number of files that could not be converted.
func (s Summary) Failed() int {
	n := 0
	for _, r := range s.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Succeeded returns the number of files converted.
func (s Summary) Succeeded() int { return s.Total() - s.Failed() }

// ConvertAll converts every file in files into outDir, creating outDir if
// needed. It runs up to workers conversions at once; each worker gets its
// own generator from newGen. A failing file is recorded in the summary and
// does not stop the others.
//
// The returned error is non-nil only when outDir cannot be created or ctx
// is canceled; files not started before cancellation are recorded with the
// context error.
func ConvertAll(ctx context.Context, files []string, outDir string, workers int, newGen func() *Generator) (Summary, error) {
	sum := Summary{Results: make([]Result, len(files))}
	for i, f := range files {
		sum.Results[i].Input = f
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return sum, fmt.Errorf("fbtpng: create output dir: %w", err)
	}
	if len(files) == 0 {
		return sum, nil
	}
	workers = max(1, min(workers, len(files)))

	log := Logger()
	log.Debug("starting conversion", "files", len(files), "workers", workers, "outDir", outDir)

	jobs := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range files {
			if gctx.Err() == nil {
				select {
				case jobs <- i:
					continue
				case <-gctx.Done():
				}
			}
			for ; i < len(files); i++ {
				sum.Results[i].Err = gctx.Err()
			}
			return gctx.Err()
		}
		return nil
	})

	for w := range workers {
		g.Go(func() error {
			gen := newGen()
			for i := range jobs {
				r := &sum.Results[i]
				r.Output, r.Err = gen.GenerateFile(r.Input, outDir)
				if r.Err != nil {
					log.Warn("conversion failed", "worker", w, "file", r.Input, "err", r.Err)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	log.Info("conversion finished", "succeeded", sum.Succeeded(), "failed", sum.Failed(), "total", sum.Total())
	return sum, err
}
