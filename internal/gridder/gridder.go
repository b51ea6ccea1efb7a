// Package gridder samples frame rotations over an evenly spaced time
// grid with a bounded worker pool. It backs the batch rotation endpoint.
package gridder

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/star/astrokit/frames"
	"github.com/star/astrokit/timescales"
)

// Request describes a rotation sampled over a time grid: Count epochs
// starting at Start, Step apart.
type Request struct {
	From  frames.Frame
	To    frames.Frame
	Start timescales.Time
	Step  timescales.TimeDelta
	Count int
}

// Sample is the rotation at one grid epoch.
type Sample struct {
	Index      int
	Epoch      timescales.Time
	Matrix     [3][3]float64
	Derivative [3][3]float64
}

// sampleJob is a unit of work for the worker pool.
type sampleJob struct {
	index int
	epoch timescales.Time
}

type sampleResult struct {
	sample Sample
	err    error
	index  int
}

// Pool manages a fixed number of goroutines for parallel grid sampling.
type Pool struct {
	workers int
	logger  *slog.Logger
}

// NewPool creates a worker pool with the given number of workers.
func NewPool(workers int, logger *slog.Logger) *Pool {
	return &Pool{
		workers: workers,
		logger:  logger,
	}
}

// SampleGrid evaluates the requested rotation at every grid epoch using
// the worker pool. Epochs that fail are logged and skipped; the returned
// samples are in grid order.
func (p *Pool) SampleGrid(ctx context.Context, provider *frames.Provider, req Request) ([]Sample, int, int) {
	if req.Count <= 0 {
		return nil, 0, 0
	}

	jobs := make(chan sampleJob, p.workers*2)
	results := make(chan sampleResult, p.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				result := sampleSingle(provider, req, job)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed jobs in a goroutine, walking the grid one step at a time.
	go func() {
		defer close(jobs)
		epoch := req.Start
		for i := 0; i < req.Count; i++ {
			job := sampleJob{index: i, epoch: epoch}
			select {
			case jobs <- job:
			case <-ctx.Done():
				return
			}
			epoch = epoch.Add(req.Step)
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	samples := make([]Sample, 0, req.Count)
	var successCount, errorCount int

	for result := range results {
		if result.err != nil {
			errorCount++
			p.logger.Warn("grid sample failed",
				"index", result.index,
				"from", req.From.String(),
				"to", req.To.String(),
				"error", result.err,
			)
			continue
		}
		successCount++
		samples = append(samples, result.sample)
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i].Index < samples[j].Index })
	return samples, successCount, errorCount
}

// sampleSingle evaluates the rotation at one grid epoch.
func sampleSingle(provider *frames.Provider, req Request, job sampleJob) sampleResult {
	rot, err := provider.Rotation(req.From, req.To, job.epoch)
	if err != nil {
		return sampleResult{index: job.index, err: err}
	}

	sample := Sample{Index: job.index, Epoch: job.epoch}
	m, dm := rot.Matrix(), rot.Derivative()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sample.Matrix[r][c] = m.At(r, c)
			sample.Derivative[r][c] = dm.At(r, c)
		}
	}
	return sampleResult{index: job.index, sample: sample}
}
