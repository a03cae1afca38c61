package renderer

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ScanlinePool parallelizes one sample pass across scanlines, bounded to a
// fixed number of concurrent goroutines. threads == 1 runs the scanlines
// serially on the calling goroutine, matching the teacher's single-thread
// fallback.
type ScanlinePool struct {
	threads int
	sem     *semaphore.Weighted
}

// NewScanlinePool creates a pool bounded to threads concurrent scanlines.
// threads <= 0 defaults to runtime.NumCPU().
func NewScanlinePool(threads int) *ScanlinePool {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	return &ScanlinePool{threads: threads, sem: semaphore.NewWeighted(int64(threads))}
}

// Threads reports the configured concurrency.
func (p *ScanlinePool) Threads() int {
	return p.threads
}

// RunRows calls fn(y) for every y in [0, rows), waiting for all calls to
// finish before returning.
func (p *ScanlinePool) RunRows(rows int, fn func(y int)) {
	if p.threads == 1 {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}

	var wg sync.WaitGroup
	ctx := context.Background()
	for y := 0; y < rows; y++ {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			// context.Background never cancels; Acquire can only fail here
			// if the weight exceeds the semaphore's capacity, which
			// NewScanlinePool never allows.
			fn(y)
			continue
		}
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			defer p.sem.Release(1)
			fn(y)
		}(y)
	}
	wg.Wait()
}
