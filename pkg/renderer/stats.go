package renderer

import "sync/atomic"

// RunStats accumulates the step-count diagnostics the spec calls for:
// total steps taken since the last ResetTotal and the single largest
// per-ray step count since the last ResetMax. They exist only for logging
// and are safe to read
// concurrently with the workers that update them.
type RunStats struct {
	totalSteps        int64
	maxStepsPerSample int64
}

// Add records one ray's step count.
func (s *RunStats) Add(steps int) {
	atomic.AddInt64(&s.totalSteps, int64(steps))
	for {
		cur := atomic.LoadInt64(&s.maxStepsPerSample)
		if int64(steps) <= cur {
			return
		}
		if atomic.CompareAndSwapInt64(&s.maxStepsPerSample, cur, int64(steps)) {
			return
		}
	}
}

// TotalSteps returns the running total of steps recorded since the last
// ResetTotal.
func (s *RunStats) TotalSteps() int64 {
	return atomic.LoadInt64(&s.totalSteps)
}

// MaxStepsPerSample returns the largest single-ray step count recorded
// since the last ResetMax.
func (s *RunStats) MaxStepsPerSample() int64 {
	return atomic.LoadInt64(&s.maxStepsPerSample)
}

// ResetMax zeroes the per-sample maximum, ready for the next sample pass.
func (s *RunStats) ResetMax() {
	atomic.StoreInt64(&s.maxStepsPerSample, 0)
}

// ResetTotal zeroes the running total, ready for a fresh render.
func (s *RunStats) ResetTotal() {
	atomic.StoreInt64(&s.totalSteps, 0)
}
