package app

import "time"

// FixedStep paces generations at a steady rate independent of the frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires perSecond times a second.
// The first call to Ready always fires.
func NewFixedStep(perSecond int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetRate(perSecond)
	f.accumulator = f.step
	return f
}

// SetRate changes the firing rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 60
	}
	f.step = time.Second / time.Duration(perSecond)
}

// Interval returns the time between firings.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Ready reports whether enough time has passed to advance one generation.
// At most one step is released per call, so a stalled frame does not cause a
// burst of generations.
func (f *FixedStep) Ready() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}

// Reset forgets accumulated time; the next Ready call fires.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}
