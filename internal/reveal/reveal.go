// Package reveal holds deferred one-shot flags and the stagger schedule used
// for entry animations.
package reveal

import (
	"sync"
	"time"
)

// Flag flips from false to true once its delay has elapsed. A Flag belongs
// to the scope that created it: Stop must be called when that scope ends,
// and a stopped Flag never flips.
type Flag struct {
	mu      sync.Mutex
	set     bool
	stopped bool
	timer   *time.Timer
	done    chan struct{}
}

// After starts a Flag that flips after d. A non-positive d flips it
// immediately.
func After(d time.Duration) *Flag {
	f := &Flag{done: make(chan struct{})}
	if d <= 0 {
		f.fire()
		return f
	}
	f.mu.Lock()
	f.timer = time.AfterFunc(d, f.fire)
	f.mu.Unlock()
	return f
}

func (f *Flag) fire() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stopped || f.set {
		return
	}
	f.set = true
	close(f.done)
}

// IsSet reports whether the flag has flipped.
func (f *Flag) IsSet() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set
}

// Done is closed when the flag flips. It is never closed for a Flag that
// was stopped first.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}

// Stop cancels a pending flip. It reports whether the call prevented the
// flag from flipping. Stop is idempotent.
func (f *Flag) Stop() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set || f.stopped {
		return false
	}
	f.stopped = true
	if f.timer != nil {
		f.timer.Stop()
	}
	return true
}

// Stagger spaces entry animations of sibling elements by Step.
type Stagger struct {
	Step time.Duration
	Max  time.Duration
}

// Delay returns the delay for the i-th element, capped at Max when Max is
// positive.
func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	d := time.Duration(i) * s.Step
	if s.Max > 0 && d > s.Max {
		return s.Max
	}
	return d
}

// Millis is Delay in whole milliseconds, the unit used by data attributes.
func (s Stagger) Millis(i int) int {
	return int(s.Delay(i) / time.Millisecond)
}
