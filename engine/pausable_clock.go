package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock derives game time from a real time source, excluding paused spans
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider
	start  time.Time // Real time at creation, also the game time epoch

	paused      atomic.Bool
	pauseStart  time.Time     // Real time when the current pause began
	totalPaused time.Duration // Sum of finished pauses
}

// NewPausableClock creates a running clock over source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{source: source, start: source.Now()}
}

// Now returns game time. Frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused.Load() {
		return pc.start.Add(pc.pauseStart.Sub(pc.start) - pc.totalPaused)
	}
	return pc.start.Add(pc.source.Now().Sub(pc.start) - pc.totalPaused)
}

// Elapsed is game time since creation
func (pc *PausableClock) Elapsed() time.Duration {
	return pc.Now().Sub(pc.start)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused.CompareAndSwap(false, true) {
		pc.pauseStart = pc.source.Now()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused.CompareAndSwap(true, false) {
		pc.totalPaused += pc.source.Now().Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	}
}

// Toggle flips the pause state and returns the new one
func (pc *PausableClock) Toggle() bool {
	if pc.paused.Load() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused.Load()
}

// TotalPauseDuration includes the pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPaused
	if pc.paused.Load() {
		total += pc.source.Now().Sub(pc.pauseStart)
	}
	return total
}
