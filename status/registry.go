// Package status holds lock-free game metrics shared between the scheduler
// goroutine and readers such as the HUD and the sim summary.
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the engine
const (
	KeyTicks         = "engine.ticks"
	KeyPaused        = "engine.paused"
	KeyTickRate      = "engine.tick_hz"
	KeySplitsStarted = "split.started"
	KeySplitsDone    = "split.completed"
	KeySplitsFailed  = "split.failed"
	KeyBounces       = "ball.bounces"
	KeyLevelUps      = "level.ups"
	KeyGameOvers     = "game.overs"
	KeyPaddleHits    = "paddle.hits"
	KeyFillPercent   = "board.fill_pct"
	KeyEventsRouted  = "events.routed"
	KeyConfigReloads = "config.reloads"
	KeySoundsPlayed  = "audio.played"
	KeySoundsDropped = "audio.dropped"
)

// Registry is the central metrics facade
// Writers cache pointers once; hot loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Inc adds one to the named counter
func (r *Registry) Inc(key string) int64 {
	return r.Ints.Get(key).Add(1)
}

// Int reads a counter without creating it
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Snapshot renders every metric as key/value text in key order per type
func (r *Registry) Snapshot() [][2]string {
	out := make([][2]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, [2]string{k, fmt.Sprintf("%d", v.Load())})
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out = append(out, [2]string{k, fmt.Sprintf("%.2f", v.Get())})
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, [2]string{k, fmt.Sprintf("%t", v.Load())})
	})
	return out
}
