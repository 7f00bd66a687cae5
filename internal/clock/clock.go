// Package clock turns a monotonic time source into per-frame elapsed time
// and drains it in fixed simulation steps.
package clock

import (
	"sync"
	"time"
)

// DefaultMaxFrameDelta caps the elapsed time reported for a single frame.
// A stalled host (suspended terminal, debugger) must not trigger a long
// burst of catch-up steps.
const DefaultMaxFrameDelta = 1.0

// TimeSource provides the current time.
type TimeSource interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings.
type SystemTime struct{}

// Now returns the current time with monotonic clock reading.
func (SystemTime) Now() time.Time {
	return time.Now()
}

// ManualTime is a controllable time source for tests and headless runs.
type ManualTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTime creates a manual time source starting at the given time.
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{currentTime: start}
}

// Now returns the current manual time.
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time.
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward by d.
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// Clock measures real time between consecutive frames.
type Clock struct {
	source   TimeSource
	last     time.Time
	maxDelta float64
}

// New creates a clock reading from source. The first Tick measures from now.
func New(source TimeSource, maxDelta float64) *Clock {
	if source == nil {
		source = SystemTime{}
	}
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &Clock{
		source:   source,
		last:     source.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns the current time and the seconds elapsed since the previous
// Tick, capped at the clock's max frame delta. Time running backwards reads
// as zero.
func (c *Clock) Tick() (time.Time, float64) {
	now := c.source.Now()
	elapsed := now.Sub(c.last).Seconds()
	c.last = now

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.maxDelta {
		elapsed = c.maxDelta
	}
	return now, elapsed
}

// Reset restarts measurement from the current time.
func (c *Clock) Reset() {
	c.last = c.source.Now()
}

// Now returns the source's current time without consuming a frame.
func (c *Clock) Now() time.Time {
	return c.source.Now()
}
