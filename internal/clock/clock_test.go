package clock

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestClockElapsed(t *testing.T) {
	src := NewManualTime(epoch)
	c := New(src, DefaultMaxFrameDelta)

	src.Advance(16 * time.Millisecond)
	_, elapsed := c.Tick()
	if math.Abs(elapsed-0.016) > 1e-9 {
		t.Errorf("elapsed = %f, expected 0.016", elapsed)
	}

	// No time passed since previous tick
	_, elapsed = c.Tick()
	if elapsed != 0 {
		t.Errorf("elapsed = %f, expected 0", elapsed)
	}
}

func TestClockCapsStall(t *testing.T) {
	src := NewManualTime(epoch)
	c := New(src, DefaultMaxFrameDelta)

	src.Advance(5 * time.Second)
	now, elapsed := c.Tick()
	if elapsed != 1.0 {
		t.Errorf("elapsed after stall = %f, expected cap of 1.0", elapsed)
	}
	if !now.Equal(epoch.Add(5 * time.Second)) {
		t.Errorf("Tick should report the real current time, got %v", now)
	}
}

func TestClockBackwardsTime(t *testing.T) {
	src := NewManualTime(epoch)
	c := New(src, 0)

	src.Set(epoch.Add(-time.Second))
	if _, elapsed := c.Tick(); elapsed != 0 {
		t.Errorf("time running backwards should read as 0, got %f", elapsed)
	}
}

func TestClockReset(t *testing.T) {
	src := NewManualTime(epoch)
	c := New(src, DefaultMaxFrameDelta)

	src.Advance(500 * time.Millisecond)
	c.Reset()
	src.Advance(100 * time.Millisecond)

	if _, elapsed := c.Tick(); math.Abs(elapsed-0.1) > 1e-9 {
		t.Errorf("elapsed after Reset = %f, expected 0.1", elapsed)
	}
}

func TestAccumulatorDrain(t *testing.T) {
	tests := []struct {
		name      string
		frames    []float64
		wantSteps int
	}{
		{"nothing banked", []float64{0}, 0},
		{"exactly one step stays banked", []float64{0.25}, 0},
		{"just over one step", []float64{0.26}, 1},
		{"carry over between frames", []float64{0.2, 0.2, 0.2}, 2},
		{"big frame drains many", []float64{1.01}, 4},
		{"negative ignored", []float64{-1, 0.3}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAccumulator(0.25)
			steps := 0
			for _, f := range tc.frames {
				a.Add(f)
				steps += a.Drain(func(dt float64) {
					if dt != 0.25 {
						t.Errorf("step dt = %f, expected 0.25", dt)
					}
				})
			}
			if steps != tc.wantSteps {
				t.Errorf("steps = %d, expected %d", steps, tc.wantSteps)
			}
			if a.Pending() > a.Step() {
				t.Errorf("pending %f should never exceed one step after Drain", a.Pending())
			}
		})
	}
}

func TestAccumulatorStepCountIndependentOfFrameRate(t *testing.T) {
	step := 1.0 / 60

	run := func(frameRate float64) int {
		a := NewAccumulator(step)
		steps := 0
		frames := int(frameRate * 2)
		for i := 0; i < frames; i++ {
			a.Add(1 / frameRate)
			steps += a.Drain(func(float64) {})
		}
		return steps
	}

	slow, fast := run(30), run(144)
	if d := slow - fast; d < -1 || d > 1 {
		t.Errorf("step counts diverge across frame rates: 30fps=%d 144fps=%d", slow, fast)
	}
	if slow < 118 || slow > 120 {
		t.Errorf("2 seconds at 60Hz should be ~120 steps, got %d", slow)
	}
}

func TestAccumulatorReset(t *testing.T) {
	a := NewAccumulator(0.1)
	a.Add(0.05)
	a.Reset()
	if a.Pending() != 0 {
		t.Errorf("Pending() after Reset = %f", a.Pending())
	}
}
