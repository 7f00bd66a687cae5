package clock

// Accumulator drains variable frame time into fixed-size simulation steps.
// Leftover time smaller than one step carries over to the next frame.
type Accumulator struct {
	step float64
	acc  float64
}

// NewAccumulator creates an accumulator producing steps of the given size in seconds.
func NewAccumulator(step float64) *Accumulator {
	return &Accumulator{step: step}
}

// Step returns the fixed step size in seconds.
func (a *Accumulator) Step() float64 {
	return a.step
}

// Pending returns the carried-over time not yet consumed by a step.
func (a *Accumulator) Pending() float64 {
	return a.acc
}

// Add banks elapsed seconds. Negative values are ignored.
func (a *Accumulator) Add(elapsed float64) {
	if elapsed > 0 {
		a.acc += elapsed
	}
}

// Drain calls fn once per whole step while the banked time strictly exceeds
// one step, and returns the number of steps taken.
func (a *Accumulator) Drain(fn func(dt float64)) int {
	if a.step <= 0 {
		return 0
	}
	n := 0
	for a.acc > a.step {
		a.acc -= a.step
		fn(a.step)
		n++
	}
	return n
}

// Reset discards banked time.
func (a *Accumulator) Reset() {
	a.acc = 0
}
