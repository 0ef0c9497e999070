package sim

// Clock counts completed physics ticks. Physics uses the fixed dt
// directly; the clock exists only to derive elapsed simulated time
// for display.
type Clock struct {
	steps int64
}

func (c *Clock) Tick() { c.steps++ }

func (c *Clock) Steps() int64 { return c.steps }

// Elapsed returns simulated seconds after steps ticks of dt each.
func (c *Clock) Elapsed(dt float64) float64 {
	return float64(c.steps) * dt
}

func (c *Clock) Reset() { c.steps = 0 }
