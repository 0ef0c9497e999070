package body

import "fmt"

// Registry is the ordered set of simulated bodies. Order is insertion
// order and never changes; it only affects the accumulation order of
// floating-point sums, not physical correctness. Bodies are added
// before the simulation loop starts and never removed.
type Registry struct {
	bodies  []*Body
	initial []Body
}

func NewRegistry() *Registry {
	return &Registry{
		bodies:  make([]*Body, 0, 8),
		initial: make([]Body, 0, 8),
	}
}

// Add appends a body and records its initial state for Reset.
func (r *Registry) Add(b *Body) {
	r.bodies = append(r.bodies, b)
	r.initial = append(r.initial, *b)
}

func (r *Registry) Bodies() []*Body { return r.bodies }

func (r *Registry) Len() int { return len(r.bodies) }

// Validate fails fast on configurations the integrator cannot handle:
// non-positive masses and distinct bodies at the same exact position
// (zero separation makes the force term divide by zero).
func (r *Registry) Validate() error {
	for i, b := range r.bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("body %q: mass must be positive, got %g", b.Name, b.Mass)
		}
		for j := i + 1; j < len(r.bodies); j++ {
			o := r.bodies[j]
			if b.Pos == o.Pos {
				return fmt.Errorf("bodies %q and %q share initial position (%g, %g)",
					b.Name, o.Name, b.Pos.X, b.Pos.Y)
			}
		}
	}
	return nil
}

// Reset restores every body to the state it was added with.
func (r *Registry) Reset() {
	for i := range r.bodies {
		*r.bodies[i] = r.initial[i]
	}
}
