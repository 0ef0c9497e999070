package physics

import (
	"math"

	"github.com/marek-sk/orbitsim/internal/body"
)

// Energy returns total mechanical energy: kinetic plus pairwise
// gravitational potential. Uses the same softening as the force law
// so drift measurements stay consistent.
func (g *Gravity) Energy(bodies []*body.Body) float64 {
	ke := 0.0
	pe := 0.0
	eps2 := g.Softening * g.Softening

	for i, b := range bodies {
		ke += 0.5 * b.Mass * (b.Vel.X*b.Vel.X + b.Vel.Y*b.Vel.Y)

		for j := i + 1; j < len(bodies); j++ {
			d := bodies[j].Pos.Sub(b.Pos)
			r := math.Sqrt(d.X*d.X + d.Y*d.Y + eps2)
			pe -= g.G * b.Mass * bodies[j].Mass / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum of the system.
func Momentum(bodies []*body.Body) body.Vec {
	var p body.Vec
	for _, b := range bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func AngularMomentum(bodies []*body.Body) float64 {
	L := 0.0
	for _, b := range bodies {
		L += b.Mass * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	}
	return L
}
