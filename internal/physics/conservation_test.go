package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/marek-sk/orbitsim/internal/body"
	"github.com/marek-sk/orbitsim/internal/physics"
)

// circularPair builds two bodies in a mutual circular orbit around
// their barycenter, for G=1.
func circularPair() []*body.Body {
	const m = 10.0
	const r = 50.0 // separation
	// v for each body orbiting the midpoint: v^2 = G*m / (4*(r/2))
	v := math.Sqrt(1.0 * m / (2 * r))
	return []*body.Body{
		{Name: "a", Mass: m, Pos: body.Vec{X: -r / 2, Y: 0}, Vel: body.Vec{X: 0, Y: -v}},
		{Name: "b", Mass: m, Pos: body.Vec{X: r / 2, Y: 0}, Vel: body.Vec{X: 0, Y: v}},
	}
}

var _ = Describe("Conservation laws", func() {
	var g *physics.Gravity
	var bodies []*body.Body

	BeforeEach(func() {
		g = &physics.Gravity{G: 1.0}
		bodies = circularPair()
	})

	It("conserves linear momentum over many steps", func() {
		p0 := physics.Momentum(bodies)
		for i := 0; i < 5000; i++ {
			g.Step(bodies, 0.05)
		}
		p := physics.Momentum(bodies)

		Expect(p.X).To(BeNumerically("~", p0.X, 1e-9))
		Expect(p.Y).To(BeNumerically("~", p0.Y, 1e-9))
	})

	It("conserves angular momentum over many steps", func() {
		l0 := physics.AngularMomentum(bodies)
		for i := 0; i < 5000; i++ {
			g.Step(bodies, 0.05)
		}
		l := physics.AngularMomentum(bodies)

		Expect(l).To(BeNumerically("~", l0, math.Abs(l0)*1e-3))
	})

	It("keeps energy drift bounded for a circular orbit", func() {
		e0 := g.Energy(bodies)
		maxDrift := 0.0
		for i := 0; i < 5000; i++ {
			g.Step(bodies, 0.05)
			drift := math.Abs(g.Energy(bodies)-e0) / math.Abs(e0)
			if drift > maxDrift {
				maxDrift = drift
			}
		}

		// Semi-implicit Euler oscillates around the true energy
		// instead of drifting monotonically.
		Expect(maxDrift).To(BeNumerically("<", 0.05))
	})

	It("keeps every state finite while bodies stay separated", func() {
		for i := 0; i < 5000; i++ {
			g.Step(bodies, 0.05)
		}
		for _, b := range bodies {
			Expect(b.Pos.IsValid()).To(BeTrue())
			Expect(b.Vel.IsValid()).To(BeTrue())
		}
	})
})
