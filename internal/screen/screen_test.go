package screen

import (
	"math"
	"testing"

	"github.com/marek-sk/orbitsim/internal/body"
)

func TestProjectCentersOrigin(t *testing.T) {
	p := NewProjector(800, 800, 1.0)

	got := p.Project(body.Vec{X: 0, Y: 0})
	if got != (Point{400, 400}) {
		t.Errorf("origin should project to viewport center, got %v", got)
	}
}

func TestProjectFlipsY(t *testing.T) {
	p := NewProjector(800, 800, 1.0)

	// Simulated +y is up; display +y is down.
	got := p.Project(body.Vec{X: 0, Y: 100})
	if got.Y >= 400 {
		t.Errorf("positive simulated y should project above center, got %v", got)
	}

	p.FlipY = false
	got = p.Project(body.Vec{X: 0, Y: 100})
	if got.Y != 500 {
		t.Errorf("without flip, expected y=500, got %v", got)
	}
}

// Doubling the scale exactly doubles projected displacement from the
// origin for any position.
func TestProjectScaleLinearity(t *testing.T) {
	// Displacements must stay well above one ULP of the 400 px origin,
	// or subtracting the origin back out cancels them to noise.
	positions := []body.Vec{
		{X: 1.496e11, Y: 0},
		{X: -3.844e8, Y: 2.5e10},
		{X: 1e7, Y: -2e7},
	}

	p1 := NewProjector(800, 800, 2e-9)
	p2 := NewProjector(800, 800, 4e-9)

	for _, pos := range positions {
		a := p1.Project(pos)
		b := p2.Project(pos)

		dx1, dy1 := a.X-p1.Origin.X, a.Y-p1.Origin.Y
		dx2, dy2 := b.X-p2.Origin.X, b.Y-p2.Origin.Y

		if math.Abs(dx2-2*dx1) > 1e-9*math.Abs(dx1) || math.Abs(dy2-2*dy1) > 1e-9*math.Abs(dy1) {
			t.Errorf("pos %v: displacement (%g,%g) vs (%g,%g) not doubled", pos, dx1, dy1, dx2, dy2)
		}
	}
}

func TestTrailBound(t *testing.T) {
	var tr Trail
	for i := 0; i < MaxTrailPoints+100; i++ {
		tr.Append(Point{float64(i), 0})
	}

	if tr.Len() != MaxTrailPoints {
		t.Fatalf("expected %d points, got %d", MaxTrailPoints, tr.Len())
	}
	// Oldest points dropped, order preserved.
	if tr.Points()[0].X != 100 {
		t.Errorf("expected oldest surviving point x=100, got %g", tr.Points()[0].X)
	}
	if tr.Points()[tr.Len()-1].X != float64(MaxTrailPoints+99) {
		t.Errorf("expected newest point x=%d, got %g", MaxTrailPoints+99, tr.Points()[tr.Len()-1].X)
	}
}

// Disabling orbit display stops appends but keeps recorded points;
// re-enabling resumes without backfill.
func TestTrailToggleSemantics(t *testing.T) {
	proj := NewProjector(100, 100, 1.0)
	bodies := []*body.Body{{Name: "a", Mass: 1}}
	set := NewTrailSet(1)

	visible := true
	advance := func(x float64) {
		bodies[0].Pos = body.Vec{X: x, Y: 0}
		if visible {
			set.Extend(proj, bodies)
		}
	}

	advance(1)
	advance(2)
	visible = false
	advance(3)
	advance(4)
	visible = true
	advance(5)

	tr := set.Trail(0)
	if tr.Len() != 3 {
		t.Fatalf("expected 3 points, got %d", tr.Len())
	}
	xs := []float64{tr.Points()[0].X, tr.Points()[1].X, tr.Points()[2].X}
	want := []float64{51, 52, 55}
	for i := range xs {
		if xs[i] != want[i] {
			t.Errorf("point %d: expected x=%g, got %g", i, want[i], xs[i])
		}
	}
}

func TestTrailSetReset(t *testing.T) {
	set := NewTrailSet(2)
	set.Trail(0).Append(Point{1, 1})
	set.Trail(1).Append(Point{2, 2})

	set.Reset()

	for i := 0; i < set.Len(); i++ {
		if set.Trail(i).Len() != 0 {
			t.Errorf("trail %d not cleared", i)
		}
	}
}
