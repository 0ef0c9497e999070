package screen

import "github.com/marek-sk/orbitsim/internal/body"

// MaxTrailPoints bounds each orbit trail; the oldest point is dropped
// once the bound is reached.
const MaxTrailPoints = 2000

// Trail is the ordered sequence of a body's past projected positions.
// It is append-only during a run; toggling orbit display off merely
// stops appends and never clears what was recorded.
type Trail struct {
	points []Point
}

func (t *Trail) Append(p Point) {
	if len(t.points) >= MaxTrailPoints {
		copy(t.points, t.points[1:])
		t.points = t.points[:len(t.points)-1]
	}
	t.points = append(t.points, p)
}

func (t *Trail) Points() []Point { return t.points }

func (t *Trail) Len() int { return len(t.points) }

func (t *Trail) Reset() { t.points = t.points[:0] }

// TrailSet holds one trail per registry slot, in registry order.
type TrailSet struct {
	trails []*Trail
}

func NewTrailSet(n int) *TrailSet {
	s := &TrailSet{trails: make([]*Trail, n)}
	for i := range s.trails {
		s.trails[i] = &Trail{}
	}
	return s
}

// Extend projects each body's current position and appends it to the
// body's trail. Callers invoke this only while orbit display is
// enabled; skipping the call is what "trails are not extended" means.
func (s *TrailSet) Extend(proj Projector, bodies []*body.Body) {
	for i, b := range bodies {
		s.trails[i].Append(proj.Project(b.Pos))
	}
}

func (s *TrailSet) Trail(i int) *Trail { return s.trails[i] }

func (s *TrailSet) Len() int { return len(s.trails) }

func (s *TrailSet) Reset() {
	for _, t := range s.trails {
		t.Reset()
	}
}
