// Package screen maps simulation-space coordinates (meters, y up) to
// display-space coordinates (pixels, y down) and keeps per-body orbit
// trails of previously projected points.
package screen

import "github.com/marek-sk/orbitsim/internal/body"

// Point is a display-space coordinate in pixels.
type Point struct {
	X, Y float64
}

// Projector is the fixed affine mapping from simulation space to the
// viewport: screen = origin + pos*Scale. Scale and Origin are
// constants for a run. The y axis is negated when FlipY is set,
// because display y grows downward while simulated y grows upward;
// that convention lives here and nowhere else.
type Projector struct {
	Scale  float64 // px per meter
	Origin Point
	FlipY  bool
}

// NewProjector centers the origin in a viewport of the given pixel size.
func NewProjector(width, height int, scale float64) Projector {
	return Projector{
		Scale:  scale,
		Origin: Point{float64(width) / 2, float64(height) / 2},
		FlipY:  true,
	}
}

func (p Projector) Project(pos body.Vec) Point {
	y := pos.Y * p.Scale
	if p.FlipY {
		y = -y
	}
	return Point{
		X: p.Origin.X + pos.X*p.Scale,
		Y: p.Origin.Y + y,
	}
}
