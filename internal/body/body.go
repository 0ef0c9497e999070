package body

import "image/color"

// Body is a point mass participating in pairwise gravity. Name,
// RenderRadius, Color and Anchor are display metadata only; the
// physics reads nothing but Mass, Pos and Vel.
type Body struct {
	Name         string
	Mass         float64 // kg
	Pos          Vec     // m
	Vel          Vec     // m/s
	RenderRadius float64 // px, decoupled from physical size
	Color        color.RGBA
	Anchor       bool // central body whose own trail is not drawn
}

// Clone returns a copy sharing no state with the original.
func (b *Body) Clone() *Body {
	c := *b
	return &c
}
