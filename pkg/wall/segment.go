package wall

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

// Segment is a static straight wall from P1 to P2.
type Segment struct {
	P1, P2    geometry.Vector2D
	Color     color.RGBA
	Thickness float64
}

var _ Wall = (*Segment)(nil)

// NewSegment creates a wall spanning (x1, y1) to (x2, y2).
func NewSegment(x1, y1, x2, y2 float64, clr color.RGBA, thickness float64) *Segment {
	return &Segment{
		P1:        geometry.Vector2D{X: x1, Y: y1},
		P2:        geometry.Vector2D{X: x2, Y: y2},
		Color:     clr,
		Thickness: thickness,
	}
}

// Update renders the segment, it never moves.
func (s *Segment) Update(_ float64, _ geometry.Bounds, r render.Renderer) {
	s.Render(r)
}

func (s *Segment) Render(r render.Renderer) {
	r.DrawSegment(s.P1, s.P2, s.Color, s.Thickness)
}

// Hit splits direction into its components along and across the segment.
// The across component n is the direction the ray closes in on the line, the
// hit is at t = (P1-origin).n / direction.n and the returned normal is -n so it
// faces the incoming ray.
func (s *Segment) Hit(origin, direction geometry.Vector2D, rec HitRecord) HitRecord {
	wallVec := s.P2.Sub(s.P1)
	if wallVec.LenSqr() == 0 {
		return rec
	}
	wallLen := wallVec.Len()
	wallDir := wallVec.Normalize()

	n := direction.Sub(direction.Project(wallDir))
	if n.LenSqr() == 0 {
		// parallel, never crosses the line
		return rec
	}
	n = n.Normalize()

	t := s.P1.Sub(origin).Dot(n) / direction.Dot(n)
	if !(t > 0 && t < rec.Distance) {
		return rec
	}

	hitPos := origin.Add(direction.Mul(t))
	u := hitPos.Sub(s.P1).Dot(wallDir) / wallLen
	if u < 0 || u > 1 {
		return rec
	}

	return HitRecord{Distance: t, Normal: n.Neg(), Hit: true}
}
