package wall

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

// Circle is a round wall that drifts with Velocity and wraps at the world borders.
type Circle struct {
	Center    geometry.Vector2D
	Radius    float64
	Velocity  geometry.Vector2D
	Color     color.RGBA
	Thickness float64
}

var _ Wall = (*Circle)(nil)

// NewCircle creates a circle of radius r centered on (x, y) moving with velocity.
func NewCircle(x, y, r float64, velocity geometry.Vector2D, clr color.RGBA, thickness float64) (*Circle, error) {
	if r <= 0 {
		return nil, fmt.Errorf("circle radius %v: %w", r, ErrInvalidSize)
	}
	return &Circle{
		Center:    geometry.Vector2D{X: x, Y: y},
		Radius:    r,
		Velocity:  velocity,
		Color:     clr,
		Thickness: thickness,
	}, nil
}

// Update moves the center by Velocity*dt, wraps it into bounds and renders.
func (c *Circle) Update(dt float64, bounds geometry.Bounds, r render.Renderer) {
	c.Center = bounds.Wrap(c.Center.Add(c.Velocity.Mul(dt)))
	c.Render(r)
}

func (c *Circle) Render(r render.Renderer) {
	r.DrawCircle(c.Center, c.Radius, c.Color, c.Thickness)
}

// Hit solves |origin + t*direction - Center| = Radius.
// The entry root wins when it lies ahead of the origin; a ray that starts inside
// the circle falls back to the exit root. The normal points from the center to
// the hit point.
func (c *Circle) Hit(origin, direction geometry.Vector2D, rec HitRecord) HitRecord {
	a := direction.Dot(direction)
	if a == 0 {
		return rec
	}
	toOrigin := origin.Sub(c.Center)
	b := 2 * direction.Dot(toOrigin)
	cc := toOrigin.LenSqr() - c.Radius*c.Radius

	delta := b*b - 4*a*cc
	if delta < 0 {
		return rec
	}
	sq := math.Sqrt(delta)
	tPlus := (-b + sq) / (2 * a)
	tMinus := (-b - sq) / (2 * a)

	switch {
	case tMinus > 0:
		if tMinus < rec.Distance {
			return c.record(origin, direction, tMinus)
		}
	case tPlus > 0 && tPlus < rec.Distance:
		return c.record(origin, direction, tPlus)
	}
	return rec
}

func (c *Circle) record(origin, direction geometry.Vector2D, t float64) HitRecord {
	hitPos := origin.Add(direction.Mul(t))
	return HitRecord{
		Distance: t,
		Normal:   hitPos.Sub(c.Center).Normalize(),
		Hit:      true,
	}
}
