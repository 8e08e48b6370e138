// Package render is the drawing boundary of the simulation.
// The core only ever talks to a Renderer; it never owns a display surface.
package render

import (
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
)

// Renderer draws boids and walls on some surface.
type Renderer interface {
	// DrawBoid draws a triangle at position pointing along heading.
	DrawBoid(position, heading geometry.Vector2D, radius float64)
	DrawSegment(p1, p2 geometry.Vector2D, clr color.RGBA, thickness float64)
	DrawCircle(center geometry.Vector2D, radius float64, clr color.RGBA, thickness float64)
	DrawPolygon(vertices []geometry.Vector2D, clr color.RGBA, thickness float64)
}

// Discard is a Renderer that draws nothing, handy for headless runs.
var Discard Renderer = discard{}

type discard struct{}

func (discard) DrawBoid(geometry.Vector2D, geometry.Vector2D, float64)                {}
func (discard) DrawSegment(geometry.Vector2D, geometry.Vector2D, color.RGBA, float64) {}
func (discard) DrawCircle(geometry.Vector2D, float64, color.RGBA, float64)           {}
func (discard) DrawPolygon([]geometry.Vector2D, color.RGBA, float64)                 {}

// Tail angle of the boid triangle relative to its head, in radians (160 degrees).
const tailAngle = 160 * math.Pi / 180

// BoidTriangle returns the head and the two tail vertices of a boid outline:
// the head sits radius away from position along heading and both tails are the
// head offset rotated by +/-160 degrees. A zero heading points along +X.
func BoidTriangle(position, heading geometry.Vector2D, radius float64) (head, leftTail, rightTail geometry.Vector2D) {
	dir := geometry.Vector2D{X: 1}
	if heading.LenSqr() > 0 {
		dir = heading.Normalize()
	}
	toHead := dir.Mul(radius)
	head = position.Add(toHead)
	leftTail = position.Add(toHead.Rotate(tailAngle))
	rightTail = position.Add(toHead.Rotate(-tailAngle))
	return head, leftTail, rightTail
}
