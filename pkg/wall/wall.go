// Package wall holds the obstacles boids steer around. Every wall answers one
// ray query: where, if anywhere, does origin + t*direction first hit it.
package wall

import (
	"errors"
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

var (
	// ErrTooFewVertices is returned when a polygon has less than 3 points.
	ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")
	// ErrInvalidSize is returned for non positive rectangle or circle dimensions.
	ErrInvalidSize = errors.New("wall dimensions must be positive")
)

// DefaultColor is the grey used by every wall unless told otherwise.
var DefaultColor = color.RGBA{R: 100, G: 100, B: 100, A: 255}

const (
	DefaultThickness          = 2.0
	DefaultCompositeThickness = 1.0
)

// Wall is a static or moving obstacle.
type Wall interface {
	// Update advances any motion by dt inside bounds, then renders the wall.
	Update(dt float64, bounds geometry.Bounds, r render.Renderer)
	Render(r render.Renderer)
	// Hit returns the nearest intersection of the ray origin + t*direction that
	// is closer than rec.Distance, or rec unchanged when there is none.
	Hit(origin, direction geometry.Vector2D, rec HitRecord) HitRecord
}

// HitRecord is the running "nearest hit so far" of a ray cast.
type HitRecord struct {
	// Distance is the ray parameter of the nearest hit, or the look-ahead cap.
	Distance float64
	// Normal is the surface normal at the hit, only meaningful when Hit is set.
	Normal geometry.Vector2D
	Hit    bool
}

// NewHitRecord starts a cast that ignores anything farther than lookahead.
func NewHitRecord(lookahead float64) HitRecord {
	return HitRecord{Distance: lookahead}
}

// Cast folds Hit over walls from left to right. Every Hit only replaces the
// record with a strictly nearer intersection, so the result does not depend on
// the order of walls except that on exact ties the earlier wall wins.
func Cast(walls []Wall, origin, direction geometry.Vector2D, lookahead float64) HitRecord {
	rec := NewHitRecord(lookahead)
	for _, w := range walls {
		rec = w.Hit(origin, direction, rec)
	}
	return rec
}

// foldSegments is Cast for the edges of a composite wall, starting from rec.
func foldSegments(edges []*Segment, origin, direction geometry.Vector2D, rec HitRecord) HitRecord {
	for _, e := range edges {
		rec = e.Hit(origin, direction, rec)
	}
	return rec
}
