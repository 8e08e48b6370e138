package render

import (
	"image/color"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grey = color.RGBA{R: 100, G: 100, B: 100, A: 255}

func TestRecorder_FlushAndReplay(t *testing.T) {
	rec := NewRecorder()
	rec.DrawBoid(geometry.Vector2D{X: 1, Y: 2}, geometry.Vector2D{X: 1}, 5)
	rec.DrawSegment(geometry.Vector2D{}, geometry.Vector2D{X: 10}, grey, 2)
	rec.DrawCircle(geometry.Vector2D{X: 3, Y: 3}, 30, grey, 2)
	rec.DrawPolygon([]geometry.Vector2D{{X: 0}, {X: 1}, {Y: 1}}, grey, 1)

	require.Equal(t, 4, rec.Len())

	frame := rec.Flush(7, 3)
	assert.Equal(t, uint64(7), frame.Tick)
	assert.Equal(t, 1, frame.Boids)
	assert.Equal(t, 3, frame.Walls)
	assert.Equal(t, 0, rec.Len(), "flush must start a fresh recording")

	// a second recording must not alias the flushed frame
	rec.DrawBoid(geometry.Vector2D{X: 99}, geometry.Vector2D{X: 1}, 5)
	assert.Equal(t, 1.0, frame.Commands[0].Points[0].X)

	replayed := NewRecorder()
	Replay(frame, replayed)
	again := replayed.Flush(7, 3)
	assert.Equal(t, frame.Commands, again.Commands)

	kinds := make([]string, 0, len(again.Commands))
	for _, c := range again.Commands {
		kinds = append(kinds, c.Kind.String())
	}
	assert.Equal(t, []string{"boid", "segment", "circle", "polygon"}, kinds)
}

func TestRecorder_PolygonIsCopied(t *testing.T) {
	rec := NewRecorder()
	vertices := []geometry.Vector2D{{X: 0}, {X: 1}, {Y: 1}}
	rec.DrawPolygon(vertices, grey, 1)
	vertices[0] = geometry.Vector2D{X: 42}

	frame := rec.Flush(0, 1)
	assert.Equal(t, 0.0, frame.Commands[0].Points[0].X)
}

func TestBoidTriangle(t *testing.T) {
	head, left, right := BoidTriangle(geometry.Vector2D{X: 10, Y: 10}, geometry.Vector2D{X: 2}, 5)

	assert.True(t, head.Eq(geometry.Vector2D{X: 15, Y: 10}), "head = %v", head)
	// tails sit behind the position, mirrored across the heading axis
	assert.Less(t, left.X, 10.0)
	assert.Less(t, right.X, 10.0)
	assert.InDelta(t, left.X, right.X, geometry.Epsilon)
	assert.InDelta(t, 10-left.Y, right.Y-10, 1e-6)
	assert.InDelta(t, 5.0, left.DistanceTo(geometry.Vector2D{X: 10, Y: 10}), 1e-9)
}

func TestBoidTriangle_ZeroHeading(t *testing.T) {
	head, _, _ := BoidTriangle(geometry.Vector2D{}, geometry.Vector2D{}, 5)
	assert.True(t, head.Eq(geometry.Vector2D{X: 5}), "head = %v", head)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.DrawBoid(geometry.Vector2D{}, geometry.Vector2D{}, 1)
		Discard.DrawPolygon(nil, grey, 1)
	})
}
