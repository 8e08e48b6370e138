package render

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
)

// Kind identifies a recorded draw call.
type Kind int

const (
	KindBoid Kind = iota
	KindSegment
	KindCircle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindBoid:
		return "boid"
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Command is one draw call captured by a Recorder.
//
//	boid:    Points = [position, heading], Radius
//	segment: Points = [p1, p2]
//	circle:  Points = [center], Radius
//	polygon: Points = vertices
type Command struct {
	Kind      Kind
	Points    []geometry.Vector2D
	Radius    float64
	Color     color.RGBA
	Thickness float64
}

// Frame is everything drawn during one simulation tick.
// Once handed out by a Recorder it is never mutated again.
type Frame struct {
	Tick     uint64
	Boids    int
	Walls    int
	Commands []Command
}

// Recorder is a Renderer that stores draw calls so they can be replayed later,
// typically on the UI goroutine.
type Recorder struct {
	commands []Command
	boids    int
}

var _ Renderer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawBoid(position, heading geometry.Vector2D, radius float64) {
	r.boids++
	r.commands = append(r.commands, Command{
		Kind:   KindBoid,
		Points: []geometry.Vector2D{position, heading},
		Radius: radius,
	})
}

func (r *Recorder) DrawSegment(p1, p2 geometry.Vector2D, clr color.RGBA, thickness float64) {
	r.commands = append(r.commands, Command{
		Kind:      KindSegment,
		Points:    []geometry.Vector2D{p1, p2},
		Color:     clr,
		Thickness: thickness,
	})
}

func (r *Recorder) DrawCircle(center geometry.Vector2D, radius float64, clr color.RGBA, thickness float64) {
	r.commands = append(r.commands, Command{
		Kind:      KindCircle,
		Points:    []geometry.Vector2D{center},
		Radius:    radius,
		Color:     clr,
		Thickness: thickness,
	})
}

func (r *Recorder) DrawPolygon(vertices []geometry.Vector2D, clr color.RGBA, thickness float64) {
	pts := make([]geometry.Vector2D, len(vertices))
	copy(pts, vertices)
	r.commands = append(r.commands, Command{
		Kind:      KindPolygon,
		Points:    pts,
		Color:     clr,
		Thickness: thickness,
	})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Flush returns the recorded commands as a Frame and starts a fresh recording.
// The returned frame does not share memory with later recordings.
func (r *Recorder) Flush(tick uint64, walls int) Frame {
	f := Frame{
		Tick:     tick,
		Boids:    r.boids,
		Walls:    walls,
		Commands: r.commands,
	}
	r.commands = make([]Command, 0, len(f.Commands))
	r.boids = 0
	return f
}

// Replay issues every command of f on dst, in recording order.
func Replay(f Frame, dst Renderer) {
	for _, c := range f.Commands {
		switch c.Kind {
		case KindBoid:
			dst.DrawBoid(c.Points[0], c.Points[1], c.Radius)
		case KindSegment:
			dst.DrawSegment(c.Points[0], c.Points[1], c.Color, c.Thickness)
		case KindCircle:
			dst.DrawCircle(c.Points[0], c.Radius, c.Color, c.Thickness)
		case KindPolygon:
			dst.DrawPolygon(c.Points, c.Color, c.Thickness)
		}
	}
}
