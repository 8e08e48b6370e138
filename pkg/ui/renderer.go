package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

var (
	BackgroundColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	BoidColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const boidStroke = 1

// ScreenRenderer draws on an ebiten image. Boids are white outlined
// triangles pointing along their heading.
type ScreenRenderer struct {
	screen *ebiten.Image
}

var _ render.Renderer = (*ScreenRenderer)(nil)

func NewScreenRenderer(screen *ebiten.Image) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

func (s *ScreenRenderer) DrawBoid(position, heading geometry.Vector2D, radius float64) {
	head, left, right := render.BoidTriangle(position, heading, radius)
	s.line(head, left, boidStroke, BoidColor)
	s.line(left, right, boidStroke, BoidColor)
	s.line(right, head, boidStroke, BoidColor)
}

func (s *ScreenRenderer) DrawSegment(p1, p2 geometry.Vector2D, clr color.RGBA, thickness float64) {
	s.line(p1, p2, thickness, clr)
}

func (s *ScreenRenderer) DrawCircle(center geometry.Vector2D, radius float64, clr color.RGBA, thickness float64) {
	vector.StrokeCircle(s.screen,
		float32(center.X), float32(center.Y), float32(radius),
		float32(thickness), clr, true)
}

// DrawPolygon closes the loop from the last vertex back to the first.
func (s *ScreenRenderer) DrawPolygon(vertices []geometry.Vector2D, clr color.RGBA, thickness float64) {
	n := len(vertices)
	for i := 0; i < n; i++ {
		s.line(vertices[i], vertices[(i+1)%n], thickness, clr)
	}
}

func (s *ScreenRenderer) line(p1, p2 geometry.Vector2D, thickness float64, clr color.RGBA) {
	vector.StrokeLine(s.screen,
		float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y),
		float32(thickness), clr, true)
}
