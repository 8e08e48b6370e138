package wall

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

// Rectangle is four segments. It keeps no geometry besides its edges.
type Rectangle struct {
	edges []*Segment
}

var _ Wall = (*Rectangle)(nil)

// NewRectangle builds a rectangle anchored at (x, y), w long along the x axis
// rotated by angle degrees and h long along the matching y axis.
func NewRectangle(x, y, w, h, angle float64, clr color.RGBA, thickness float64) (*Rectangle, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rectangle %vx%v: %w", w, h, ErrInvalidSize)
	}
	rad := geometry.Radians(angle)
	xAxis := geometry.Vector2D{X: math.Cos(rad), Y: math.Sin(rad)}
	yAxis := geometry.Vector2D{X: -math.Sin(rad), Y: math.Cos(rad)}

	c1 := geometry.Vector2D{X: x, Y: y}
	c2 := c1.Add(xAxis.Mul(w))
	c3 := c1.Add(yAxis.Mul(h))
	c4 := c3.Add(xAxis.Mul(w))

	// two edges leave the anchor, the other two meet at the far corner
	return &Rectangle{edges: []*Segment{
		NewSegment(c1.X, c1.Y, c2.X, c2.Y, clr, thickness),
		NewSegment(c1.X, c1.Y, c3.X, c3.Y, clr, thickness),
		NewSegment(c2.X, c2.Y, c4.X, c4.Y, clr, thickness),
		NewSegment(c3.X, c3.Y, c4.X, c4.Y, clr, thickness),
	}}, nil
}

// Edges returns the boundary segments.
func (r *Rectangle) Edges() []*Segment {
	return r.edges
}

// Corners returns the anchor, the corner along width, the corner along height
// and the far corner, read back from the edges.
func (r *Rectangle) Corners() [4]geometry.Vector2D {
	return [4]geometry.Vector2D{r.edges[0].P1, r.edges[0].P2, r.edges[1].P2, r.edges[3].P2}
}

func (r *Rectangle) Update(dt float64, bounds geometry.Bounds, rnd render.Renderer) {
	for _, e := range r.edges {
		e.Update(dt, bounds, rnd)
	}
}

func (r *Rectangle) Render(rnd render.Renderer) {
	for _, e := range r.edges {
		e.Render(rnd)
	}
}

func (r *Rectangle) Hit(origin, direction geometry.Vector2D, rec HitRecord) HitRecord {
	return foldSegments(r.edges, origin, direction, rec)
}

// Polygon is a closed loop of segments, edge i joins vertex i to vertex i+1 mod N.
type Polygon struct {
	edges     []*Segment
	color     color.RGBA
	thickness float64
}

var _ Wall = (*Polygon)(nil)

// NewPolygon closes points into a loop. Less than 3 points is rejected.
func NewPolygon(points []geometry.Vector2D, clr color.RGBA, thickness float64) (*Polygon, error) {
	n := len(points)
	if n < 3 {
		return nil, fmt.Errorf("got %d: %w", n, ErrTooFewVertices)
	}
	edges := make([]*Segment, 0, n)
	for i := range points {
		p1, p2 := points[i], points[(i+1)%n]
		edges = append(edges, NewSegment(p1.X, p1.Y, p2.X, p2.Y, clr, thickness))
	}
	return &Polygon{edges: edges, color: clr, thickness: thickness}, nil
}

// Edges returns the boundary segments in vertex order.
func (p *Polygon) Edges() []*Segment {
	return p.edges
}

// Vertices returns the start point of every edge.
func (p *Polygon) Vertices() []geometry.Vector2D {
	vs := make([]geometry.Vector2D, len(p.edges))
	for i, e := range p.edges {
		vs[i] = e.P1
	}
	return vs
}

// Update renders the polygon, it never moves.
func (p *Polygon) Update(_ float64, _ geometry.Bounds, r render.Renderer) {
	p.Render(r)
}

// Render draws the outline in one call instead of one line per edge.
func (p *Polygon) Render(r render.Renderer) {
	r.DrawPolygon(p.Vertices(), p.color, p.thickness)
}

func (p *Polygon) Hit(origin, direction geometry.Vector2D, rec HitRecord) HitRecord {
	return foldSegments(p.edges, origin, direction, rec)
}
