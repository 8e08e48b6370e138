package simulation

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/wall"
)

// Wall types accepted in a scene.
const (
	WallSegment   = "segment"
	WallCircle    = "circle"
	WallRectangle = "rectangle"
	WallPolygon   = "polygon"
)

var ErrUnknownWallType = errors.New("unknown wall type")

// Build creates the wall described by wc, drawn in the default wall color.
func (wc WallConfig) Build() (wall.Wall, error) {
	var (
		w   wall.Wall
		err error
	)
	switch wc.Type {
	case WallSegment:
		w = wall.NewSegment(wc.X1, wc.Y1, wc.X2, wc.Y2, wall.DefaultColor, wall.DefaultThickness)
	case WallCircle:
		var c *wall.Circle
		c, err = wall.NewCircle(wc.X, wc.Y, wc.Radius, geometry.Vector2D{X: wc.VX, Y: wc.VY},
			wall.DefaultColor, wall.DefaultThickness)
		w = c
	case WallRectangle:
		var r *wall.Rectangle
		r, err = wall.NewRectangle(wc.X, wc.Y, wc.Width, wc.Height, wc.Angle,
			wall.DefaultColor, wall.DefaultCompositeThickness)
		w = r
	case WallPolygon:
		points := make([]geometry.Vector2D, len(wc.Points))
		for i, pt := range wc.Points {
			points[i] = geometry.Vector2D{X: pt[0], Y: pt[1]}
		}
		var p *wall.Polygon
		p, err = wall.NewPolygon(points, wall.DefaultColor, wall.DefaultCompositeThickness)
		w = p
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownWallType, wc.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("%s wall: %w", wc.Type, err)
	}
	return w, nil
}

// SpawnPoint is where the initial boids appear.
func (c *Config) SpawnPoint() geometry.Vector2D {
	p := geometry.Vector2D{X: c.SpawnX, Y: c.SpawnY}
	if p.X < 0 {
		p.X = c.WorldWidth / 2
	}
	if p.Y < 0 {
		p.Y = c.WorldHeight / 2
	}
	return p
}

// NewRand returns the random source of the scene, seeded by cfg.Seed when set.
func (c *Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// BuildFlock creates the flock of the scene: walls in config order, then
// NumBoids boids at the spawn point with a random heading each.
func BuildFlock(cfg *Config, logger *zap.Logger, rng *rand.Rand) (*Flock, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = cfg.NewRand()
	}
	f := NewFlock(geometry.NewBounds(cfg.WorldWidth, cfg.WorldHeight), WithLogger(logger))

	for i, wc := range cfg.Walls {
		w, err := wc.Build()
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		f.AddWall(w)
	}

	spawn := cfg.SpawnPoint()
	for i := 0; i < cfg.NumBoids; i++ {
		f.appendBoid(behavior.New(spawn, cfg.Boid, rng))
	}

	logger.Info("scene built",
		zap.Int("boids", len(f.Boids())),
		zap.Int("walls", len(f.Walls())),
		zap.Float64("width", cfg.WorldWidth),
		zap.Float64("height", cfg.WorldHeight))
	return f, nil
}
