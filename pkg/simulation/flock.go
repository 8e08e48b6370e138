package simulation

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/wall"
)

// statsEvery is how many ticks pass between two debug lines of the flock.
const statsEvery = 600

// Flock owns every boid and every wall of a world and is the only thing that
// mutates them.
type Flock struct {
	bounds geometry.Bounds
	boids  []*behavior.Boid
	walls  []wall.Wall
	logger *zap.Logger
	tick   uint64
}

// FlockOption configures a Flock.
type FlockOption func(*Flock)

// WithLogger sets the logger, the default is a no-op logger.
func WithLogger(l *zap.Logger) FlockOption {
	return func(f *Flock) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFlock creates an empty flock living in bounds.
func NewFlock(bounds geometry.Bounds, opts ...FlockOption) *Flock {
	f := &Flock{
		bounds: bounds,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddBoid appends b, it will be updated after every boid already there.
func (f *Flock) AddBoid(b *behavior.Boid) {
	f.appendBoid(b)
	f.logger.Debug("boid added",
		zap.Stringer("id", b.ID),
		zap.Stringer("position", b.Position),
		zap.Int("boids", len(f.boids)))
}

// appendBoid is AddBoid without the log line, for bulk spawns.
func (f *Flock) appendBoid(b *behavior.Boid) {
	f.boids = append(f.boids, b)
}

// AddWall appends w.
func (f *Flock) AddWall(w wall.Wall) {
	f.walls = append(f.walls, w)
}

// RemoveBoid drops the boid with the given id, keeping the order of the others.
// It reports whether a boid was removed.
func (f *Flock) RemoveBoid(id uuid.UUID) bool {
	for i, b := range f.boids {
		if b.ID == id {
			f.boids = append(f.boids[:i], f.boids[i+1:]...)
			f.logger.Debug("boid removed", zap.Stringer("id", id), zap.Int("boids", len(f.boids)))
			return true
		}
	}
	return false
}

// Boids returns the boids in update order. The slice must not be modified.
func (f *Flock) Boids() []*behavior.Boid {
	return f.boids
}

// Walls returns the walls in update order. The slice must not be modified.
func (f *Flock) Walls() []wall.Wall {
	return f.walls
}

func (f *Flock) Bounds() geometry.Bounds {
	return f.bounds
}

// Tick is the number of completed Run calls.
func (f *Flock) Tick() uint64 {
	return f.tick
}

// Run advances the world by dt.
//
// Boids are updated one after the other in insertion order and each one reads
// the live flock: a boid late in the order sees the positions its predecessors
// already committed this tick. This sequential fold is intended, changing it to
// a read-all-then-write-all step changes how the flock moves. Walls are updated
// once every boid is done.
func (f *Flock) Run(dt float64, r render.Renderer) {
	for _, b := range f.boids {
		b.Run(f.boids, f.walls, dt, f.bounds, r)
	}
	for _, w := range f.walls {
		w.Update(dt, f.bounds, r)
	}
	f.tick++

	if f.tick%statsEvery == 0 {
		f.logger.Debug("flock stats",
			zap.Uint64("tick", f.tick),
			zap.Int("boids", len(f.boids)),
			zap.Int("walls", len(f.walls)),
			zap.Float64("dt", dt))
	}
}
