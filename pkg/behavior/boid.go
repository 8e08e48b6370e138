package behavior

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/wall"
)

// Rule weights and wall avoidance tuning. Avoidance is applied five times
// stronger than any flocking rule so a boid heading into a wall always turns.
const (
	SeparationWeight = 1.5
	AlignmentWeight  = 1.0
	CohesionWeight   = 1.0

	LookAhead         = 200.0
	AvoidanceWeight   = 5.0
	AvoidanceForwards = 0.5
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
type Boid struct {
	ID           uuid.UUID
	Position     geometry.Vector2D
	Velocity     geometry.Vector2D
	Acceleration geometry.Vector2D
	Params
}

// Params controls the physics constants of one boid.
type Params struct {
	Radius            float64 `json:"radius"`            // drawing size
	DesiredSeparation float64 `json:"desiredSeparation"` // personal space radius
	NeighborDistance  float64 `json:"neighborDistance"`  // how far can they see?
	MaxSpeed          float64 `json:"maxSpeed"`
	MaxForce          float64 `json:"maxForce"`
	Mass              float64 `json:"mass"`
}

// DefaultParams are the classic Reynolds/Shiffman values.
func DefaultParams() Params {
	return Params{
		Radius:            5,
		DesiredSeparation: 50,
		NeighborDistance:  100,
		MaxSpeed:          2,
		MaxForce:          0.03,
		Mass:              1,
	}
}

// New creates a boid at position with a random heading and a speed of 1.
// A nil rng falls back to the global source.
func New(position geometry.Vector2D, p Params, rng *rand.Rand) *Boid {
	var angle float64
	if rng != nil {
		angle = rng.Float64() * 2 * math.Pi
	} else {
		angle = rand.Float64() * 2 * math.Pi
	}
	return &Boid{
		ID:       uuid.New(),
		Position: position,
		Velocity: geometry.Vector2D{X: math.Cos(angle), Y: math.Sin(angle)},
		Params:   p,
	}
}

// Run is the full per tick pipeline: flocking, wall avoidance, integration,
// border wrap and render. flock is read as is, so boids earlier in the slice
// have already moved this tick when a later boid looks at them.
func (b *Boid) Run(flock []*Boid, walls []wall.Wall, dt float64, bounds geometry.Bounds, r render.Renderer) {
	b.Flock(flock)
	b.AvoidWalls(walls)
	b.Integrate(dt)
	b.Wrap(bounds)
	b.Render(r)
}

// ApplyForce accumulates force/mass into the acceleration.
func (b *Boid) ApplyForce(force geometry.Vector2D) {
	b.Acceleration = b.Acceleration.Add(force.Mul(1 / b.Mass))
}

// Integrate advances velocity and position by dt, caps the speed at MaxSpeed
// and clears the acceleration.
func (b *Boid) Integrate(dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Mul(dt))
	if b.Velocity.LenSqr() > 0 {
		b.Velocity = b.Velocity.ClampLen(b.MaxSpeed)
	}
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
	b.Acceleration = geometry.Zero
}

// Wrap keeps the boid inside the toroidal world.
func (b *Boid) Wrap(bounds geometry.Bounds) {
	b.Position = bounds.Wrap(b.Position)
}

func (b *Boid) Render(r render.Renderer) {
	r.DrawBoid(b.Position, b.Velocity, b.Radius)
}

// ---------------------------------------------------------------------
// Walls
// ---------------------------------------------------------------------

// AvoidWalls casts a ray of LookAhead along the heading. On a hit the boid
// steers towards normal*MaxSpeed plus half its forward speed, five times
// harder than any flocking rule. A boid at rest has no heading and skips this.
func (b *Boid) AvoidWalls(walls []wall.Wall) {
	if b.Velocity.LenSqr() == 0 {
		return
	}
	dir := b.Velocity.Normalize()

	rec := wall.Cast(walls, b.Position, dir, LookAhead)
	if !rec.Hit {
		return
	}

	desired := rec.Normal.Mul(b.MaxSpeed).Add(dir.Mul(AvoidanceForwards * b.MaxSpeed))
	steer := desired.Sub(b.Velocity).ClampLen(b.MaxForce)
	b.ApplyForce(steer.Mul(AvoidanceWeight))
}

// ---------------------------------------------------------------------
// Flocking
// ---------------------------------------------------------------------

// Flock applies separation, alignment and cohesion, in that order.
func (b *Boid) Flock(flock []*Boid) {
	sep := b.Separate(flock).Mul(SeparationWeight) // avoid crowding flockmates
	ali := b.Align(flock).Mul(AlignmentWeight)     // match their heading
	coh := b.Cohere(flock).Mul(CohesionWeight)     // stay with the group

	b.ApplyForce(sep)
	b.ApplyForce(ali)
	b.ApplyForce(coh)
}

// Separate sums (self-other)/d^2 over every flockmate closer than
// DesiredSeparation, so the nearest ones push hardest.
func (b *Boid) Separate(flock []*Boid) geometry.Vector2D {
	desired := geometry.Zero
	for _, other := range flock {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < b.DesiredSeparation {
			desired = desired.Add(b.Position.Sub(other.Position).Mul(1 / (d * d)))
		}
	}
	return b.Steer(desired)
}

// Align sums the velocities of the flockmates within NeighborDistance.
func (b *Boid) Align(flock []*Boid) geometry.Vector2D {
	desired := geometry.Zero
	for _, other := range flock {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < b.NeighborDistance {
			desired = desired.Add(other.Velocity)
		}
	}
	return b.Steer(desired)
}

// Cohere steers towards the average position of the flockmates within
// NeighborDistance. No neighbors means no force.
func (b *Boid) Cohere(flock []*Boid) geometry.Vector2D {
	center := geometry.Zero
	neighbors := 0
	for _, other := range flock {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < b.NeighborDistance {
			center = center.Add(other.Position)
			neighbors++
		}
	}
	if neighbors == 0 {
		return geometry.Zero
	}
	center = center.Mul(1 / float64(neighbors))
	return b.Steer(center.Sub(b.Position))
}

// Steer turns a desired direction into a steering force:
// desired velocity (direction at MaxSpeed) minus the current velocity,
// capped at MaxForce. A zero direction gives a zero force.
func (b *Boid) Steer(direction geometry.Vector2D) geometry.Vector2D {
	if direction.LenSqr() == 0 {
		return geometry.Zero
	}
	force := direction.Normalize().Mul(b.MaxSpeed).Sub(b.Velocity)
	return force.ClampLen(b.MaxForce)
}
