package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.NumBoids = 5
	cfg.Seed = 3
	cfg.FixedStep = true
	return cfg
}

// nextFrame waits for the next frame carrying tick.
func nextFrame(t *testing.T, e *Engine, tick uint64) render.Frame {
	t.Helper()
	var got render.Frame
	require.Eventually(t, func() bool {
		for {
			select {
			case f := <-e.Frames():
				got = f
				if f.Tick >= tick {
					return true
				}
			default:
				return false
			}
		}
	}, 5*time.Second, 10*time.Millisecond)
	return got
}

func TestEngine_TickProducesFrame(t *testing.T) {
	ctx := context.Background()
	e, err := StartEngine(ctx, testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = e.Stop(ctx) }()

	require.NoError(t, e.Tick(ctx, 1.6))
	f := nextFrame(t, e, 1)

	assert.Equal(t, uint64(1), f.Tick)
	assert.Equal(t, 5, f.Boids)
	assert.Equal(t, 10, f.Walls)
	// 5 boids, 2 segments, 6 circles, 4 rectangle edges, 1 polygon
	assert.Len(t, f.Commands, 18)
}

func TestEngine_SpawnAndReset(t *testing.T) {
	ctx := context.Background()
	e, err := StartEngine(ctx, testConfig(), nil)
	require.NoError(t, err)
	defer func() { _ = e.Stop(ctx) }()

	require.NoError(t, e.Spawn(ctx, 100, 200))
	require.NoError(t, e.Spawn(ctx, 300, 400))
	require.NoError(t, e.Tick(ctx, 1.6))
	f := nextFrame(t, e, 1)
	assert.Equal(t, 7, f.Boids)

	// mailbox order: the reset runs before the following tick
	require.NoError(t, e.Reset(ctx))
	require.NoError(t, e.Tick(ctx, 1.6))
	f = nextFrame(t, e, 1)
	assert.Equal(t, uint64(1), f.Tick, "reset restarts the tick count")
	assert.Equal(t, 5, f.Boids)
}

func TestEngine_FramesRecordDraws(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.NumBoids = 0
	cfg.Walls = []WallConfig{{Type: WallCircle, X: 10, Y: 10, Radius: 5, VX: 1}}
	e, err := StartEngine(ctx, cfg, nil)
	require.NoError(t, err)
	defer func() { _ = e.Stop(ctx) }()

	require.NoError(t, e.Spawn(ctx, 50, 60))
	require.NoError(t, e.Tick(ctx, 2))
	f := nextFrame(t, e, 1)

	require.Len(t, f.Commands, 2)
	boid := f.Commands[0]
	assert.Equal(t, render.KindBoid, boid.Kind)
	assert.Equal(t, cfg.Boid.Radius, boid.Radius)
	circle := f.Commands[1]
	assert.Equal(t, render.KindCircle, circle.Kind)
	assert.Equal(t, geometry.Vector2D{X: 12, Y: 10}, circle.Points[0])
}

func TestStartEngine_BadScene(t *testing.T) {
	cfg := testConfig()
	cfg.Walls = []WallConfig{{Type: "spiral"}}

	_, err := StartEngine(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestSpawnPosition(t *testing.T) {
	p, ok := spawnPosition(SpawnMessage(3, 4))
	require.True(t, ok)
	assert.Equal(t, geometry.Vector2D{X: 3, Y: 4}, p)

	msg := SpawnMessage(3, 4)
	delete(msg.Fields, "y")
	_, ok = spawnPosition(msg)
	assert.False(t, ok)
}
