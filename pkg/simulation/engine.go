package simulation

import (
	"context"
	"fmt"

	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

const (
	systemName = "FlockWorld"
	actorName  = "flock"

	// frameBuffer is how many frames may wait for the UI before ticks start
	// dropping them.
	frameBuffer = 10
)

// Engine runs a FlockActor inside its own actor system.
type Engine struct {
	system   actor.ActorSystem
	flockPID *actor.PID
	frames   chan render.Frame
	logger   *zap.Logger
}

// StartEngine starts the actor system and spawns the flock actor for cfg.
func StartEngine(ctx context.Context, cfg *Config, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	system, err := actor.NewActorSystem(systemName,
		actor.WithLogger(golog.DiscardLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}

	frames := make(chan render.Frame, frameBuffer)
	pid, err := system.Spawn(ctx, actorName, NewFlockActor(cfg, frames, logger))
	if err != nil {
		_ = system.Stop(ctx)
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	logger.Info("engine started", zap.String("system", systemName))

	return &Engine{
		system:   system,
		flockPID: pid,
		frames:   frames,
		logger:   logger,
	}, nil
}

// Tick asks the flock to advance by dt. It does not wait for the step.
func (e *Engine) Tick(ctx context.Context, dt float64) error {
	return actor.Tell(ctx, e.flockPID, TickMessage(dt))
}

// Spawn adds a boid at (x, y) before the next tick.
func (e *Engine) Spawn(ctx context.Context, x, y float64) error {
	return actor.Tell(ctx, e.flockPID, SpawnMessage(x, y))
}

// Reset rebuilds the scene from the config the engine was started with.
func (e *Engine) Reset(ctx context.Context) error {
	return actor.Tell(ctx, e.flockPID, ResetMessage())
}

// Frames delivers one frame per tick, frames are dropped while nobody reads.
func (e *Engine) Frames() <-chan render.Frame {
	return e.frames
}

// Stop shuts down the actor system.
func (e *Engine) Stop(ctx context.Context) error {
	if err := e.system.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop actor system: %w", err)
	}
	e.logger.Info("engine stopped")
	return nil
}
