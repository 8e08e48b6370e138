package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"go.uber.org/zap"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
)

// FlockActor owns the Flock. The mailbox serializes ticks, spawns and resets,
// so a Run never overlaps another one and nothing outside the actor touches
// a boid or a wall.
type FlockActor struct {
	cfg      *Config
	logger   *zap.Logger
	rng      *rand.Rand
	flock    *Flock
	recorder *render.Recorder

	// Communication with UI
	frameCh chan<- render.Frame

	// --- Benchmark Stats ---
	ticks       int
	dropped     int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the actor for cfg. Every tick pushes a render.Frame
// on frameCh unless the receiver is busy, frameCh may be nil.
func NewFlockActor(cfg *Config, frameCh chan<- render.Frame, logger *zap.Logger) *FlockActor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlockActor{
		cfg:         cfg,
		logger:      logger,
		rng:         cfg.NewRand(),
		recorder:    render.NewRecorder(),
		frameCh:     frameCh,
		lastLogTime: time.Now(),
	}
}

func (a *FlockActor) PreStart(ctx *actor.Context) error {
	f, err := BuildFlock(a.cfg, a.logger, a.rng)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}
	a.flock = f
	a.logger.Info("flock actor starting", zap.String("actor", ctx.ActorName()))
	return nil
}

func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		a.logger.Info("flock actor started", zap.Int("boids", len(a.flock.Boids())))

	case *wrapperspb.DoubleValue:
		a.tick(msg.GetValue())

	case *structpb.Struct:
		p, ok := spawnPosition(msg)
		if !ok {
			a.logger.Warn("spawn message without x and y")
			return
		}
		a.flock.AddBoid(behavior.New(p, a.cfg.Boid, a.rng))

	case *emptypb.Empty:
		f, err := BuildFlock(a.cfg, a.logger, a.rng)
		if err != nil {
			a.logger.Error("reset failed", zap.Error(err))
			return
		}
		a.flock = f

	default:
		ctx.Unhandled()
	}
}

func (a *FlockActor) PostStop(ctx *actor.Context) error {
	a.logger.Info("flock actor stopped",
		zap.String("actor", ctx.ActorName()),
		zap.Uint64("ticks", a.flock.Tick()))
	return nil
}

func (a *FlockActor) tick(dt float64) {
	a.flock.Run(dt, a.recorder)
	a.pushFrame(a.recorder.Flush(a.flock.Tick(), len(a.flock.Walls())))
	a.ticks++
	a.logRate()
}

func (a *FlockActor) pushFrame(f render.Frame) {
	if a.frameCh == nil {
		return
	}
	select {
	case a.frameCh <- f:
	default:
		// UI busy, skip frame
		a.dropped++
	}
}

func (a *FlockActor) logRate() {
	if time.Since(a.lastLogTime) < time.Second {
		return
	}
	a.logger.Debug("tick rate",
		zap.Int("ticks", a.ticks),
		zap.Int("dropped", a.dropped),
		zap.Int("boids", len(a.flock.Boids())))
	a.ticks = 0
	a.dropped = 0
	a.lastLogTime = time.Now()
}
