package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/simulation"
)

// Game is the ebiten front end of an Engine. It never touches the flock: it
// sends ticks and spawns, and replays the last frame the engine produced.
type Game struct {
	ctx    context.Context
	engine *simulation.Engine
	clock  simulation.Clock
	cfg    *simulation.Config
	logger *zap.Logger

	frame render.Frame

	// UI Controls
	panel       *UIPanel
	widgetPause *Checkbox
	widgetSpeed *Slider

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64
}

// NewGame wires the window to engine. Ticks use clock, scaled by the speed
// slider.
func NewGame(ctx context.Context, cfg *simulation.Config, engine *simulation.Engine, clock simulation.Clock, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		ctx:    ctx,
		engine: engine,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
	}

	g.panel = NewUIPanel("Flock", 10, 10, 180, 190)
	g.panel.AddSection("Simulation")
	g.widgetPause = g.panel.AddCheckbox("Pause", false)
	g.widgetSpeed = g.panel.AddSlider("Speed", 0, 3, 1)
	g.panel.AddButton("Reset", g.reset)
	g.panel.EndSection()

	g.widgetPause.OnToggle = func(paused bool) {
		g.logger.Debug("pause toggled", zap.Bool("paused", paused))
	}
	return g
}

func (g *Game) reset() {
	if err := g.engine.Reset(g.ctx); err != nil {
		g.logger.Warn("reset failed", zap.Error(err))
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Widgets first so a click on the panel is not also a spawn
	g.panel.Update()

	// 2. Keep the most recent frame (non-blocking)
	g.drainFrames()

	// 3. A click in the world adds a boid
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.panel.Contains(mx, my) {
			if err := g.engine.Spawn(g.ctx, float64(mx), float64(my)); err != nil {
				g.logger.Warn("spawn failed", zap.Error(err))
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.widgetPause.Value = !g.widgetPause.Value
	}

	// 4. Step: the clock always advances so resuming does not jump
	dt := g.clock.Tick()
	if g.widgetPause.Value {
		return nil
	}
	if err := g.engine.Tick(g.ctx, dt*g.widgetSpeed.Value); err != nil {
		return fmt.Errorf("failed to tick flock: %w", err)
	}
	return nil
}

func (g *Game) drainFrames() {
	for {
		select {
		case f := <-g.engine.Frames():
			g.frame = f
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(BackgroundColor)
	render.Replay(g.frame, NewScreenRenderer(screen))
	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\nTick: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.frame.Boids,
		g.frame.Tick,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
