// Command headless runs a scene without a window at a fixed step and logs
// flock statistics, for benchmarks and long runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/internal/logging"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/render"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/simulation"
)

var (
	configFile  = flag.String("config", "", "Scene file (.json, .yaml or .toml), empty for the default scene")
	maxTicks    = flag.Int("ticks", 1000, "Number of ticks to run")
	logInterval = flag.Int("every", 100, "Log flock stats every N ticks (0 = only at the end)")
	logLevel    = flag.String("log", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(logging.ExitCode(logger, "headless run failed", run(logger)))
}

func run(logger *zap.Logger) error {
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flock, err := simulation.BuildFlock(cfg, logger, nil)
	if err != nil {
		return err
	}

	clock := simulation.FixedClock{Step: cfg.Step()}
	start := time.Now()
	for i := 1; i <= *maxTicks; i++ {
		flock.Run(clock.Tick(), render.Discard)
		if *logInterval > 0 && i%*logInterval == 0 {
			logStats(logger, flock)
		}
	}
	elapsed := time.Since(start)

	logStats(logger, flock)
	logger.Info("run finished",
		zap.Int("ticks", *maxTicks),
		zap.Duration("elapsed", elapsed),
		zap.Float64("ticksPerSecond", float64(*maxTicks)/elapsed.Seconds()))
	return nil
}

func logStats(logger *zap.Logger, f *simulation.Flock) {
	boids := f.Boids()
	if len(boids) == 0 {
		logger.Info("flock stats", zap.Uint64("tick", f.Tick()), zap.Int("boids", 0))
		return
	}
	center, heading := geometry.Zero, geometry.Zero
	speed := 0.0
	for _, b := range boids {
		center = center.Add(b.Position)
		heading = heading.Add(b.Velocity.Normalize())
		speed += b.Velocity.Len()
	}
	n := float64(len(boids))
	logger.Info("flock stats",
		zap.Uint64("tick", f.Tick()),
		zap.Int("boids", len(boids)),
		zap.Stringer("center", center.Mul(1/n)),
		zap.Float64("meanSpeed", speed/n),
		// 1 when every boid flies the same way
		zap.Float64("polarization", heading.Len()/n))
}
