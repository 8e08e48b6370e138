package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-flock-walls/internal/logging"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/ui"
)

var (
	configFile = flag.String("config", "", "Scene file (.json, .yaml or .toml), empty for the default scene")
	logLevel   = flag.String("log", "info", "Log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(logging.ExitCode(logger, "flock stopped", run(logger)))
}

func run(logger *zap.Logger) error {
	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Info("scene loaded", zap.String("file", *configFile))
	}

	ctx := context.Background()
	engine, err := simulation.StartEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := engine.Stop(ctx); err != nil {
			logger.Warn("engine stop", zap.Error(err))
		}
	}()

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flocking with wall avoidance")
	ebiten.SetTPS(cfg.TickRate)

	game := ui.NewGame(ctx, cfg, engine, cfg.Clock(), logger)
	return ebiten.RunGame(game)
}
