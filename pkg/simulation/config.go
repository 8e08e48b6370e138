package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/behavior"
)

var ErrUnsupportedFormat = errors.New("unsupported config format")

//go:embed scene.schema.json
var sceneSchema string

const sceneSchemaURL = "scene.schema.json"

// Config describes a whole scene: the world, the boids and the walls.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int     `json:"numBoids"`
	SpawnX   float64 `json:"spawnX"` // negative means the world centre
	SpawnY   float64 `json:"spawnY"`
	Seed     uint64  `json:"seed"` // 0 picks a random seed

	// Timing
	TickRate  int     `json:"tickRate"`  // ticks per second of the window
	TimeScale float64 `json:"timeScale"` // wall seconds to simulation time
	FixedStep bool    `json:"fixedStep"` // use 1/TickRate*TimeScale instead of the wall clock

	Boid  behavior.Params `json:"boid"`
	Walls []WallConfig    `json:"walls"`
}

// WallConfig is a tagged union of every wall shape.
// Type is one of segment, circle, rectangle, polygon.
type WallConfig struct {
	Type string `json:"type"`

	// segment
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	X2 float64 `json:"x2,omitempty"`
	Y2 float64 `json:"y2,omitempty"`

	// circle and rectangle origin
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`

	// circle
	Radius float64 `json:"radius,omitempty"`
	VX     float64 `json:"vx,omitempty"`
	VY     float64 `json:"vy,omitempty"`

	// rectangle
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Angle  float64 `json:"angle,omitempty"` // degrees

	// polygon
	Points [][2]float64 `json:"points,omitempty"`
}

// DefaultConfig is the built-in scene: a 1280x720 world, 250 boids in the
// centre, two horizontal walls, six obstacles, one of them drifting, a tilted
// rectangle and a small polygon.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:  1280,
		WorldHeight: 720,
		NumBoids:    250,
		SpawnX:      -1,
		SpawnY:      -1,
		TickRate:    60,
		TimeScale:   DefaultTimeScale,
		Boid:        behavior.DefaultParams(),
		Walls:       defaultWalls(),
	}
}

func defaultWalls() []WallConfig {
	return []WallConfig{
		{Type: WallSegment, X1: 200, Y1: 100, X2: 1080, Y2: 100},
		{Type: WallSegment, X1: 200, Y1: 620, X2: 1080, Y2: 620},
		{Type: WallCircle, X: 200, Y: 300, Radius: 30},
		{Type: WallCircle, X: 400, Y: 200, Radius: 30},
		{Type: WallCircle, X: 300, Y: 550, Radius: 30, VX: 0.5},
		{Type: WallCircle, X: 800, Y: 250, Radius: 30},
		{Type: WallCircle, X: 900, Y: 450, Radius: 30},
		{Type: WallCircle, X: 600, Y: 300, Radius: 30},
		{Type: WallRectangle, X: 1000, Y: 300, Width: 200, Height: 80, Angle: 30},
		{Type: WallPolygon, Points: [][2]float64{
			{50, 300}, {70, 320}, {90, 350}, {100, 400}, {80, 420}, {70, 430},
		}},
	}
}

// Step is the simulation dt of one tick when FixedStep is set.
func (c *Config) Step() float64 {
	if c.TickRate <= 0 {
		return 0
	}
	return c.TimeScale / float64(c.TickRate)
}

// Clock returns the clock driving this scene.
func (c *Config) Clock() Clock {
	if c.FixedStep {
		return FixedClock{Step: c.Step()}
	}
	return NewWallClock(c.TimeScale, nil)
}

// LoadConfig loads a scene from a JSON, YAML or TOML file, picked by
// extension, and validates it against the embedded schema. Keys missing from
// the file keep their DefaultConfig value; a file without walls keeps the
// default walls.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(b, filepath.Ext(configFile))
}

// ParseConfig is LoadConfig on an in-memory document. ext includes the dot.
func ParseConfig(data []byte, ext string) (*Config, error) {
	// 1. Decode into a generic document
	var v interface{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode config json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode config yaml: %w", err)
		}
	case ".toml":
		m := map[string]interface{}{}
		if _, err := toml.Decode(string(data), &m); err != nil {
			return nil, fmt.Errorf("failed to decode config toml: %w", err)
		}
		v = m
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	// 2. Normalize to JSON values, yaml and toml produce ints and typed maps
	// the validator does not know about.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to normalize config: %w", err)
	}

	// 3. Validate
	sch, err := jsonschema.CompileString(sceneSchemaURL, sceneSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal over the defaults
	cfg := DefaultConfig()
	cfg.Walls = nil
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if m, ok := doc.(map[string]interface{}); ok {
		if _, found := m["walls"]; !found {
			cfg.Walls = defaultWalls()
		}
	}
	return cfg, nil
}
