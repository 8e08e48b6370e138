package simulation

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lao-tseu-is-alive/go-flock-walls/pkg/behavior"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1280.0, cfg.WorldWidth)
	assert.Equal(t, 720.0, cfg.WorldHeight)
	assert.Equal(t, 250, cfg.NumBoids)
	assert.Equal(t, behavior.DefaultParams(), cfg.Boid)
	require.Len(t, cfg.Walls, 10)

	count := map[string]int{}
	for _, w := range cfg.Walls {
		count[w.Type]++
	}
	assert.Equal(t, map[string]int{
		WallSegment:   2,
		WallCircle:    6,
		WallRectangle: 1,
		WallPolygon:   1,
	}, count)

	want := []WallConfig{
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
	for i, w := range want {
		assert.Equal(t, w, cfg.Walls[i], "wall %d", i)
	}
}

func TestConfig_Step(t *testing.T) {
	cfg := DefaultConfig()
	assert.InDelta(t, 100.0/60.0, cfg.Step(), 1e-12)

	cfg.TickRate = 0
	assert.Equal(t, 0.0, cfg.Step())
}

func TestConfig_Clock(t *testing.T) {
	cfg := DefaultConfig()
	_, isWall := cfg.Clock().(*WallClock)
	assert.True(t, isWall)

	cfg.FixedStep = true
	c, isFixed := cfg.Clock().(FixedClock)
	require.True(t, isFixed)
	assert.InDelta(t, cfg.Step(), c.Tick(), 1e-12)
}

func TestLoadConfig_Formats(t *testing.T) {
	for _, name := range []string{"scene.json", "scene.yaml", "scene.toml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := LoadConfig(filepath.Join("testdata", name))
			require.NoError(t, err)

			assert.Equal(t, 800.0, cfg.WorldWidth)
			assert.Equal(t, 600.0, cfg.WorldHeight)
			assert.Equal(t, 20, cfg.NumBoids)
			assert.Equal(t, uint64(42), cfg.Seed)
			assert.True(t, cfg.FixedStep)

			// keys absent from the file keep their default
			assert.Equal(t, 60, cfg.TickRate)
			assert.Equal(t, DefaultTimeScale, cfg.TimeScale)
			assert.Equal(t, 3.0, cfg.Boid.MaxSpeed)
			assert.Equal(t, behavior.DefaultParams().MaxForce, cfg.Boid.MaxForce)
			assert.Equal(t, behavior.DefaultParams().NeighborDistance, cfg.Boid.NeighborDistance)

			require.Len(t, cfg.Walls, 2)
			assert.Equal(t, WallConfig{Type: WallSegment, X1: 100, Y1: 100, X2: 700, Y2: 100}, cfg.Walls[0])
			assert.Equal(t, WallConfig{Type: WallCircle, X: 400, Y: 300, Radius: 25, VX: 0.5}, cfg.Walls[1])
		})
	}
}

func TestLoadConfig_KeepsDefaultWalls(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "no_walls.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.NumBoids)
	assert.Equal(t, DefaultConfig().Walls, cfg.Walls)
}

func TestLoadConfig_EmptyWallList(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"walls": []}`), ".json")
	require.NoError(t, err)
	assert.Empty(t, cfg.Walls)
}

func TestLoadConfig_Rejected(t *testing.T) {
	t.Run("polygon with two points", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join("testdata", "bad_polygon.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", `{"numRedAtStart": 5}`},
		{"negative width", `{"worldWidth": -1}`},
		{"fractional boid count", `{"numBoids": 2.5}`},
		{"unknown wall type", `{"walls": [{"type": "spiral"}]}`},
		{"circle without radius", `{"walls": [{"type": "circle", "x": 1, "y": 2}]}`},
		{"rectangle of zero width", `{"walls": [{"type": "rectangle", "x": 1, "y": 2, "width": 0, "height": 3}]}`},
		{"not an object", `[]`},
		{"misspelled rectangle angle", `{"walls": [{"type": "rectangle", "x": 1, "y": 2, "width": 3, "height": 4, "anlge": 30}]}`},
		{"misspelled circle velocity", `{"walls": [{"type": "circle", "x": 1, "y": 2, "radius": 3, "vY": 1}]}`},
		{"segment with a circle key", `{"walls": [{"type": "segment", "x1": 0, "y1": 0, "x2": 1, "y2": 1, "radius": 3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc), ".json")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_WallKeysPerType(t *testing.T) {
	doc := `{"walls": [
		{"type": "segment", "x1": 0, "y1": 0, "x2": 1, "y2": 1},
		{"type": "circle", "x": 1, "y": 2, "radius": 3, "vx": 0.5, "vy": -0.5},
		{"type": "rectangle", "x": 1, "y": 2, "width": 3, "height": 4, "angle": 30},
		{"type": "polygon", "points": [[0, 0], [1, 0], [1, 1]]}
	]}`
	cfg, err := ParseConfig([]byte(doc), ".json")
	require.NoError(t, err)
	require.Len(t, cfg.Walls, 4)
	assert.Equal(t, -0.5, cfg.Walls[1].VY)
	assert.Equal(t, 30.0, cfg.Walls[2].Angle)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "missing.json"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte(`{}`), ".ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseConfig([]byte(`{`), ".json")
	assert.Error(t, err)

	_, err = ParseConfig([]byte("a = ["), ".toml")
	assert.Error(t, err)
}
