package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedClock(t *testing.T) {
	c := FixedClock{Step: 1.5}
	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.5, c.Tick())
	}
}

func TestWallClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewWallClock(DefaultTimeScale, func() time.Time { return now })

	now = now.Add(16 * time.Millisecond)
	assert.InDelta(t, 1.6, c.Tick(), 1e-9)

	// nothing elapsed
	assert.Equal(t, 0.0, c.Tick())

	now = now.Add(time.Second)
	assert.InDelta(t, 100.0, c.Tick(), 1e-9)
}

func TestWallClock_DefaultNow(t *testing.T) {
	c := NewWallClock(1, nil)
	assert.GreaterOrEqual(t, c.Tick(), 0.0)
}
