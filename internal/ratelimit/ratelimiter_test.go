package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanUse_FirstUse(t *testing.T) {
	rl := New(time.Minute)
	assert.True(t, rl.CanUse("1"))
}

func TestCanUse_WithinCooldown(t *testing.T) {
	rl := New(time.Minute)
	rl.CanUse("1")
	assert.False(t, rl.CanUse("1"))
	assert.True(t, rl.CanUse("2"))
}

func TestCanUse_AfterCooldown(t *testing.T) {
	rl := New(time.Millisecond)
	rl.CanUse("1")
	time.Sleep(5 * time.Millisecond)
	assert.True(t, rl.CanUse("1"))
}

func TestTimeUntilNext(t *testing.T) {
	rl := New(time.Minute)
	assert.Equal(t, time.Duration(0), rl.TimeUntilNext("1"))

	rl.CanUse("1")
	assert.Greater(t, rl.TimeUntilNext("1"), time.Duration(0))
}
