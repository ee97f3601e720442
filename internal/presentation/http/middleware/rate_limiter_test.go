package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientRateLimiter_PerClientBudget(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 2, CleanupInterval: time.Minute, EntryTTL: time.Minute})
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, rl.allow("10.0.0.1"))
}

func TestClientRateLimiter_DropsStaleClients(t *testing.T) {
	rl := NewClientRateLimiter(RateLimiterConfig{RequestsPerSecond: 1, BurstSize: 1, CleanupInterval: time.Minute, EntryTTL: time.Minute})
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.allow("10.0.0.1")
	now = now.Add(3 * time.Minute)
	rl.allow("10.0.0.2")

	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}
