package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/promo-kiosk/internal/presentation/http/dto/response"
	"github.com/sangkips/promo-kiosk/pkg/apperror"
	"golang.org/x/time/rate"
)

// ClientRateLimiter limits requests per client IP
type ClientRateLimiter struct {
	limiters    map[string]*rateLimiterEntry
	mu          sync.Mutex
	rate        rate.Limit
	burst       int
	cleanupTick time.Duration
	entryTTL    time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterConfig holds configuration for the rate limiter
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	CleanupInterval   time.Duration
	EntryTTL          time.Duration
}

// DefaultRateLimiterConfig returns the stock board defaults
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	}
}

// NewClientRateLimiter creates a new per-client rate limiter.
// Stale entries are dropped lazily while serving requests.
func NewClientRateLimiter(cfg RateLimiterConfig) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters:    make(map[string]*rateLimiterEntry),
		rate:        rate.Limit(cfg.RequestsPerSecond),
		burst:       cfg.BurstSize,
		cleanupTick: cfg.CleanupInterval,
		entryTTL:    cfg.EntryTTL,
		lastCleanup: time.Now(),
		now:         time.Now,
	}
}

// allow consumes one token for client
func (rl *ClientRateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.limiters[client]
	if !ok {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[client] = entry
	}
	entry.lastSeen = now

	if rl.cleanupTick > 0 && now.Sub(rl.lastCleanup) >= rl.cleanupTick {
		rl.cleanupLocked(now)
		rl.lastCleanup = now
	}
	return entry.limiter.AllowN(now, 1)
}

// cleanupLocked removes entries unused for longer than the TTL
func (rl *ClientRateLimiter) cleanupLocked(now time.Time) {
	cutoff := now.Add(-rl.entryTTL)
	for client, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, client)
		}
	}
}

// Middleware returns a Gin middleware that rejects clients over their limit
func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.Header("X-RateLimit-Limit", strconv.Itoa(rl.burst))
			c.Header("Retry-After", "1")
			response.Error(c, apperror.ErrTooManyRequest)
			c.Abort()
			return
		}
		c.Next()
	}
}
