package middelware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"mockapi-backend/models"
	"mockapi-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// bucket is a single token bucket. Safe for concurrent use.
type bucket struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	rate       float64 // tokens per second
	lastUpdate time.Time
}

func newBucket(perMinute int) *bucket {
	max := float64(perMinute)
	return &bucket{
		tokens:     max,
		maxTokens:  max,
		rate:       max / 60.0,
		lastUpdate: time.Now(),
	}
}

// allow tries to consume one token, refilling by elapsed time first. It also
// reports the remaining whole tokens for the response headers.
func (b *bucket) allow() (bool, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastUpdate).Seconds() * b.rate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastUpdate = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

// RateLimitMiddleware applies per-client token buckets, one bucket per
// client IP per endpoint class. Each class (default, search, batch, system)
// carries its own per-minute budget.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	logger  logger.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(log logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		buckets: make(map[string]*bucket),
		logger:  log,
	}
}

// Limit returns a gin.HandlerFunc enforcing the given per-minute budget for
// the named endpoint class.
func (m *RateLimitMiddleware) Limit(class string, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if perMinute <= 0 {
			c.Next()
			return
		}

		b := m.bucketFor(class+"|"+c.ClientIP(), perMinute)
		allowed, remaining := b.allow()

		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			m.logger.Warnf("rate limit exceeded for %s on %s endpoints", c.ClientIP(), class)
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.APIResponse{
				Status:  "error",
				Code:    http.StatusTooManyRequests,
				Message: "Too Many Requests",
				Error: &models.APIError{
					Type:    "RateLimitError",
					Details: "Rate limit exceeded. Please slow down.",
				},
			})
			return
		}

		c.Next()
	}
}

func (m *RateLimitMiddleware) bucketFor(key string, perMinute int) *bucket {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok {
		b = newBucket(perMinute)
		m.buckets[key] = b
	}
	return b
}
