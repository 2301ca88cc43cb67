package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter enforces a minimum interval between requests per client,
// keyed on the X-Client-ID header. Snapshots are cheap to serve from cache
// but each miss costs a settlement-layer round trip.
type RateLimiter struct {
	mu       sync.Mutex
	lastSeen map[string]time.Time
	minGap   time.Duration
}

func NewRateLimiter(minGap time.Duration) *RateLimiter {
	return &RateLimiter{
		lastSeen: make(map[string]time.Time),
		minGap:   minGap,
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetHeader("X-Client-ID")
		if clientID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Client-ID header required"})
			c.Abort()
			return
		}
		r.mu.Lock()
		last, seen := r.lastSeen[clientID]
		if seen && time.Since(last) < r.minGap {
			r.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		r.lastSeen[clientID] = time.Now()
		r.mu.Unlock()
		c.Next()
	}
}
