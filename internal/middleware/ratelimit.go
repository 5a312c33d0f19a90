package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter hands out one token bucket per client IP.
type clientLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
}

func (cl *clientLimiter) get(key string) *rate.Limiter {
	cl.mu.RLock()
	limiter, exists := cl.limiters[key]
	cl.mu.RUnlock()
	if exists {
		return limiter
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()
	// Double-check after acquiring the write lock.
	if limiter, exists = cl.limiters[key]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(cl.limit, cl.burst)
	cl.limiters[key] = limiter
	return limiter
}

// RateLimit rejects requests from clients that exceed rps sustained
// requests per second with the given burst headroom.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	cl := newClientLimiter(rps, burst)
	return func(c *gin.Context) {
		if !cl.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
