package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its bucket.
const visitorTTL = 10 * time.Minute

// RateLimiter hands every client IP its own token bucket.
type RateLimiter struct {
	visitors *cache.Cache
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: cache.New(visitorTTL, visitorTTL),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors.Get(ip); ok {
		limiter := v.(*rate.Limiter)
		// sliding expiry
		rl.visitors.SetDefault(ip, limiter)
		return limiter
	}
	limiter := rate.NewLimiter(rl.rps, rl.burst)
	rl.visitors.SetDefault(ip, limiter)
	return limiter
}

// Limit rejects with 429 once a client spends its burst. A non-positive
// rate disables limiting.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.rps <= 0 {
			c.Next()
			return
		}
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "too many requests, slow down",
				"code":       "rate_limited",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}
