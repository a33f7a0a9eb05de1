package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client address.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mutex    sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerMinute int, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:    burst,
	}
}

func (rl *RateLimiter) GetLimiter(key string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// RateLimit rejects requests from clients that exceed their bucket.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.GetLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
				"code":  http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}

// SecurityHeaders middleware adds security headers
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// QueryDefaults clamps the feed's limit/offset query parameters.
func QueryDefaults(maxLimit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit := c.Query("limit"); limit != "" {
			if limitInt, err := strconv.Atoi(limit); err != nil || limitInt < 1 || limitInt > maxLimit {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "limit must be between 1 and " + strconv.Itoa(maxLimit),
					"code":  http.StatusBadRequest,
				})
				return
			}
		}
		if offset := c.Query("offset"); offset != "" {
			if offsetInt, err := strconv.Atoi(offset); err != nil || offsetInt < 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
					"error": "offset must be a non-negative integer",
					"code":  http.StatusBadRequest,
				})
				return
			}
		}
		c.Next()
	}
}
