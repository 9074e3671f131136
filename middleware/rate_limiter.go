package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/ArmanNagariya-Developer/azhari-attar/models"
	"github.com/gin-gonic/gin"
)

// In-process windowed counters. The storefront runs on-device with no shared
// cache, so counters live in memory and reset with the process.

type bucket struct {
	count   int
	resetAt time.Time
}

var (
	bucketMu sync.Mutex
	buckets  = make(map[string]*bucket)
)

func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := ip + ":" + method + ":" + endpoint

		bucketMu.Lock()
		b, ok := buckets[key]
		if !ok || time.Now().After(b.resetAt) {
			b = &bucket{resetAt: time.Now().Add(window)}
			buckets[key] = b
		}
		b.count++
		count := b.count
		resetAt := b.resetAt
		bucketMu.Unlock()

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}

		// Reset in seconds (clamped at 0)
		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimit{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		// If limit exceeded → block request
		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
