package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiterMiddleware is a fixed-window counter per client IP. When redis
// is unreachable the request is let through rather than failing closed.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("rate_limit:%s", clientIP)

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			zap.L().Warn("Rate limiter skipped, redis error", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(c.Request.Context(), key, window).Err(); err != nil {
				zap.L().Warn("Rate limiter expire failed, deleting key", zap.Error(err))
				rdb.Del(c.Request.Context(), key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(c.Request.Context(), key).Result()
		if err != nil {
			ttl = window
		}

		resetTime := time.Now().Add(ttl).Unix()
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, int64(limit)-count)))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetTime))

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":     "error",
				"message":    "Too many requests. Slow down!",
				"retry_in_s": int(ttl.Seconds()),
			})
			return
		}

		c.Next()
	}
}
