package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Per-IP request limit for the API endpoints.
	apiMaxRequests = 100
	apiWindow      = time.Minute
)

// APIRateLimit limits API calls per client IP through Redis. With no Redis
// client the limiter is a no-op, and a Redis failure fails open so checkout
// never depends on the cache being up.
func APIRateLimit(rdb *redis.Client) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "api_rate:" + c.ClientIP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, apiWindow)
		}
		if count > apiMaxRequests {
			ttl := rdb.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
