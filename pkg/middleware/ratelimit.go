package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RateLimitWithRedis enforces a fixed window per client IP, backed by a shared
// redis counter so the ceiling holds across replicas. If redis is unreachable
// the limiter fails open: a degraded cache must not take the forms down.
func RateLimitWithRedis(rdb *redis.Client, window time.Duration, max int64, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:%s", c.RealIP())

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("rate limiter unavailable, letting the request through", zap.Error(err))
				return next(c)
			}
			if count == 1 {
				if err := rdb.Expire(ctx, key, window).Err(); err != nil {
					logger.Warn("failed to set rate limit window", zap.Error(err))
				}
			}

			if count > max {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": fmt.Sprintf("request limit reached, try again in %s", window),
				})
			}

			return next(c)
		}
	}
}
