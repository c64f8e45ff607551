package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"loan-tracker/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

func buildRateKey(method, path, subject string) string {
	return "ratelimit:" + strings.ToLower(method) + ":" + path + ":" + subject
}

// hit counts one request in the current window and returns the running
// count and the time left in the window. A counter found without a TTL gets
// one, so a window whose first EXPIRE was lost still closes.
func hit(ctx context.Context, rdb *redis.Client, key string, window time.Duration) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		ttl = p.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	left := ttl.Val()
	if left < 0 {
		if err := rdb.Expire(ctx, key, window).Err(); err != nil {
			return incr.Val(), 0, err
		}
		left = window
	}
	return incr.Val(), left, nil
}

// RateLimit allows at most limit requests per caller per window. The caller
// is the authenticated identity when present, else the client IP. If Redis
// is unreachable the request goes through and a warning is logged.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limit <= 0 {
				return next(c)
			}
			subject, ok := Identity(c)
			if !ok {
				subject = c.RealIP()
			}
			key := buildRateKey(c.Request().Method, c.Path(), subject)

			ctx, cancel := context.WithTimeout(c.Request().Context(), redisOpTimeout)
			defer cancel()

			n, left, err := hit(ctx, rdb, key, window)
			if err != nil {
				slog.WarnContext(ctx, "rate limiter unavailable", "key", key, "err", err)
				return next(c)
			}

			remaining := int64(limit) - n
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(limit))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(limit) {
				h.Set("Retry-After", strconv.Itoa(int(left.Round(time.Second)/time.Second)))
				return c.JSON(http.StatusTooManyRequests, apperr.ErrorResponse{Error: "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
