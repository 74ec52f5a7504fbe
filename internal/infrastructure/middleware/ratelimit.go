package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/df-fix-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/df-fix-backend/internal/pkg/httputil"
)

const rateLimitKeyPrefix = "df:ratelimit:"

// RateLimiter counts requests per client IP in fixed one-minute windows stored in redis.
type RateLimiter struct {
	client         redis.Cmdable
	requestsPerMin int
	window         time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

func NewRateLimiter(client redis.Cmdable, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:         client,
		requestsPerMin: cfg.RequestsPerMin,
		window:         time.Minute,
		logger:         logger,
		now:            time.Now,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		count, reset, err := rl.hit(c.Request.Context(), c.ClientIP())
		if err != nil {
			// Redis being unavailable must not take the API down with it.
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		remaining := max(rl.requestsPerMin-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMin))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > rl.requestsPerMin {
			c.Header("Retry-After", strconv.Itoa(int(reset.Seconds())+1))
			httputil.Abort(c, apperror.TooManyRequests("too many requests, please try again later"))
			return
		}

		c.Next()
	}
}

// hit increments the subject's counter for the current window and reports
// the new count and the time left until the window closes.
func (rl *RateLimiter) hit(ctx context.Context, subject string) (int, time.Duration, error) {
	now := rl.now()
	windowStart := now.Truncate(rl.window)
	key := rateLimitKeyPrefix + subject + ":" + strconv.FormatInt(windowStart.Unix(), 10)

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}

	return int(incr.Val()), windowStart.Add(rl.window).Sub(now), nil
}
