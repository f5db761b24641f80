package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"storefront/shared/models"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig describes a fixed window limit per client IP.
type RateLimitConfig struct {
	Limit  uint          // Requests allowed per window; 0 disables limiting
	Window time.Duration // Window length
}

// NewRateLimiter builds a per-IP rate limiting middleware.
// With a nil redisClient counters are kept in process memory; otherwise they are
// shared through Redis so several replicas enforce one budget.
func NewRateLimiter(cfg RateLimitConfig, redisClient *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	if cfg.Limit == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var store ratelimit.Store
	if redisClient != nil {
		store = ratelimit.RedisStore(&ratelimit.RedisOptions{
			RedisClient: redisClient,
			Rate:        cfg.Window,
			Limit:       cfg.Limit,
		})
	} else {
		store = ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
			Rate:  cfg.Window,
			Limit: cfg.Limit,
		})
	}

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: func(c *gin.Context, info ratelimit.Info) {
			retryAfter := time.Until(info.ResetTime)
			logger.Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: fmt.Sprintf("Too many requests. Try again in %s", retryAfter.Round(time.Second)),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}
