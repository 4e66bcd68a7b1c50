// Package ratelimit provides a Redis-backed fixed-window request limiter for
// the login endpoint.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_attempts"

// LoginLimiter counts attempts per client key in fixed windows. It fails
// open: a nil client or an unreachable Redis never blocks a login.
type LoginLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
func NewLoginLimiter(rdb *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
	}
}

// Allow reports whether another attempt from key is permitted in the current
// window.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l.rdb == nil {
		return true
	}

	redisKey := fmt.Sprintf("%s:%s", keyPrefix, key)
	count, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("rate limiter unavailable", "error", err)
		return true
	}
	// 最初のカウントでウィンドウの有効期限を設定
	if count == 1 {
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			slog.Warn("failed to set rate limit window", "error", err)
		}
	}

	return count <= l.limit
}

// Middleware returns a Gin middleware limiting requests per client IP.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.Request.Context(), c.ClientIP()) {
			slog.Warn("login rate limit exceeded", "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
			return
		}
		c.Next()
	}
}
