package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/divgaze/api/internal/api/dto/v1/contact"
	"github.com/divgaze/api/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines configuration for the server-wide rate limiter
type RateLimitConfig struct {
	// Requests per second
	RPS int
	// Burst size (number of requests that can be made in a single burst)
	Burst int
}

// RateLimitMiddleware creates a server-wide token-bucket rate limiter. This
// is a coarse throughput guard shared by all clients; the contact endpoint
// additionally enforces a per-client window via ClientRateLimit.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(config.RPS), config.Burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, contact.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.RPS))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

		c.Next()
	}
}

// clientWindow tracks one client's submission count in the current window
type clientWindow struct {
	count     int
	resetTime time.Time
}

// ClientLimiter is a fixed-window rate limiter keyed by client identifier.
// Entries are created on first sight and reset in place when their window
// ends; they are never evicted, so the map grows with the number of
// distinct clients seen by this process instance. The limit is
// per-instance only and must not be treated as a global throttle.
type ClientLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	clients map[string]*clientWindow
	now     func() time.Time
}

// NewClientLimiter creates a limiter allowing limit requests per window
// for each distinct key.
func NewClientLimiter(limit int, window time.Duration) *ClientLimiter {
	return &ClientLimiter{
		limit:   limit,
		window:  window,
		clients: make(map[string]*clientWindow),
		now:     time.Now,
	}
}

// Allow records a request for key and reports whether it is within the
// limit. The count is only incremented when the request is allowed.
func (l *ClientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.clients[key]
	if !ok || now.After(entry.resetTime) {
		l.clients[key] = &clientWindow{count: 1, resetTime: now.Add(l.window)}
		return true
	}

	if entry.count >= l.limit {
		return false
	}
	entry.count++
	return true
}

// ClientRateLimit rejects requests whose client identifier has exhausted
// its window, before any validation or dispatch work happens.
func ClientRateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(utils.ClientIdentifier(c)) {
			c.JSON(http.StatusTooManyRequests, contact.ErrorResponse{
				Error: "Too many requests. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
