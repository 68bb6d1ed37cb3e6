package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/httperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var ErrRateLimited = apperr.New(apperr.RateLimited, "too many requests, try again later")

const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*clientLimiter
	now     func() time.Time
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// A non-positive perSecond disables limiting.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Allow reports whether client may make a request now.
func (l *RateLimiter) Allow(client string) bool {
	if l.limit <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cl, ok := l.clients[client]
	if !ok {
		l.evictIdle(now)
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Sweep drops buckets of clients idle for longer than idleLimiterTTL.
func (l *RateLimiter) Sweep(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.evictIdle(l.now())
	return nil
}

func (l *RateLimiter) evictIdle(now time.Time) {
	for k, cl := range l.clients {
		if now.Sub(cl.lastSeen) > idleLimiterTTL {
			delete(l.clients, k)
		}
	}
}

// Middleware rejects requests over the limit with RateLimited.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			httperr.Write(c, ErrRateLimited)
			return
		}
		c.Next()
	}
}
