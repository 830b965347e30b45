package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/njrexim/cms-api/internal/api/metrics"
)

// Limit is a fixed request budget per window.
type Limit struct {
	Requests int
	Window   time.Duration
}

// Decision is the outcome of one limiter check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter takes one request from the budget of key.
type Limiter interface {
	Take(ctx context.Context, key string) (Decision, error)
}

// limiterErrorLogInterval bounds how often a failing limiter is logged; an
// outage would otherwise log once per request.
const limiterErrorLogInterval = 30 * time.Second

// RateLimit enforces l per client IP. Limiter errors let the request
// through.
func RateLimit(bucket string, l Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	errLog := &rate.Sometimes{First: 1, Interval: limiterErrorLogInterval}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := l.Take(c.Request().Context(), c.RealIP())
			if err != nil {
				metrics.RateLimitErrorsTotal.Inc()
				errLog.Do(func() {
					log.Warn().Err(err).Str("bucket", bucket).Msg("rate limiter unavailable, allowing requests")
				})
				return next(c)
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))

			if !d.Allowed {
				retry := max(int(d.RetryAfter.Round(time.Second)/time.Second), 1)
				h.Set(echo.HeaderRetryAfter, strconv.Itoa(retry))
				metrics.RateLimitedTotal.WithLabelValues(bucket).Inc()
				log.Warn().Str("bucket", bucket).Str("ip", c.RealIP()).Str("path", c.Path()).Msg("rate limit exceeded")
				return echo.ErrTooManyRequests
			}
			return next(c)
		}
	}
}

// WindowHitter counts hits per client in fixed windows. It returns the count
// so far in the current window and the time left until it resets.
type WindowHitter interface {
	Hit(ctx context.Context, bucket, client string, window time.Duration) (int64, time.Duration, error)
}

// WindowLimiter allows Requests hits per client in each fixed window. The
// counter decides where windows live: Redis shares them between API
// instances, MemoryWindow keeps them in this process.
type WindowLimiter struct {
	counter WindowHitter
	bucket  string
	limit   Limit
}

func NewWindowLimiter(counter WindowHitter, bucket string, limit Limit) *WindowLimiter {
	return &WindowLimiter{counter: counter, bucket: bucket, limit: limit}
}

func (w *WindowLimiter) Take(ctx context.Context, key string) (Decision, error) {
	count, ttl, err := w.counter.Hit(ctx, w.bucket, key, w.limit.Window)
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Allowed:    count <= int64(w.limit.Requests),
		Limit:      w.limit.Requests,
		Remaining:  max(w.limit.Requests-int(count), 0),
		RetryAfter: ttl,
	}, nil
}

const memorySweepInterval = 5 * time.Minute

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryWindow is the in-process WindowHitter used when no Redis is
// configured. The first hit for a key opens its window; the count resets
// only when that window has ended.
type MemoryWindow struct {
	mu        sync.Mutex
	windows   map[string]memoryWindow
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{
		windows:   make(map[string]memoryWindow),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (m *MemoryWindow) Hit(_ context.Context, bucket, client string, window time.Duration) (int64, time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	key := bucket + ":" + client
	w, ok := m.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = memoryWindow{resetAt: now.Add(window)}
	}
	w.count++
	m.windows[key] = w
	return w.count, w.resetAt.Sub(now), nil
}

// sweep drops ended windows at most once per interval. Callers hold m.mu.
func (m *MemoryWindow) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < memorySweepInterval {
		return
	}
	m.lastSweep = now
	for key, w := range m.windows {
		if !now.Before(w.resetAt) {
			delete(m.windows, key)
		}
	}
}
