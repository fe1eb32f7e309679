package middleware

import (
	"encoding/json"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	perr "billnote/internal/platform/errors"
	"billnote/internal/platform/logger"
	pnet "billnote/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures RateLimit. PerSecond <= 0 disables limiting
type RateLimitOptions struct {
	PerSecond float64
	Burst     int           // defaults to ceil(PerSecond)
	IdleTTL   time.Duration // forget clients idle this long; defaults to 5m
}

// RateLimit applies a token bucket per client address (RemoteAddr, so install
// it after RealIP). Rejected requests get a 429 envelope and Retry-After
func RateLimit(o RateLimitOptions) func(stdhttp.Handler) stdhttp.Handler {
	if o.PerSecond <= 0 {
		return func(next stdhttp.Handler) stdhttp.Handler { return next }
	}
	lim := newLimiters(o, time.Now)
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			key := clientKey(r.RemoteAddr)
			if lim.allow(key) {
				next.ServeHTTP(w, r)
				return
			}
			logger.C(r.Context()).Debug().Str("client", key).Msg("rate limited")

			status, body := pnet.Error(perr.RateLimitedf("too many requests"), pnet.RequestID(r.Context()))
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(body)
		})
	}
}

func clientKey(remote string) string {
	if host, _, err := net.SplitHostPort(remote); err == nil {
		return host
	}
	return remote
}

type limiterEntry struct {
	lim  *rate.Limiter
	seen time.Time
}

type limiters struct {
	mu        sync.Mutex
	m         map[string]*limiterEntry
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiters(o RateLimitOptions, now func() time.Time) *limiters {
	burst := o.Burst
	if burst <= 0 {
		burst = int(o.PerSecond)
		if float64(burst) < o.PerSecond {
			burst++
		}
	}
	ttl := o.IdleTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &limiters{
		m:         map[string]*limiterEntry{},
		limit:     rate.Limit(o.PerSecond),
		burst:     burst,
		ttl:       ttl,
		lastSweep: now(),
		now:       now,
	}
}

func (l *limiters) allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) > l.ttl {
		for k, e := range l.m {
			if now.Sub(e.seen) > l.ttl {
				delete(l.m, k)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.m[key]
	if !ok {
		e = &limiterEntry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.m[key] = e
	}
	e.seen = now
	l.mu.Unlock()

	return e.lim.AllowN(now, 1)
}

func (l *limiters) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
