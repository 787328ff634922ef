package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/menuwise/menu-intelligence-api/internal/api/shared"
)

// clientWindowTTL is how long an idle client keeps its window record before
// it is pruned.
const clientWindowTTL = 3 * time.Minute

// RateLimiter enforces a fixed per-client quota: at most limit requests per
// window, counted against the fixed window opened by the client's first
// request. No mid-window credit accrues, so the limit+1th request inside a
// window is always rejected regardless of spacing. Counters live in memory
// only; restarting the process resets them. Over-quota requests are rejected
// outright, never queued.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration

	// now is swapped out by tests.
	now func() time.Time
}

type clientWindow struct {
	start    time.Time
	count    int
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute requests per
// client per one-minute window.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   requestsPerMinute,
		window:  time.Minute,
		now:     time.Now,
	}
}

// Handler wraps next with the admission check. The client key is the remote
// IP; chi's RealIP middleware runs earlier in the chain so proxied requests
// resolve to the originating address.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			shared.RespondWithError(w, r, http.StatusTooManyRequests,
				"Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Allow reports whether the client identified by key may proceed, counting
// the request against its current window when it may.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.pruneLocked(now)

	client, ok := rl.clients[key]
	if !ok || now.Sub(client.start) >= rl.window {
		client = &clientWindow{start: now}
		rl.clients[key] = client
	}
	client.lastSeen = now

	if client.count >= rl.limit {
		return false
	}
	client.count++
	return true
}

// pruneLocked drops window records idle past the TTL. Callers hold mu.
func (rl *RateLimiter) pruneLocked(now time.Time) {
	for key, client := range rl.clients {
		if now.Sub(client.lastSeen) > clientWindowTTL {
			delete(rl.clients, key)
		}
	}
}

// clientKey extracts the client address from the request, dropping the port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
