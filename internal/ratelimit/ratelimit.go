package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"homefinder/internal/middleware"
)

// RateLimiter enforces sliding-window request limits per client. Write
// endpoints (enquiries, uploads, seeding) sit behind it so one client
// cannot flood the platform.
type RateLimiter struct {
	requestsPerMinute int
	requestsPerHour   int
	enabled           bool

	clients   map[string]*clientWindows
	nextSweep time.Time
	mu        sync.Mutex
}

// sweepInterval bounds how often idle clients are scanned for eviction.
const sweepInterval = 10 * time.Minute

type clientWindows struct {
	minuteWindow []time.Time
	hourWindow   []time.Time
}

// NewRateLimiter creates a new rate limiter with the given limits
func NewRateLimiter(requestsPerMinute, requestsPerHour int, enabled bool) *RateLimiter {
	return &RateLimiter{
		requestsPerMinute: requestsPerMinute,
		requestsPerHour:   requestsPerHour,
		enabled:           enabled,
		clients:           make(map[string]*clientWindows),
	}
}

// AllowRequest checks if a request from the given client is allowed
// Returns true if allowed, false if rate limit exceeded
func (rl *RateLimiter) AllowRequest(clientKey string) bool {
	if !rl.enabled {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.After(rl.nextSweep) {
		rl.sweep(now)
		rl.nextSweep = now.Add(sweepInterval)
	}

	cw, ok := rl.clients[clientKey]
	if !ok {
		cw = &clientWindows{}
		rl.clients[clientKey] = cw
	}

	// Clean up old entries
	cw.minuteWindow = filterTimes(cw.minuteWindow, now.Add(-1*time.Minute))
	cw.hourWindow = filterTimes(cw.hourWindow, now.Add(-1*time.Hour))

	// Check limits
	if rl.requestsPerMinute > 0 && len(cw.minuteWindow) >= rl.requestsPerMinute {
		return false
	}
	if rl.requestsPerHour > 0 && len(cw.hourWindow) >= rl.requestsPerHour {
		return false
	}

	// Record the request
	cw.minuteWindow = append(cw.minuteWindow, now)
	cw.hourWindow = append(cw.hourWindow, now)

	return true
}

// sweep drops clients with no requests left in either window so the map
// does not grow with every address that ever hit the API. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	hourCutoff := now.Add(-1 * time.Hour)
	for key, cw := range rl.clients {
		cw.minuteWindow = filterTimes(cw.minuteWindow, now.Add(-1*time.Minute))
		cw.hourWindow = filterTimes(cw.hourWindow, hourCutoff)
		if len(cw.minuteWindow) == 0 && len(cw.hourWindow) == 0 {
			delete(rl.clients, key)
		}
	}
}

// filterTimes keeps only times after the cutoff
func filterTimes(times []time.Time, cutoff time.Time) []time.Time {
	result := make([]time.Time, 0, len(times))
	for _, t := range times {
		if t.After(cutoff) {
			result = append(result, t)
		}
	}
	return result
}

// Stats contains rate limiter statistics for a client
type Stats struct {
	Enabled             bool `json:"enabled"`
	RequestsLastMinute  int  `json:"requests_last_minute"`
	RequestsLastHour    int  `json:"requests_last_hour"`
	LimitPerMinute      int  `json:"limit_per_minute"`
	LimitPerHour        int  `json:"limit_per_hour"`
	RemainingThisMinute int  `json:"remaining_this_minute"`
	RemainingThisHour   int  `json:"remaining_this_hour"`
}

// GetStats returns current rate limiter statistics for a client
func (rl *RateLimiter) GetStats(clientKey string) Stats {
	if !rl.enabled {
		return Stats{Enabled: false}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cw, ok := rl.clients[clientKey]
	if !ok {
		cw = &clientWindows{}
	}
	cw.minuteWindow = filterTimes(cw.minuteWindow, now.Add(-1*time.Minute))
	cw.hourWindow = filterTimes(cw.hourWindow, now.Add(-1*time.Hour))

	return Stats{
		Enabled:             true,
		RequestsLastMinute:  len(cw.minuteWindow),
		RequestsLastHour:    len(cw.hourWindow),
		LimitPerMinute:      rl.requestsPerMinute,
		LimitPerHour:        rl.requestsPerHour,
		RemainingThisMinute: max(0, rl.requestsPerMinute-len(cw.minuteWindow)),
		RemainingThisHour:   max(0, rl.requestsPerHour-len(cw.hourWindow)),
	}
}

// Reset clears all tracked requests (useful for testing)
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.clients = make(map[string]*clientWindows)
}

// Middleware keys requests by authenticated user when present, falling back
// to the client IP for anonymous traffic.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := middleware.UserID(c)
		if !ok {
			key = c.ClientIP()
		}
		if !rl.AllowRequest(key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
