// Package ratelimit provides per-(client IP, route) admission control.
// Each pair gets its own token bucket: capacity is the route's requests
// per minute, refilled continuously at capacity/60 tokens per second.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	// per-route overrides: route path -> requests per minute
	perRoute   map[string]int
	defaultRPM int
}

// New creates a limiter with a global default and optional per-route
// overrides. An rpm of 0 or less means the route is unlimited.
func New(defaultRPM int, perRoute map[string]int) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*rate.Limiter),
		perRoute:   perRoute,
		defaultRPM: defaultRPM,
	}
}

// Allow reports whether one request from ip on route may proceed, and if
// so consumes a token. Buckets are created full on first use.
func (l *Limiter) Allow(ip, route string) bool {
	rpm := l.defaultRPM
	if v, ok := l.perRoute[route]; ok {
		rpm = v
	}
	if rpm <= 0 {
		return true
	}

	key := ip + "|" + route
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), rpm)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	return b.Allow()
}
