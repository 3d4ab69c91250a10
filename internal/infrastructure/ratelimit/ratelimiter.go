// Package ratelimit provides request throttling for abuse-prone endpoints.
package ratelimit

import "time"

// RateLimitConfig holds the per-window request limits. A limit of zero or
// less disables that window.
type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// RateLimiter decides whether a keyed request may proceed.
type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
}
