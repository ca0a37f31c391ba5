// Package ratelimit provides per-client request limiters behind a small
// interface so the backing store can be swapped: in-memory for a single
// instance, redis when several instances share one budget.
package ratelimit

type Limiter interface {
	// Allow reports whether one more event for key fits the budget.
	Allow(key string) bool
}
