package ratelimit

import (
	"sync"
	"time"
)

// WindowStore counts events per key in fixed windows: at most max events
// are accepted per key until the window elapses, then the count resets.
// Used for the contact form tier where the cap must hold for the whole
// window.
type WindowStore struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	count       int
	windowStart time.Time
}

func NewWindowStore(max int, window time.Duration) *WindowStore {
	return &WindowStore{
		max:     max,
		window:  window,
		entries: map[string]*windowEntry{},
		now:     time.Now,
	}
}

func (s *WindowStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok || now.Sub(e.windowStart) >= s.window {
		s.entries[key] = &windowEntry{count: 1, windowStart: now}
		s.dropExpired(now)
		return true
	}

	if e.count >= s.max {
		return false
	}
	e.count++
	return true
}

// dropExpired prunes stale keys opportunistically; called with the lock
// held whenever a window rolls over.
func (s *WindowStore) dropExpired(now time.Time) {
	for k, e := range s.entries {
		if now.Sub(e.windowStart) >= s.window {
			delete(s.entries, k)
		}
	}
}
