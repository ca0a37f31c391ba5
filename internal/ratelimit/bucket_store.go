package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// BucketStore maintains per-key token-bucket limiters and performs
// periodic cleanup of idle entries. Used for the global request tier.
type BucketStore struct {
	mu              sync.Mutex
	limit           rate.Limit
	burst           int
	clients         map[string]*clientEntry
	cleanupInterval time.Duration
	stopCh          chan struct{}
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewBucketStore allows up to max events per window for each key, with
// burst capacity max.
func NewBucketStore(max int, window time.Duration, cleanupInterval time.Duration) *BucketStore {
	if max <= 0 {
		max = 1
	}
	s := &BucketStore{
		limit:           rate.Every(window / time.Duration(max)),
		burst:           max,
		clients:         map[string]*clientEntry{},
		cleanupInterval: cleanupInterval,
		stopCh:          make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *BucketStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * s.cleanupInterval)
			s.mu.Lock()
			for k, v := range s.clients {
				if v.lastSeen.Before(cutoff) {
					delete(s.clients, k)
				}
			}
			s.mu.Unlock()
		case <-s.stopCh:
			return
		}
	}
}

// Stop stops internal goroutines (useful for tests).
func (s *BucketStore) Stop() {
	close(s.stopCh)
}

func (s *BucketStore) getLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.clients[key]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}
	limiter := rate.NewLimiter(s.limit, s.burst)
	s.clients[key] = &clientEntry{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (s *BucketStore) Allow(key string) bool {
	return s.getLimiter(key).Allow()
}
