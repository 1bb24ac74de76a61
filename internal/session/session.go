// Package session keeps live login tokens in memory.
package session

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"pizzametrics/internal/config"
)

// Store maps session tokens to user ids. Entries expire after the configured
// TTL; a restart logs everyone out.
type Store struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func New(cfg *config.SessionConfig) (*Store, error) {
	maxCost := max(1, int64(1)<<cfg.MaxSizePow2)
	numCounters := max(1, maxCost/50) // ~50 bytes per token entry

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &Store{cache: cache, ttl: cfg.TTL}, nil
}

// Put stores the session and waits until it is visible to Lookup. It
// reports false when the cache rejected the entry.
func (s *Store) Put(token string, userID int64) bool {
	cost := int64(len(token) + 8)
	ok := s.cache.SetWithTTL(token, userID, cost, s.ttl)
	s.cache.Wait()
	if !ok {
		return false
	}
	_, found := s.cache.Get(token)
	return found
}

func (s *Store) Lookup(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	val, found := s.cache.Get(token)
	if !found {
		return 0, false
	}
	id, ok := val.(int64)
	return id, ok
}

func (s *Store) Revoke(token string) {
	s.cache.Del(token)
	s.cache.Wait()
}

func (s *Store) Close() {
	s.cache.Close()
}

func (s *Store) Stats() (hits, misses uint64, ratio float64) {
	metrics := s.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
