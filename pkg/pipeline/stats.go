package pipeline

import (
	"sync/atomic"

	"github.com/matzehuels/termgrid/pkg/observability"
)

// CacheStats counts render-cache events. Register it with
// observability.SetCacheHooks.
type CacheStats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	refreshes atomic.Int64
}

var _ observability.CacheHooks = (*CacheStats)(nil)

func (s *CacheStats) OnCacheHit(int, string)     { s.hits.Add(1) }
func (s *CacheStats) OnCacheMiss(int, string)    { s.misses.Add(1) }
func (s *CacheStats) OnCacheRefresh(int, string) { s.refreshes.Add(1) }

// Hits returns the number of row dimensions served from the cache.
func (s *CacheStats) Hits() int64 { return s.hits.Load() }

// Misses returns the number of first-time negotiations.
func (s *CacheStats) Misses() int64 { return s.misses.Load() }

// Refreshes returns the number of renegotiations after a signature change.
func (s *CacheStats) Refreshes() int64 { return s.refreshes.Load() }

// HitRate returns hits over all lookups, or 0 before the first lookup.
func (s *CacheStats) HitRate() float64 {
	total := s.Hits() + s.Misses() + s.Refreshes()
	if total == 0 {
		return 0
	}
	return float64(s.Hits()) / float64(total)
}
