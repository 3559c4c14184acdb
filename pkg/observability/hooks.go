// Package observability provides hooks for metrics and tracing of the
// layout engine.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about overhead probes, width and height
// negotiation, and render-cache hits.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are invoked synchronously from the render path, once per row per
// frame at most, so implementations must be cheap.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run the render loop
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Cache().OnCacheHit(row, observability.DimWidth)
package observability

import (
	"sync"
)

// Dimensions reported by cache hooks.
const (
	DimWidth  = "width"
	DimHeight = "height"
)

// =============================================================================
// Negotiation Hooks
// =============================================================================

// NegotiationHooks receives events from the width and height negotiators.
type NegotiationHooks interface {
	// OnOverheadProbe records a disposable probe render.
	OnOverheadProbe(kind string, overhead int)

	// OnRowWidth records a width negotiation for one row. degraded is true
	// when the auto share was clamped to the minimum canvas width.
	OnRowWidth(row, width int, degraded bool)

	// OnHeights records a joint height negotiation for a grid.
	OnHeights(heights []int)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the render cache.
type CacheHooks interface {
	// OnCacheHit records a row whose stored allocation was reused.
	OnCacheHit(row int, dim string)

	// OnCacheMiss records a row negotiated for the first time.
	OnCacheMiss(row int, dim string)

	// OnCacheRefresh records a row renegotiated after a signature change.
	OnCacheRefresh(row int, dim string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopNegotiationHooks is a no-op implementation of NegotiationHooks.
type NoopNegotiationHooks struct{}

func (NoopNegotiationHooks) OnOverheadProbe(string, int) {}
func (NoopNegotiationHooks) OnRowWidth(int, int, bool)   {}
func (NoopNegotiationHooks) OnHeights([]int)             {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(int, string)     {}
func (NoopCacheHooks) OnCacheMiss(int, string)    {}
func (NoopCacheHooks) OnCacheRefresh(int, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	negotiationHooks NegotiationHooks = NoopNegotiationHooks{}
	cacheHooks       CacheHooks       = NoopCacheHooks{}
	hooksMu          sync.RWMutex
)

// SetNegotiationHooks registers custom negotiation hooks.
// This should be called once at application startup before any render.
func SetNegotiationHooks(h NegotiationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		negotiationHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any render.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Negotiation returns the registered negotiation hooks.
func Negotiation() NegotiationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return negotiationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	negotiationHooks = NoopNegotiationHooks{}
	cacheHooks = NoopCacheHooks{}
}
