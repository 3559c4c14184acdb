package layout

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/termgrid/pkg/cache"
	"github.com/matzehuels/termgrid/pkg/observability"
)

// RenderCache holds the negotiated allocation of every row across the frames
// of one animation session.
//
// Each row moves from Unset to Cached on first use and stays Cached for the
// cache's lifetime. A Cached row is reused while its signature vector is
// unchanged and renegotiated, alone, when it changes. Terminal size changes
// do not invalidate anything.
//
// A RenderCache belongs to the loop that created it and is not safe for
// concurrent use.
type RenderCache struct {
	id        string
	store     cache.Store
	logger    *log.Logger
	lastLines int

	// stateless caches back one-shot renders and report no cache events.
	stateless bool
}

// CacheOption configures a RenderCache.
type CacheOption func(*RenderCache)

// WithStore replaces the in-memory slot store.
func WithStore(s cache.Store) CacheOption {
	return func(c *RenderCache) { c.store = s }
}

// WithLogger sets the logger negotiation events are written to at debug level.
func WithLogger(l *log.Logger) CacheOption {
	return func(c *RenderCache) { c.logger = l }
}

// statelessCache makes a cache that retains nothing and stays silent on
// the cache hooks.
func statelessCache(logger *log.Logger) *RenderCache {
	c := NewRenderCache(WithStore(cache.NewNullStore()), WithLogger(logger))
	c.stateless = true
	return c
}

// NewRenderCache creates an empty cache backed by a cache.MemoryStore.
func NewRenderCache(opts ...CacheOption) *RenderCache {
	c := &RenderCache{
		id:    uuid.NewString(),
		store: cache.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store == nil {
		c.store = cache.NewNullStore()
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return c
}

// ID returns the session identifier used in log lines.
func (c *RenderCache) ID() string { return c.id }

// LastLines returns the line count of the last frame rendered through this
// cache, for callers that redraw in place.
func (c *RenderCache) LastLines() int { return c.lastLines }

// Rows returns the number of rows with a cached allocation.
func (c *RenderCache) Rows() int { return c.store.Len() }

func (c *RenderCache) cacheHooks() observability.CacheHooks {
	if c.stateless {
		return observability.NoopCacheHooks{}
	}
	return observability.Cache()
}

// Allocation returns the stored allocation for a row.
func (c *RenderCache) Allocation(row int) (cache.Allocation, bool) {
	return c.store.Load(row)
}

// ResolveRowWidth returns the auto width for row rowIndex, negotiating only
// when the row has no cached width or its signatures changed.
func (c *RenderCache) ResolveRowWidth(rowIndex int, row Row, termWidth int) (int, error) {
	sigs := toUint64(RowSignatures(row))
	alloc, ok := c.store.Load(rowIndex)
	if ok && alloc.HasWidth && alloc.Matches(sigs) {
		c.cacheHooks().OnCacheHit(rowIndex, observability.DimWidth)
		return alloc.Width, nil
	}

	width, degraded := 0, false
	if row.autoWidthCount() > 0 {
		overheads, err := measureRow(row)
		if err != nil {
			return 0, err
		}
		width, degraded = negotiateRowWidth(row, overheads, termWidth)
		c.logger.Debug("negotiated row width",
			"session", c.id, "row", rowIndex, "width", width, "overheads", overheads, "degraded", degraded)
	}
	observability.Negotiation().OnRowWidth(rowIndex, width, degraded)
	c.record(rowIndex, ok, alloc, sigs, alloc.Width > 0, observability.DimWidth)

	if ok && !alloc.Matches(sigs) {
		alloc.HasHeight = false
	}
	alloc.Width, alloc.HasWidth = width, true
	alloc.Signatures = sigs
	c.store.Save(rowIndex, alloc)
	return width, nil
}

// ResolveHeights returns the canvas height of every row. When any row is
// Unset or has changed signatures the grid is negotiated jointly, but only
// those rows take the new heights; the others keep their cached ones.
func (c *RenderCache) ResolveHeights(rows []Row, termHeight int) []int {
	heights := make([]int, len(rows))
	sigs := make([][]uint64, len(rows))
	allocs := make([]cache.Allocation, len(rows))
	found := make([]bool, len(rows))
	var stale []int

	for i, row := range rows {
		sigs[i] = toUint64(RowSignatures(row))
		allocs[i], found[i] = c.store.Load(i)
		if found[i] && allocs[i].HasHeight && allocs[i].Matches(sigs[i]) {
			c.cacheHooks().OnCacheHit(i, observability.DimHeight)
			heights[i] = allocs[i].Height
			continue
		}
		stale = append(stale, i)
	}
	if len(stale) == 0 {
		return heights
	}

	fresh := NegotiateHeights(rows, termHeight)
	observability.Negotiation().OnHeights(fresh)
	c.logger.Debug("negotiated heights", "session", c.id, "heights", fresh, "stale", stale)

	for _, i := range stale {
		alloc := allocs[i]
		c.record(i, found[i], alloc, sigs[i], alloc.Height > 0, observability.DimHeight)
		if found[i] && !alloc.Matches(sigs[i]) {
			alloc.HasWidth = false
		}
		alloc.Height, alloc.HasHeight = fresh[i], true
		alloc.Signatures = sigs[i]
		c.store.Save(i, alloc)
		heights[i] = fresh[i]
	}
	return heights
}

// record reports a miss or refresh for a dimension that was not served from
// the cache. negotiatedBefore tells an invalidated dimension apart from one
// that was never negotiated in an existing slot.
func (c *RenderCache) record(row int, found bool, alloc cache.Allocation, sigs []uint64, negotiatedBefore bool, dim string) {
	switch {
	case !found:
		c.cacheHooks().OnCacheMiss(row, dim)
	case !alloc.Matches(sigs) || negotiatedBefore:
		c.cacheHooks().OnCacheRefresh(row, dim)
		c.logger.Debug("signature changed", "session", c.id, "row", row, "dim", dim)
	default:
		c.cacheHooks().OnCacheMiss(row, dim)
	}
}
