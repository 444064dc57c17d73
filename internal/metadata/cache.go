package metadata

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	version string
	ok      bool
}

// CachedProvider memoizes another provider. Concurrent lookups of the same key
// share one upstream call, and both hits and misses are cached until they expire.
type CachedProvider struct {
	next    Provider
	cache   *expirable.LRU[string, cacheEntry]
	group   singleflight.Group
	timeout time.Duration
}

// NewCachedProvider wraps next with an LRU of the given size and entry lifetime.
// Upstream lookups are detached from the caller and bounded by timeout.
func NewCachedProvider(next Provider, size int, ttl, timeout time.Duration) *CachedProvider {
	if size <= 0 {
		size = 1024
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CachedProvider{
		next:    next,
		cache:   expirable.NewLRU[string, cacheEntry](size, nil, ttl),
		timeout: timeout,
	}
}

// GetLatestVersion implements Provider.
func (c *CachedProvider) GetLatestVersion(ctx context.Context, packageManager, name string) (string, bool) {
	key := packageManager + "|" + name
	if entry, ok := c.cache.Get(key); ok {
		return entry.version, entry.ok
	}

	// the shared lookup outlives any single caller
	ch := c.group.DoChan(key, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		version, ok := c.next.GetLatestVersion(lookupCtx, packageManager, name)
		entry := cacheEntry{version: version, ok: ok}
		if lookupCtx.Err() == nil {
			c.cache.Add(key, entry)
		}
		return entry, nil
	})

	select {
	case res := <-ch:
		if res.Shared {
			logger.Sugar().Debugf("Deduplicated latest version lookup for %s", key)
		}
		entry := res.Val.(cacheEntry)
		return entry.version, entry.ok
	case <-ctx.Done():
		return "", false
	}
}
