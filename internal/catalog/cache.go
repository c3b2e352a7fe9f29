package catalog

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
)

// Provider resolves crop metadata by kind
type Provider interface {
	CropData(kind string) (domain.CropMetadata, error)
}

type cachedEntry struct {
	Version  string
	Metadata domain.CropMetadata
	CachedAt time.Time
}

// CachedProvider memoises a Provider with a size- and time-bounded LRU.
// Lookup errors are not cached.
type CachedProvider struct {
	next Provider
	lru  *expirable.LRU[string, *cachedEntry]
}

// NewCachedProvider wraps next. Non-positive size or ttl use the defaults.
func NewCachedProvider(next Provider, size int, ttl time.Duration) *CachedProvider {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{
		next: next,
		lru:  expirable.NewLRU[string, *cachedEntry](size, nil, ttl),
	}
}

// CropData returns cached metadata for kind, consulting the wrapped provider on a miss
func (p *CachedProvider) CropData(kind string) (domain.CropMetadata, error) {
	if entry, ok := p.lru.Get(kind); ok {
		if entry.Version == CacheSchemaVersion {
			metrics.MetadataCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return cloneMetadata(entry.Metadata), nil
		}
		p.lru.Remove(kind)
	}
	metrics.MetadataCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	meta, err := p.next.CropData(kind)
	if err != nil {
		return domain.CropMetadata{}, err
	}

	p.lru.Add(kind, &cachedEntry{
		Version:  CacheSchemaVersion,
		Metadata: cloneMetadata(meta),
		CachedAt: time.Now(),
	})
	return meta, nil
}

// Purge drops every cached entry
func (p *CachedProvider) Purge() {
	p.lru.Purge()
}

// Len returns the number of cached entries
func (p *CachedProvider) Len() int {
	return p.lru.Len()
}

func cloneMetadata(meta domain.CropMetadata) domain.CropMetadata {
	meta.Seasons = slices.Clone(meta.Seasons)
	return meta
}
