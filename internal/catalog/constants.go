package catalog

import "time"

// CacheSchemaVersion versions cached metadata entries. Bump it when
// domain.CropMetadata changes shape so stale entries are dropped.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Minute
)

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read crop catalog %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse crop catalog: %w"
	ErrMsgCatalogSchema      = "crop catalog %s failed schema validation: %w"
	ErrMsgNoCropsDefined     = "no crops defined"
	ErrFmtCropAtIndexNoKind  = "%w: crop at index %d has no kind"
	ErrFmtDuplicateKind      = "%w: duplicate crop kind '%s'"
	ErrFmtUnknownSeason      = "%w: crop '%s' has unknown season '%s'"
	ErrFmtNoPhases           = "%w: crop '%s' has no growth phases"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Crop catalog loaded"
)
