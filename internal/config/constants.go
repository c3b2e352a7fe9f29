package config

import "time"

// Environment variable names
const (
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvSaveBackend     = "SAVE_BACKEND"
	EnvSaveDir         = "SAVE_DIR"
	EnvSaveSlot        = "SAVE_SLOT"
	EnvCompressSaves   = "COMPRESS_SAVES"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvCropCatalogPath = "CROP_CATALOG_PATH"
	EnvFarmLayoutPath  = "FARM_LAYOUT_PATH"
	EnvDays            = "DAYS"
	EnvDayInterval     = "DAY_INTERVAL"
	EnvAutoHarvest     = "AUTO_HARVEST"
	EnvMetricsAddr     = "METRICS_ADDR"
	EnvCacheSize       = "METADATA_CACHE_SIZE"
	EnvCacheTTL        = "METADATA_CACHE_TTL"
	EnvEventRetention  = "EVENT_RETENTION_DAYS"
)

// Save backends
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "cropsaver"
	DefaultVersion        = "dev"
	DefaultSaveBackend    = BackendBadger
	DefaultSaveDir        = "data/saves"
	DefaultDBUser         = "postgres"
	DefaultDBPassword     = "postgres"
	DefaultDBHost         = "localhost"
	DefaultDBPort         = "5432"
	DefaultDBName         = "cropsaver"
	DefaultDBMaxConns     = 4
	DefaultDays           = 0
	DefaultDayInterval    = 0 * time.Second
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 10 * time.Minute
	DefaultEventRetention = 30
)
