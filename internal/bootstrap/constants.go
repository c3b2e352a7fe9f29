package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new session file
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting crop saver"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgCropEvent                  = "Crop event"
	LogMsgEventLogRegistered         = "Crop event journal registered"
	LogMsgEventLogSubscribeFailed    = "Failed to subscribe crop event journal"
)

// =============================================================================
// Storage and Engine
// =============================================================================

const (
	LogMsgStoreOpened       = "Save data store opened"
	LogMsgStoreClosed       = "Save data store closed"
	LogMsgCatalogLoaded     = "Crop catalog loaded"
	LogMsgWorldBuilt        = "Farm world built"
	ErrMsgUnknownBackend    = "unknown save backend"
	ErrMsgFailedOpenStore   = "failed to open save data store"
	ErrMsgFailedLoadCatalog = "failed to load crop catalog"
	ErrMsgFailedLoadLayout  = "failed to load farm layout"
	ErrMsgFailedBuildWorld  = "failed to build farm world"
	ErrMsgNoSaveLoaded      = "no save slot loaded"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgShutdownComplete     = "Shutdown complete"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgQuitFailed           = "Failed to return to title"
	LogMsgStoreCloseFailed     = "Save data store close failed"
)
