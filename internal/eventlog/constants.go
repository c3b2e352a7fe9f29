package eventlog

import "time"

// Retention defaults
const (
	DefaultRetentionDays  = 30
	DefaultCleanupEvery   = time.Hour
	DefaultMemoryCapacity = 10_000
	DefaultQueryLimit     = 100
	MaxQueryLimit         = 1000
	CleanupJobName        = "crop_event_cleanup"
)

// Log messages - service events
const (
	LogMsgEventPayloadInvalid = "Crop event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent    = "Failed to journal crop event"
	LogMsgEventLogged         = "Crop event journaled"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting    = "Starting crop event cleanup job"
	LogMsgCleanupJobFailed      = "Crop event cleanup failed"
	LogMsgCleanupJobCompleted   = "Crop event cleanup completed"
	LogMsgCleanupJobNothingToDo = "Crop event journal already within retention"
)

// Log field keys
const (
	LogFieldType          = "type"
	LogFieldSlot          = "slot"
	LogFieldLocation      = "location"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldCutoff        = "cutoff"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
