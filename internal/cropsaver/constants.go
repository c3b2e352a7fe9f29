package cropsaver

// Log messages
const (
	LogMsgDayEndingComplete     = "Day-end crop scan complete"
	LogMsgDayStartedComplete    = "Day-start crop scan complete"
	LogMsgCropDataUnavailable   = "Crop data unavailable, using defaults"
	LogMsgPlotFailed            = "Failed to process plot, skipping"
	LogMsgLocationFailed        = "Failed to scan location, skipping"
	LogMsgReleaseSkipped        = "A location failed before it could be named, keeping every unobserved record"
	LogMsgCropMarkedForDeath    = "Crop marked for death"
	LogMsgCropKilled            = "Killed out-of-season crop"
	LogMsgNoSaveData            = "No crop data for save slot, starting empty"
	LogMsgLoadFailed            = "Error loading crop data, starting empty"
	LogMsgDroppedMalformedKey   = "Dropped crop data entry with malformed location key"
	LogMsgCropDataLoaded        = "Crop data loaded"
	LogMsgSaveFailed            = "Error saving crop data"
	LogMsgCropDataSaved         = "Crop data saved"
	LogMsgSaveWithoutSlot       = "No save slot loaded, skipping crop data save"
	LogMsgCropDataReset         = "Crop data discarded"
	LogMsgLifecyclePayloadError = "Invalid lifecycle event payload"
	LogMsgEventPublishFailed    = "Failed to publish crop event"
)

// Crop event reasons
const (
	ReasonNewlyPlanted = "newly planted"
	ReasonReplaced     = "replaced"
	ReasonRemoved      = "removed"
	ReasonOutOfSeason  = "out of season"
)
