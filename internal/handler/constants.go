package handler

// Log messages
const (
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgReadSlotFailed  = "Failed to read crop data for slot"
	LogMsgListSlotsFailed = "Failed to list save slots"
	LogMsgGetEventsFailed = "Failed to query crop events"
)

// Health statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// URL parameters
const (
	ParamSlot     = "slot"
	ParamLocation = "location"
	ParamType     = "type"
	ParamLimit    = "limit"
	ParamSince    = "since"
)
