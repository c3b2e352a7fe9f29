package postgres

// Error messages
const (
	ErrMsgReadSaveDataFailed  = "failed to read save data for slot %q: %w"
	ErrMsgWriteSaveDataFailed = "failed to write save data for slot %q: %w"
	ErrMsgListSlotsFailed     = "failed to list save slots: %w"
	ErrMsgLogEventFailed      = "failed to journal crop event: %w"
	ErrMsgGetEventsFailed     = "failed to query crop events: %w"
)
