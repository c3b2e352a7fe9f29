package validation

// Error messages
const (
	ErrMsgReadDataFailed         = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFailed       = "failed to load schema %s: %w"
	ErrMsgParseDataFailed        = "failed to parse JSON data: %w"
	ErrMsgSchemaValidationFailed = "schema validation failed"
)
