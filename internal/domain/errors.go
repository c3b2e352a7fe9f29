package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Location errors
	ErrMsgMalformedLocationKey = "malformed location key"

	// Crop data errors
	ErrMsgCropDataNotFound = "crop data not found"

	// Save data errors
	ErrMsgSaveDataNotFound = "save data not found"
	ErrMsgCorruptSaveData  = "corrupt save data"

	// Configuration errors
	ErrMsgInvalidConfig = "invalid configuration"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrMalformedLocationKey = errors.New(ErrMsgMalformedLocationKey)

	ErrCropDataNotFound = errors.New(ErrMsgCropDataNotFound)

	ErrSaveDataNotFound = errors.New(ErrMsgSaveDataNotFound)
	ErrCorruptSaveData  = errors.New(ErrMsgCorruptSaveData)

	ErrInvalidConfig = errors.New(ErrMsgInvalidConfig)
)
