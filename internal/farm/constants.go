package farm

import "errors"

// DaysPerSeason is the length of every season
const DaysPerSeason = 28

// FinalPhaseDays is the length of the harvest phase appended after a crop's
// growth phases. A crop never leaves it by growing.
const FinalPhaseDays = 99999

// Sentinel errors for player actions
var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownCropKind = errors.New("unknown crop kind")
	ErrOutOfBounds     = errors.New("tile outside tilled area")
	ErrTileOccupied    = errors.New("tile already has a crop")
	ErrEmptyTile       = errors.New("tile has no crop")
	ErrNotHarvestable  = errors.New("crop is not ready to harvest")
	ErrNotForage       = errors.New("crop kind is not a forage crop")
	ErrInvalidLayout   = errors.New("invalid farm layout")
)

// Error formats
const (
	ErrFmtReadLayout  = "failed to read farm layout %s: %w"
	ErrFmtParseLayout = "failed to parse farm layout: %w"
)
