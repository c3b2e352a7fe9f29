package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// locationKeySeparator joins the three parts of a persisted location key
const locationKeySeparator = "|"

// LocationKey identifies a soil plot: the location it lives in and its tile.
// It is comparable and used directly as a map key.
type LocationKey struct {
	LocationName string `json:"location_name"`
	TileX        int    `json:"tile_x"`
	TileY        int    `json:"tile_y"`
}

// String returns the persisted form "LocationName|TileX|TileY"
func (k LocationKey) String() string {
	return k.LocationName + locationKeySeparator + strconv.Itoa(k.TileX) + locationKeySeparator + strconv.Itoa(k.TileY)
}

// LocationKeyPrefix returns the prefix shared by the persisted keys of every plot in location
func LocationKeyPrefix(location string) string {
	return location + locationKeySeparator
}

// ParseLocationKey parses the "LocationName|TileX|TileY" form back into a LocationKey
func ParseLocationKey(value string) (LocationKey, error) {
	if value == "" {
		return LocationKey{}, fmt.Errorf("%w: empty value", ErrMalformedLocationKey)
	}

	parts := strings.Split(value, locationKeySeparator)
	if len(parts) != 3 {
		return LocationKey{}, fmt.Errorf("%w: %q, expected LocationName|TileX|TileY", ErrMalformedLocationKey, value)
	}

	tileX, err := strconv.Atoi(parts[1])
	if err != nil {
		return LocationKey{}, fmt.Errorf("%w: invalid tile x %q", ErrMalformedLocationKey, parts[1])
	}

	tileY, err := strconv.Atoi(parts[2])
	if err != nil {
		return LocationKey{}, fmt.Errorf("%w: invalid tile y %q", ErrMalformedLocationKey, parts[2])
	}

	return LocationKey{
		LocationName: parts[0],
		TileX:        tileX,
		TileY:        tileY,
	}, nil
}
