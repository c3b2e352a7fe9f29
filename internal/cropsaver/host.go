package cropsaver

import "github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"

// World is the host's view of the currently loaded game locations
type World interface {
	Locations() []Location
	// CurrentSeason returns the lowercase season name, e.g. "spring"
	CurrentSeason() string
}

// Location is a loaded game location
type Location interface {
	// Name returns the unique name of the location (NameOrUniqueName in the host)
	Name() string
	IsOutdoors() bool
	// SeedsIgnoreSeasons reports whether crops here grow year round
	SeedsIgnoreSeasons() bool
	IsIsland() bool
	// Plots returns every tilled soil tile; tiles without a crop have a nil Crop
	Plots() []Plot
}

// Plot is a tilled soil tile and the crop growing in it, if any
type Plot struct {
	TileX int
	TileY int
	Crop  Crop
}

// Crop is a live crop object owned by the host. The saver only reads its
// fields and, when a crop must die, calls Kill.
type Crop interface {
	// Kind identifies the crop type for metadata lookups
	Kind() string
	RowInSpriteSheet() int
	Dead() bool
	ForageCrop() bool
	// WhichForageCrop is the host's forage id; non-numeric values read as 0
	WhichForageCrop() string
	CurrentPhase() int
	DayOfCurrentPhase() int
	FullyGrown() bool
	PhaseDays() []int
	Kill()
}

// CropDataProvider resolves canonical crop type data
type CropDataProvider interface {
	// CropData returns the valid seasons and regrow interval for kind.
	// Returns domain.ErrCropDataNotFound when kind is unknown.
	CropData(kind string) (domain.CropMetadata, error)
}

// protectable reports whether seasonal crop death applies at loc
func protectable(loc Location) bool {
	return loc.IsOutdoors() && !loc.SeedsIgnoreSeasons() && !loc.IsIsland()
}
