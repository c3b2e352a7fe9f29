package domain

import "slices"

// Season names as the host reports them (lowercase)
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonFall   = "fall"
	SeasonWinter = "winter"
)

// Seasons lists every season in calendar order
var Seasons = []string{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// IsSeason reports whether name is one of the four known seasons
func IsSeason(name string) bool {
	return slices.Contains(Seasons, name)
}

// NoRegrowth marks a crop type that does not regrow after harvest
const NoRegrowth = -1

// GrowthStage captures where a crop is in its growth cycle
type GrowthStage struct {
	CurrentPhase       int   `json:"current_phase"`
	DayOfCurrentPhase  int   `json:"day_of_current_phase"`
	FullyGrown         bool  `json:"fully_grown"`
	PhaseDays          []int `json:"phase_days"`
	OriginalRegrowDays int   `json:"original_regrow_days"`
}

// GrowthSnapshot is a point-in-time capture of a crop's observable fields.
// Snapshots are rebuilt on every scan and never modified afterwards.
type GrowthSnapshot struct {
	Stage            GrowthStage `json:"growth_stage"`
	RowInSpriteSheet int         `json:"row_in_sprite_sheet"`
	Dead             bool        `json:"dead"`
	ForageCrop       bool        `json:"forage_crop"`
	WhichForageCrop  int         `json:"which_forage_crop"`
}

// Grown reports whether the crop has reached its final growth phase
func (s GrowthSnapshot) Grown() bool {
	return s.Stage.CurrentPhase >= len(s.Stage.PhaseDays)-1
}

// Harvestable reports whether the crop can be picked right now: it is in its
// final phase and has either never been harvested or finished regrowing.
// After the first harvest DayOfCurrentPhase counts down to zero.
func (s GrowthSnapshot) Harvestable() bool {
	return s.Grown() && (s.Stage.DayOfCurrentPhase <= 0 || !s.Stage.FullyGrown)
}

// Regrown reports whether the crop is in its final phase but still regrowing
// after a harvest
func (s GrowthSnapshot) Regrown() bool {
	return s.Grown() && !s.Harvestable()
}

// TrackedCrop is the durable state kept for a player-planted crop
type TrackedCrop struct {
	MarkedForDeath              bool     `json:"marked_for_death"`
	OriginalSeasons             []string `json:"original_seasons_to_grow_in"`
	ExistedInIncompatibleSeason bool     `json:"has_existed_in_incompatible_season"`
	OriginalRegrowDays          int      `json:"original_regrow_after_harvest"`
	HarvestableLastNight        bool     `json:"harvestable_last_night"`
}

// GrowsIn reports whether season was one of the crop's original valid seasons
func (c TrackedCrop) GrowsIn(season string) bool {
	return slices.Contains(c.OriginalSeasons, season)
}

// CropMetadata is the canonical data for a crop type
type CropMetadata struct {
	Seasons    []string `json:"seasons"`
	RegrowDays int      `json:"regrow_days"`
}

// DefaultCropMetadata is used when a crop type's data cannot be resolved
func DefaultCropMetadata() CropMetadata {
	return CropMetadata{
		Seasons:    []string{},
		RegrowDays: NoRegrowth,
	}
}
