package cropsaver

import (
	"slices"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// NewTrackedCrop creates the record for a crop first seen at a plot
func NewTrackedCrop(meta domain.CropMetadata) domain.TrackedCrop {
	seasons := slices.Clone(meta.Seasons)
	if seasons == nil {
		seasons = []string{}
	}

	return domain.TrackedCrop{
		MarkedForDeath:              false,
		OriginalSeasons:             seasons,
		ExistedInIncompatibleSeason: false,
		OriginalRegrowDays:          meta.RegrowDays,
		HarvestableLastNight:        false,
	}
}

// RecordHarvestableTonight stores whether the crop can be picked tonight.
// The next morning this decides whether an out-of-season crop gets one more harvest.
func RecordHarvestableTonight(rec domain.TrackedCrop, tonight domain.GrowthSnapshot) domain.TrackedCrop {
	rec.HarvestableLastNight = tonight.Harvestable()
	return rec
}

// StartDay applies the morning season rules. Both flags only ever go from
// false to true; a crop marked for death stays marked.
func StartDay(rec domain.TrackedCrop, season string) domain.TrackedCrop {
	if !rec.GrowsIn(season) {
		rec.ExistedInIncompatibleSeason = true
	}

	// Out of season and not ready last night: no more harvests for this crop.
	// A crop that was ready when the season turned keeps it until it is picked.
	if rec.ExistedInIncompatibleSeason && !rec.HarvestableLastNight {
		rec.MarkedForDeath = true
	}

	return rec
}
