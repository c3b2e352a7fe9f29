package cropsaver

import (
	"slices"
	"strconv"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

// takeSnapshot captures the crop's current growth fields
func takeSnapshot(crop Crop, regrowDays int) domain.GrowthSnapshot {
	return domain.GrowthSnapshot{
		Stage: domain.GrowthStage{
			CurrentPhase:       crop.CurrentPhase(),
			DayOfCurrentPhase:  crop.DayOfCurrentPhase(),
			FullyGrown:         crop.FullyGrown(),
			PhaseDays:          slices.Clone(crop.PhaseDays()),
			OriginalRegrowDays: regrowDays,
		},
		RowInSpriteSheet: crop.RowInSpriteSheet(),
		Dead:             crop.Dead(),
		ForageCrop:       crop.ForageCrop(),
		WhichForageCrop:  forageKind(crop.WhichForageCrop()),
	}
}

func forageKind(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
