package cropsaver

import "github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"

// SameCrop reports whether two snapshots taken at the same plot are the same
// physical crop. Crops differ when their sprite rows, dead flags, forage flags,
// forage kinds or phases differ, or when their days in the current phase differ.
// The day check is waived when one snapshot is harvestable and the other is
// regrowing: harvesting a regrowing crop resets its day counter within the day.
func SameCrop(a, b domain.GrowthSnapshot) bool {
	if a.RowInSpriteSheet != b.RowInSpriteSheet ||
		a.Dead != b.Dead ||
		a.ForageCrop != b.ForageCrop ||
		a.WhichForageCrop != b.WhichForageCrop ||
		a.Stage.CurrentPhase != b.Stage.CurrentPhase {
		return false
	}

	if a.Stage.DayOfCurrentPhase == b.Stage.DayOfCurrentPhase {
		return true
	}

	harvestedBetween := (a.Harvestable() && b.Regrown()) || (a.Regrown() && b.Harvestable())
	return harvestedBetween
}
