package farm

import (
	"slices"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/catalog"
)

// Crop is a crop growing on a tile
type Crop struct {
	kind              string
	spriteRow         int
	phaseDays         []int
	regrowDays        int
	currentPhase      int
	dayOfCurrentPhase int
	fullyGrown        bool
	dead              bool
	forage            bool
	whichForage       string
}

func newCrop(def catalog.Def) *Crop {
	return &Crop{
		kind:        def.Kind,
		spriteRow:   def.SpriteRow,
		phaseDays:   append(slices.Clone(def.PhaseDays), FinalPhaseDays),
		regrowDays:  def.RegrowDays,
		whichForage: "0",
	}
}

func (c *Crop) Kind() string            { return c.kind }
func (c *Crop) RowInSpriteSheet() int   { return c.spriteRow }
func (c *Crop) Dead() bool              { return c.dead }
func (c *Crop) ForageCrop() bool        { return c.forage }
func (c *Crop) WhichForageCrop() string { return c.whichForage }
func (c *Crop) CurrentPhase() int       { return c.currentPhase }
func (c *Crop) DayOfCurrentPhase() int  { return c.dayOfCurrentPhase }
func (c *Crop) FullyGrown() bool        { return c.fullyGrown }
func (c *Crop) PhaseDays() []int        { return c.phaseDays }

// Kill withers the crop. It stays on its tile until cleared.
func (c *Crop) Kill() {
	c.dead = true
}

// Grown reports whether the crop has reached its harvest phase
func (c *Crop) Grown() bool {
	return c.currentPhase >= len(c.phaseDays)-1
}

// Harvestable reports whether the crop can be picked now
func (c *Crop) Harvestable() bool {
	return !c.dead && c.Grown() && (c.dayOfCurrentPhase <= 0 || !c.fullyGrown)
}

// grow advances the crop by one night
func (c *Crop) grow() {
	if c.dead {
		return
	}

	if c.Grown() {
		if c.fullyGrown && c.dayOfCurrentPhase > 0 {
			c.dayOfCurrentPhase--
		}
		return
	}

	c.dayOfCurrentPhase++
	if c.dayOfCurrentPhase >= c.phaseDays[c.currentPhase] {
		c.currentPhase++
		c.dayOfCurrentPhase = 0
	}
}

// harvest picks the crop. It returns true when the crop is used up and
// should be removed from its tile.
func (c *Crop) harvest() bool {
	if c.forage || c.regrowDays <= 0 {
		return true
	}
	c.fullyGrown = true
	c.dayOfCurrentPhase = c.regrowDays
	return false
}
