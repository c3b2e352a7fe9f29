// Package farm is a small in-process game host: a calendar, tilled locations
// and crops that grow overnight. It stands in for the real game so the crop
// saver can be run and tested end to end.
//
// A World is not safe for concurrent use.
package farm

import (
	"fmt"
	"slices"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/catalog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/cropsaver"
)

// World holds every location and the current date
type World struct {
	calendar  Calendar
	catalog   *catalog.Catalog
	locations []*Location
	byName    map[string]*Location
}

// Stats counts crops across the world
type Stats struct {
	Crops       int
	Dead        int
	Harvestable int
}

// NewWorld creates an empty world on date
func NewWorld(c *catalog.Catalog, date Calendar) *World {
	return &World{
		calendar: date,
		catalog:  c,
		byName:   make(map[string]*Location),
	}
}

// AddLocation adds a location. Names must be unique.
func (w *World) AddLocation(l LocationLayout) (*Location, error) {
	if _, ok := w.byName[l.Name]; ok {
		return nil, fmt.Errorf("%w: duplicate location %q", ErrInvalidLayout, l.Name)
	}
	loc := newLocation(l)
	w.locations = append(w.locations, loc)
	w.byName[l.Name] = loc
	return loc, nil
}

// Locations implements cropsaver.World
func (w *World) Locations() []cropsaver.Location {
	out := make([]cropsaver.Location, len(w.locations))
	for i, l := range w.locations {
		out[i] = l
	}
	return out
}

// CurrentSeason implements cropsaver.World
func (w *World) CurrentSeason() string {
	return w.calendar.Season
}

// Calendar returns today's date
func (w *World) Calendar() Calendar {
	return w.calendar
}

// Location returns the named location
func (w *World) Location(name string) (*Location, bool) {
	l, ok := w.byName[name]
	return l, ok
}

// AdvanceDay grows every crop by one night and moves to the next date
func (w *World) AdvanceDay() {
	for _, l := range w.locations {
		for _, crop := range l.crops {
			crop.grow()
		}
	}
	w.calendar = w.calendar.Next()
}

// Plant puts a new crop of kind on a tile
func (w *World) Plant(location string, x, y int, kind string) (*Crop, error) {
	loc, def, err := w.resolve(location, kind)
	if err != nil {
		return nil, err
	}
	crop := newCrop(def)
	if err := loc.put(Tile{x, y}, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// SpawnForage places a wild forage crop, as the host does on its own each season
func (w *World) SpawnForage(location string, x, y int, kind string) (*Crop, error) {
	loc, def, err := w.resolve(location, kind)
	if err != nil {
		return nil, err
	}
	if def.ForageKind == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotForage, kind)
	}

	crop := newCrop(def)
	crop.forage = true
	crop.whichForage = def.ForageKind
	// Forage appears ready to pick
	crop.currentPhase = len(crop.phaseDays) - 1
	if err := loc.put(Tile{x, y}, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// Harvest picks the crop on a tile. Single-harvest and forage crops are removed;
// regrowing crops stay and start counting down to their next harvest.
func (w *World) Harvest(location string, x, y int) error {
	loc, ok := w.byName[location]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}
	t := Tile{x, y}
	crop, err := loc.take(t)
	if err != nil {
		return err
	}
	if !crop.Harvestable() {
		return fmt.Errorf("%w: %s (%d,%d)", ErrNotHarvestable, location, x, y)
	}
	if crop.harvest() {
		delete(loc.crops, t)
	}
	return nil
}

// HarvestAll picks every harvestable crop and returns how many were picked
func (w *World) HarvestAll() int {
	picked := 0
	for _, l := range w.locations {
		tiles := make([]Tile, 0, len(l.crops))
		for t, crop := range l.crops {
			if crop.Harvestable() {
				tiles = append(tiles, t)
			}
		}
		for _, t := range tiles {
			if w.Harvest(l.name, t.X, t.Y) == nil {
				picked++
			}
		}
	}
	return picked
}

// Clear removes whatever crop is on a tile, dead or alive
func (w *World) Clear(location string, x, y int) error {
	loc, ok := w.byName[location]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}
	t := Tile{x, y}
	if _, err := loc.take(t); err != nil {
		return err
	}
	delete(loc.crops, t)
	return nil
}

// ClearDead removes every dead crop and returns how many were removed
func (w *World) ClearDead() int {
	cleared := 0
	for _, l := range w.locations {
		for t, crop := range l.crops {
			if crop.dead {
				delete(l.crops, t)
				cleared++
			}
		}
	}
	return cleared
}

// Stats counts crops across every location
func (w *World) Stats() Stats {
	var s Stats
	for _, l := range w.locations {
		for _, crop := range l.crops {
			s.Crops++
			if crop.dead {
				s.Dead++
			}
			if crop.Harvestable() {
				s.Harvestable++
			}
		}
	}
	return s
}

// LocationNames lists locations in the order they were added
func (w *World) LocationNames() []string {
	names := make([]string, 0, len(w.locations))
	for _, l := range w.locations {
		names = append(names, l.name)
	}
	return slices.Clip(names)
}

func (w *World) resolve(location, kind string) (*Location, catalog.Def, error) {
	loc, ok := w.byName[location]
	if !ok {
		return nil, catalog.Def{}, fmt.Errorf("%w: %s", ErrUnknownLocation, location)
	}
	def, ok := w.catalog.Def(kind)
	if !ok {
		return nil, catalog.Def{}, fmt.Errorf("%w: %s", ErrUnknownCropKind, kind)
	}
	return loc, def, nil
}
