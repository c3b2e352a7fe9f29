package farm

import (
	"fmt"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/cropsaver"
)

// Tile is a tile coordinate within a location
type Tile struct {
	X int
	Y int
}

// Location is a rectangle of tilled soil. Every tile in it can hold one crop.
type Location struct {
	name               string
	outdoors           bool
	seedsIgnoreSeasons bool
	island             bool
	width              int
	height             int
	crops              map[Tile]*Crop
}

func newLocation(l LocationLayout) *Location {
	return &Location{
		name:               l.Name,
		outdoors:           l.Outdoors,
		seedsIgnoreSeasons: l.SeedsIgnoreSeasons,
		island:             l.Island,
		width:              l.Width,
		height:             l.Height,
		crops:              make(map[Tile]*Crop),
	}
}

func (l *Location) Name() string             { return l.name }
func (l *Location) IsOutdoors() bool         { return l.outdoors }
func (l *Location) SeedsIgnoreSeasons() bool { return l.seedsIgnoreSeasons }
func (l *Location) IsIsland() bool           { return l.island }

// Plots lists every tilled tile in row-major order
func (l *Location) Plots() []cropsaver.Plot {
	plots := make([]cropsaver.Plot, 0, l.width*l.height)
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			plot := cropsaver.Plot{TileX: x, TileY: y}
			if crop := l.crops[Tile{x, y}]; crop != nil {
				plot.Crop = crop
			}
			plots = append(plots, plot)
		}
	}
	return plots
}

// CropAt returns the crop on tile, if any
func (l *Location) CropAt(x, y int) (*Crop, bool) {
	crop, ok := l.crops[Tile{x, y}]
	return crop, ok
}

// CropCount returns the number of crops, dead or alive
func (l *Location) CropCount() int {
	return len(l.crops)
}

func (l *Location) contains(t Tile) bool {
	return t.X >= 0 && t.Y >= 0 && t.X < l.width && t.Y < l.height
}

func (l *Location) put(t Tile, crop *Crop) error {
	if !l.contains(t) {
		return fmt.Errorf("%w: %s (%d,%d)", ErrOutOfBounds, l.name, t.X, t.Y)
	}
	if _, ok := l.crops[t]; ok {
		return fmt.Errorf("%w: %s (%d,%d)", ErrTileOccupied, l.name, t.X, t.Y)
	}
	l.crops[t] = crop
	return nil
}

func (l *Location) take(t Tile) (*Crop, error) {
	crop, ok := l.crops[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%d,%d)", ErrEmptyTile, l.name, t.X, t.Y)
	}
	return crop, nil
}
