package farm

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SychO3/SMAPIDedicatedServerMod/configs"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/catalog"
)

// Layout describes the starting state of a world
type Layout struct {
	SaveSlot  string           `yaml:"save_slot"`
	Start     Calendar         `yaml:"start"`
	Locations []LocationLayout `yaml:"locations"`
}

// LocationLayout describes one location and what grows in it at the start
type LocationLayout struct {
	Name               string        `yaml:"name"`
	Outdoors           bool          `yaml:"outdoors"`
	SeedsIgnoreSeasons bool          `yaml:"seeds_ignore_seasons"`
	Island             bool          `yaml:"island"`
	Width              int           `yaml:"width"`
	Height             int           `yaml:"height"`
	Plantings          []Planting    `yaml:"plantings"`
	Forage             []ForageSpawn `yaml:"forage"`
}

// Planting fills a rectangle with one crop kind. Width and height default to 1.
type Planting struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ForageSpawn places one wild forage crop
type ForageSpawn struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
}

// LoadLayout reads a layout from disk. An empty path loads the embedded default.
func LoadLayout(path string) (*Layout, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = configs.FarmLayoutPath
		data, err = fs.ReadFile(configs.FS, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadLayout, path, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes a YAML layout. Unknown fields are rejected.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&layout); err != nil {
		return nil, fmt.Errorf(ErrFmtParseLayout, err)
	}

	if layout.Start == (Calendar{}) {
		layout.Start = NewYear()
	}
	if err := layout.Start.Validate(); err != nil {
		return nil, err
	}
	for _, l := range layout.Locations {
		if l.Name == "" {
			return nil, fmt.Errorf("%w: location without a name", ErrInvalidLayout)
		}
		if l.Width <= 0 || l.Height <= 0 {
			return nil, fmt.Errorf("%w: location %q has no tilled area", ErrInvalidLayout, l.Name)
		}
	}
	return &layout, nil
}

// Build creates a world from the layout with its locations and wild forage.
// Plantings are left to Sow so they can be planted as a player action.
func (l *Layout) Build(c *catalog.Catalog) (*World, error) {
	w := NewWorld(c, l.Start)
	for _, ll := range l.Locations {
		if _, err := w.AddLocation(ll); err != nil {
			return nil, err
		}

		for _, f := range ll.Forage {
			if _, err := w.SpawnForage(ll.Name, f.X, f.Y, f.Kind); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
			}
		}
	}
	return w, nil
}

// Sow plants every planting the layout lists into w and returns the number of
// crops planted. Occupied tiles are an error.
func (l *Layout) Sow(w *World) (int, error) {
	planted := 0
	for _, ll := range l.Locations {
		for _, p := range ll.Plantings {
			width, height := max(p.Width, 1), max(p.Height, 1)
			for y := p.Y; y < p.Y+height; y++ {
				for x := p.X; x < p.X+width; x++ {
					if _, err := w.Plant(ll.Name, x, y, p.Kind); err != nil {
						return planted, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
					}
					planted++
				}
			}
		}
	}
	return planted, nil
}
