package cropsaver

import (
	"context"
	"fmt"
	"slices"

	"github.com/stretchr/testify/mock"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
)

type fakeWorld struct {
	season    string
	locations []Location
}

func (w *fakeWorld) Locations() []Location { return w.locations }
func (w *fakeWorld) CurrentSeason() string { return w.season }

type fakeLocation struct {
	name           string
	outdoors       bool
	ignoresSeasons bool
	island         bool
	plots          map[[2]int]*fakeCrop
	panicOnPlots   bool
	panicOnName    bool
}

func newFarm(name string) *fakeLocation {
	return &fakeLocation{name: name, outdoors: true, plots: make(map[[2]int]*fakeCrop)}
}

func (l *fakeLocation) Name() string {
	if l.panicOnName {
		panic("location name unavailable")
	}
	return l.name
}
func (l *fakeLocation) IsOutdoors() bool         { return l.outdoors }
func (l *fakeLocation) SeedsIgnoreSeasons() bool { return l.ignoresSeasons }
func (l *fakeLocation) IsIsland() bool           { return l.island }

func (l *fakeLocation) Plots() []Plot {
	if l.panicOnPlots {
		panic("location unavailable")
	}
	coords := make([][2]int, 0, len(l.plots))
	for c := range l.plots {
		coords = append(coords, c)
	}
	slices.SortFunc(coords, func(a, b [2]int) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})

	plots := make([]Plot, 0, len(coords))
	for _, c := range coords {
		plot := Plot{TileX: c[0], TileY: c[1]}
		if crop := l.plots[c]; crop != nil {
			plot.Crop = crop
		}
		plots = append(plots, plot)
	}
	return plots
}

func (l *fakeLocation) plant(x, y int, crop *fakeCrop) { l.plots[[2]int{x, y}] = crop }
func (l *fakeLocation) remove(x, y int)                { l.plots[[2]int{x, y}] = nil }

type fakeCrop struct {
	kind        string
	row         int
	dead        bool
	forage      bool
	whichForage string
	phase       int
	dayOfPhase  int
	fullyGrown  bool
	phaseDays   []int
	kills       int
	panicOnRead bool
}

func (c *fakeCrop) Kind() string {
	if c.panicOnRead {
		panic("crop unreadable")
	}
	return c.kind
}
func (c *fakeCrop) RowInSpriteSheet() int   { return c.row }
func (c *fakeCrop) Dead() bool              { return c.dead }
func (c *fakeCrop) ForageCrop() bool        { return c.forage }
func (c *fakeCrop) WhichForageCrop() string { return c.whichForage }
func (c *fakeCrop) CurrentPhase() int       { return c.phase }
func (c *fakeCrop) DayOfCurrentPhase() int  { return c.dayOfPhase }
func (c *fakeCrop) FullyGrown() bool        { return c.fullyGrown }
func (c *fakeCrop) PhaseDays() []int        { return c.phaseDays }

func (c *fakeCrop) Kill() {
	c.kills++
	c.dead = true
}

// seedling returns a freshly planted parsnip-like crop
func seedling(row int) *fakeCrop {
	return &fakeCrop{kind: "24", row: row, whichForage: "0", phaseDays: []int{1, 1, 1, 1, 99999}, dayOfPhase: 0}
}

// ripe returns a crop in its final phase, ready to harvest
func ripe(row int) *fakeCrop {
	c := seedling(row)
	c.phase = 4
	return c
}

type fakeCropData map[string]domain.CropMetadata

func (f fakeCropData) CropData(kind string) (domain.CropMetadata, error) {
	meta, ok := f[kind]
	if !ok {
		return domain.CropMetadata{}, fmt.Errorf("%w: %s", domain.ErrCropDataNotFound, kind)
	}
	return meta, nil
}

// MockStore is a mock implementation of repository.SaveDataStore
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ReadSaveData(ctx context.Context, slot, key string) ([]byte, error) {
	args := m.Called(ctx, slot, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) WriteSaveData(ctx context.Context, slot, key string, blob []byte) error {
	args := m.Called(ctx, slot, key, blob)
	return args.Error(0)
}
