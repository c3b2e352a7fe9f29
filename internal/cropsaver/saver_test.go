package cropsaver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

var farmKey = domain.LocationKey{LocationName: "Farm", TileX: 10, TileY: 12}

type harness struct {
	world *fakeWorld
	farm  *fakeLocation
	store *repository.MemoryStore
	saver *Saver
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	farm := newFarm("Farm")
	world := &fakeWorld{season: domain.SeasonSpring, locations: []Location{farm}}
	cropData := fakeCropData{
		"24":  {Seasons: []string{domain.SeasonSpring}, RegrowDays: domain.NoRegrowth},
		"188": {Seasons: []string{domain.SeasonSpring}, RegrowDays: 3},
	}
	store := repository.NewMemoryStore()

	return &harness{
		world: world,
		farm:  farm,
		store: store,
		saver: New(world, cropData, store, opts...),
	}
}

// regrowing returns a ripe crop of a type that regrows after harvest
func regrowing() *fakeCrop {
	c := ripe(40)
	c.kind = "188"
	return c
}

// harvestRegrowing simulates picking a regrowing crop: it stays in the final
// phase and counts down until it can be picked again
func harvestRegrowing(c *fakeCrop) {
	c.fullyGrown = true
	c.dayOfPhase = 3
}

func TestScenario_NewCropTrackedAtDayEnd(t *testing.T) {
	h := newHarness(t)
	h.farm.plant(10, 12, seedling(24))

	report := h.saver.OnDayEnding(context.Background())

	rec, ok := h.saver.Tracked(farmKey)
	require.True(t, ok)
	assert.False(t, rec.MarkedForDeath)
	assert.False(t, rec.ExistedInIncompatibleSeason)
	assert.False(t, rec.HarvestableLastNight)
	assert.Equal(t, []string{domain.SeasonSpring}, rec.OriginalSeasons)
	assert.Equal(t, domain.NoRegrowth, rec.OriginalRegrowDays)
	assert.Equal(t, DayEndReport{Observed: 1, Created: 1}, report)
}

func TestScenario_SeasonChangeKeepsHarvestableCropThenKills(t *testing.T) {
	h := newHarness(t)
	crop := regrowing()
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	// Last night of spring, ripe
	h.saver.OnDayEnding(ctx)
	rec, _ := h.saver.Tracked(farmKey)
	require.True(t, rec.HarvestableLastNight)

	// First morning of summer: flagged, kept
	h.world.season = domain.SeasonSummer
	report := h.saver.OnDayStarted(ctx)

	rec, _ = h.saver.Tracked(farmKey)
	assert.True(t, rec.ExistedInIncompatibleSeason)
	assert.False(t, rec.MarkedForDeath)
	assert.Equal(t, 0, crop.kills)
	assert.Equal(t, DayStartReport{Flagged: 1}, report)

	// Player harvests; the crop starts regrowing and is no longer ripe
	harvestRegrowing(crop)
	h.saver.OnDayEnding(ctx)
	rec, _ = h.saver.Tracked(farmKey)
	require.False(t, rec.HarvestableLastNight)
	assert.True(t, rec.ExistedInIncompatibleSeason, "harvest must not look like a new crop")

	// Next morning: marked and killed
	report = h.saver.OnDayStarted(ctx)
	rec, _ = h.saver.Tracked(farmKey)
	assert.True(t, rec.MarkedForDeath)
	assert.Equal(t, 1, crop.kills)
	assert.True(t, crop.dead)
	assert.Equal(t, 1, report.Marked)
	assert.Equal(t, 1, report.Killed)

	snapshot, ok := h.saver.BeginningOfDay(farmKey)
	require.True(t, ok)
	assert.True(t, snapshot.Dead, "snapshot is taken after the kill")
	assert.Equal(t, 3, snapshot.Stage.OriginalRegrowDays)
}

func TestScenario_RemovedCropReleased(t *testing.T) {
	h := newHarness(t)
	crop := seedling(24)
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	h.saver.OnDayStarted(ctx)

	h.farm.remove(10, 12)
	report := h.saver.OnDayEnding(ctx)
	assert.Equal(t, 1, report.Released)

	_, ok := h.saver.Tracked(farmKey)
	assert.False(t, ok)

	h.world.season = domain.SeasonSummer
	startReport := h.saver.OnDayStarted(ctx)
	assert.Equal(t, DayStartReport{}, startReport)
	_, ok = h.saver.BeginningOfDay(farmKey)
	assert.False(t, ok)
	assert.Equal(t, 0, crop.kills)
}

func TestDayEnding_ReplacedCropGetsFreshRecord(t *testing.T) {
	h := newHarness(t)
	h.farm.plant(10, 12, ripe(24))
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	h.world.season = domain.SeasonSummer
	h.saver.OnDayStarted(ctx)
	rec, _ := h.saver.Tracked(farmKey)
	require.True(t, rec.ExistedInIncompatibleSeason)

	// Harvested and replanted the same day
	h.farm.plant(10, 12, seedling(24))
	report := h.saver.OnDayEnding(ctx)

	rec, ok := h.saver.Tracked(farmKey)
	require.True(t, ok)
	assert.False(t, rec.ExistedInIncompatibleSeason)
	assert.False(t, rec.MarkedForDeath)
	assert.Equal(t, 1, report.Created)
}

func TestDayEnding_UntrackedForageStaysUntracked(t *testing.T) {
	h := newHarness(t)
	forage := seedling(23)
	forage.forage = true
	forage.whichForage = "1"
	h.farm.plant(3, 4, forage)
	ctx := context.Background()

	for day := 0; day < 3; day++ {
		report := h.saver.OnDayStarted(ctx)
		assert.Equal(t, 1, report.Untracked)
		h.saver.OnDayEnding(ctx)
		forage.dayOfPhase++
	}

	assert.Equal(t, 0, h.saver.TrackedCount())
	h.world.season = domain.SeasonWinter
	h.saver.OnDayStarted(ctx)
	assert.Equal(t, 0, forage.kills)
}

func TestDayEnding_ConsecutiveDaysKeepRecord(t *testing.T) {
	h := newHarness(t)
	crop := seedling(24)
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	for day := 0; day < 3; day++ {
		crop.phase++
		h.saver.OnDayStarted(ctx)
		report := h.saver.OnDayEnding(ctx)
		assert.Equal(t, 0, report.Created)
	}
	assert.Equal(t, 1, h.saver.TrackedCount())
}

func TestDayEnding_IgnoresUnprotectedLocations(t *testing.T) {
	h := newHarness(t)

	greenhouse := newFarm("Greenhouse")
	greenhouse.outdoors = false
	greenhouse.plant(1, 1, seedling(24))

	island := newFarm("IslandWest")
	island.island = true
	island.plant(1, 1, seedling(24))

	garden := newFarm("Garden")
	garden.ignoresSeasons = true
	garden.plant(1, 1, seedling(24))

	h.world.locations = append(h.world.locations, greenhouse, island, garden)

	report := h.saver.OnDayEnding(context.Background())
	assert.Equal(t, 0, report.Observed)
	assert.Equal(t, 0, h.saver.TrackedCount())
}

func TestDayEnding_UnknownCropUsesDefaults(t *testing.T) {
	h := newHarness(t)
	crop := ripe(99)
	crop.kind = "unknown"
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	rec, ok := h.saver.Tracked(farmKey)
	require.True(t, ok)
	assert.Empty(t, rec.OriginalSeasons)
	assert.Equal(t, domain.NoRegrowth, rec.OriginalRegrowDays)
	assert.True(t, rec.HarvestableLastNight)

	// Harvestable last night, so it survives its first morning
	h.saver.OnDayStarted(ctx)
	assert.Equal(t, 0, crop.kills)
}

func TestDayEnding_PlotFailureIsolated(t *testing.T) {
	h := newHarness(t)
	broken := seedling(24)
	h.farm.plant(10, 12, broken)
	h.farm.plant(11, 12, seedling(24))
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	require.Equal(t, 2, h.saver.TrackedCount())

	broken.panicOnRead = true
	report := h.saver.OnDayEnding(ctx)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Released)
	_, ok := h.saver.Tracked(farmKey)
	assert.True(t, ok, "a plot that failed to scan keeps its record")
	_, ok = h.saver.Tracked(domain.LocationKey{LocationName: "Farm", TileX: 11, TileY: 12})
	assert.True(t, ok)
}

func TestDayEnding_LocationFailureKeepsRecords(t *testing.T) {
	h := newHarness(t)
	h.farm.plant(10, 12, seedling(24))
	ctx := context.Background()
	h.saver.OnDayEnding(ctx)

	other := newFarm("BusStop")
	other.plant(2, 2, seedling(24))
	h.world.locations = append(h.world.locations, other)
	h.farm.panicOnPlots = true

	report := h.saver.OnDayEnding(ctx)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Released)
	assert.Equal(t, 2, h.saver.TrackedCount())
}

func TestDayEnding_UnnamedLocationFailureKeepsAllRecords(t *testing.T) {
	h := newHarness(t)
	h.farm.plant(10, 12, seedling(24))
	ctx := context.Background()
	h.saver.OnDayEnding(ctx)
	require.Equal(t, 1, h.saver.TrackedCount())

	h.farm.panicOnName = true

	report := h.saver.OnDayEnding(ctx)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Released)
	_, ok := h.saver.Tracked(farmKey)
	assert.True(t, ok, "records survive when the failing location cannot be named")

	h.farm.panicOnName = false
	h.farm.remove(10, 12)
	report = h.saver.OnDayEnding(ctx)
	assert.Equal(t, 1, report.Released)
}

func TestDayStarted_KillsEveryDayWhileMarked(t *testing.T) {
	h := newHarness(t)
	crop := seedling(24)
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	h.world.season = domain.SeasonSummer
	h.saver.OnDayStarted(ctx)
	require.Equal(t, 1, crop.kills)

	h.saver.OnDayEnding(ctx)
	report := h.saver.OnDayStarted(ctx)
	assert.Equal(t, 2, crop.kills)
	assert.Equal(t, 0, report.Marked)
	assert.Equal(t, 1, report.Killed)
}

func TestDayStarted_NeverKillsInSeason(t *testing.T) {
	h := newHarness(t)
	crop := seedling(24)
	h.farm.plant(10, 12, crop)
	ctx := context.Background()

	for day := 0; day < 5; day++ {
		h.saver.OnDayEnding(ctx)
		h.saver.OnDayStarted(ctx)
	}
	assert.Equal(t, 0, crop.kills)
	rec, _ := h.saver.Tracked(farmKey)
	assert.False(t, rec.ExistedInIncompatibleSeason)
}

func TestPublisher_ReceivesCropEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	var got []event.Type
	for _, typ := range []event.Type{event.CropTracked, event.CropKilled, event.CropReleased} {
		bus.Subscribe(typ, func(_ context.Context, evt event.Event) error {
			got = append(got, evt.Type)
			return nil
		})
	}

	h := newHarness(t, WithPublisher(bus))
	h.farm.plant(10, 12, seedling(24))
	ctx := context.Background()

	h.saver.OnDayEnding(ctx)
	h.world.season = domain.SeasonSummer
	h.saver.OnDayStarted(ctx)
	h.farm.remove(10, 12)
	h.saver.OnDayEnding(ctx)

	assert.Equal(t, []event.Type{event.CropTracked, event.CropKilled, event.CropReleased}, got)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		h := newHarness(t, WithCompression(compress))
		h.farm.plant(10, 12, ripe(24))
		h.farm.plant(11, 12, seedling(24))
		ctx := context.Background()

		h.saver.Load(ctx, "Farmer_123")
		h.saver.OnDayEnding(ctx)
		h.world.season = domain.SeasonSummer
		h.saver.OnDayStarted(ctx)
		h.saver.Save(ctx)

		restored := New(h.world, fakeCropData{}, h.store)
		restored.Load(ctx, "Farmer_123")

		assert.Equal(t, h.saver.Tables(), restored.Tables())
		assert.Equal(t, "Farmer_123", restored.Slot())
	}
}

func TestLoad_NoDataStartsEmpty(t *testing.T) {
	h := newHarness(t)
	h.farm.plant(10, 12, seedling(24))
	ctx := context.Background()
	h.saver.OnDayEnding(ctx)

	h.saver.Load(ctx, "Other_456")
	assert.Equal(t, 0, h.saver.TrackedCount())
	assert.Equal(t, "Other_456", h.saver.Slot())
}

func TestLoad_CorruptDataStartsEmpty(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.WriteSaveData(ctx, "Farmer_123", savedata.DataKey, []byte("{not json")))

	assert.NotPanics(t, func() { h.saver.Load(ctx, "Farmer_123") })
	assert.Equal(t, 0, h.saver.TrackedCount())
}

func TestLoad_DropsMalformedKeys(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	tables := savedata.NewTables()
	tables.CropDictionary["Farm|10|12"] = domain.TrackedCrop{OriginalSeasons: []string{"spring"}, OriginalRegrowDays: -1}
	tables.CropDictionary["Farm|ten|12"] = domain.TrackedCrop{OriginalSeasons: []string{"spring"}, OriginalRegrowDays: -1}
	blob, err := savedata.Encode(tables, false)
	require.NoError(t, err)
	require.NoError(t, h.store.WriteSaveData(ctx, "Farmer_123", savedata.DataKey, blob))

	h.saver.Load(ctx, "Farmer_123")

	assert.Equal(t, 1, h.saver.TrackedCount())
	_, ok := h.saver.Tracked(farmKey)
	assert.True(t, ok)
}

func TestLoad_ReadErrorStartsEmpty(t *testing.T) {
	store := new(MockStore)
	store.On("ReadSaveData", mock.Anything, "Farmer_123", savedata.DataKey).Return(nil, errors.New("disk on fire"))

	s := New(&fakeWorld{season: domain.SeasonSpring}, fakeCropData{}, store)
	s.Load(context.Background(), "Farmer_123")

	assert.Equal(t, 0, s.TrackedCount())
	assert.Equal(t, "Farmer_123", s.Slot())
	store.AssertExpectations(t)
}

func TestSave_WriteErrorKeepsState(t *testing.T) {
	store := new(MockStore)
	store.On("ReadSaveData", mock.Anything, "Farmer_123", savedata.DataKey).Return(nil, domain.ErrSaveDataNotFound)
	store.On("WriteSaveData", mock.Anything, "Farmer_123", savedata.DataKey, mock.Anything).Return(errors.New("read-only"))

	farm := newFarm("Farm")
	farm.plant(10, 12, seedling(24))
	s := New(&fakeWorld{season: domain.SeasonSpring, locations: []Location{farm}}, fakeCropData{}, store)
	ctx := context.Background()

	s.Load(ctx, "Farmer_123")
	s.OnDayEnding(ctx)
	assert.NotPanics(t, func() { s.Save(ctx) })

	assert.Equal(t, 1, s.TrackedCount())
	store.AssertExpectations(t)
}

func TestSave_WithoutSlotSkipsWrite(t *testing.T) {
	store := new(MockStore)
	s := New(&fakeWorld{season: domain.SeasonSpring}, fakeCropData{}, store)

	s.Save(context.Background())

	store.AssertNotCalled(t, "WriteSaveData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnable_DrivesSaverFromLifecycleEvents(t *testing.T) {
	h := newHarness(t)
	bus := event.NewMemoryBus()
	h.saver.Enable(bus)
	ctx := context.Background()

	require.NoError(t, bus.Publish(ctx, event.NewLifecycleEvent(event.SaveLoaded, "Farmer_123", "spring", 1, 1)))
	assert.Equal(t, "Farmer_123", h.saver.Slot())

	require.NoError(t, bus.Publish(ctx, event.NewLifecycleEvent(event.DayStarted, "Farmer_123", "spring", 1, 1)))
	// Planted during the day, after the morning scan
	h.farm.plant(10, 12, seedling(24))
	require.NoError(t, bus.Publish(ctx, event.NewLifecycleEvent(event.DayEnding, "Farmer_123", "spring", 1, 1)))
	assert.Equal(t, 1, h.saver.TrackedCount())

	require.NoError(t, bus.Publish(ctx, event.NewLifecycleEvent(event.Saving, "Farmer_123", "spring", 1, 1)))
	blob, err := h.store.ReadSaveData(ctx, "Farmer_123", savedata.DataKey)
	require.NoError(t, err)
	assert.NotEmpty(t, blob)

	require.NoError(t, bus.Publish(ctx, event.NewLifecycleEvent(event.ReturnedToTitle, "Farmer_123", "spring", 1, 1)))
	assert.Equal(t, 0, h.saver.TrackedCount())
	assert.Empty(t, h.saver.Slot())
}

func TestEnable_RejectsBadSaveLoadedPayload(t *testing.T) {
	h := newHarness(t)
	bus := event.NewMemoryBus()
	h.saver.Enable(bus)

	err := bus.Publish(context.Background(), event.Event{Type: event.SaveLoaded, Payload: "Farmer_123"})
	assert.Error(t, err)
	assert.Empty(t, h.saver.Slot())
}
