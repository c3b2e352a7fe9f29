// Package cropsaver keeps player-planted crops alive across season changes
// while still letting them die once they are out of season.
//
// The host gives no stable identity to a crop, so the saver infers it: every
// morning it snapshots each crop, and every night it compares the crop against
// that morning's snapshot. A crop that does not match is treated as newly planted
// and gets a fresh tracking record. Crops the host spawns itself (wild forage)
// are seen in the morning and so are never tracked.
//
// The saver is driven by four host lifecycle callbacks (save loaded, day started,
// day ending, saving) and is single-threaded: each pass runs to completion
// before the next begins.
package cropsaver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/domain"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/repository"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/savedata"
)

// DayEndReport summarises a day-end pass
type DayEndReport struct {
	Observed int // crops seen in protectable locations
	Created  int // new tracking records
	Released int // records dropped because their crop is gone
	Failed   int // plots or locations that could not be processed
}

// DayStartReport summarises a day-start pass
type DayStartReport struct {
	Untracked int // crops with no record (e.g. spawned forage)
	Flagged   int // records newly flagged as having seen an incompatible season
	Marked    int // records newly marked for death
	Killed    int // kill calls issued
	Failed    int
}

// Saver owns the tracking tables for one loaded save
type Saver struct {
	world     World
	cropData  CropDataProvider
	store     repository.SaveDataStore
	publisher event.Bus
	compress  bool

	mu             sync.Mutex
	slot           string
	tracked        map[domain.LocationKey]domain.TrackedCrop
	beginningOfDay map[domain.LocationKey]domain.GrowthSnapshot
}

// Option configures a Saver
type Option func(*Saver)

// WithPublisher publishes crop events (tracked, killed, released) to bus
func WithPublisher(bus event.Bus) Option {
	return func(s *Saver) {
		s.publisher = bus
	}
}

// WithCompression stores save blobs zstd-compressed
func WithCompression(enabled bool) Option {
	return func(s *Saver) {
		s.compress = enabled
	}
}

// New creates a Saver with empty tables
func New(world World, cropData CropDataProvider, store repository.SaveDataStore, opts ...Option) *Saver {
	s := &Saver{
		world:          world,
		cropData:       cropData,
		store:          store,
		tracked:        make(map[domain.LocationKey]domain.TrackedCrop),
		beginningOfDay: make(map[domain.LocationKey]domain.GrowthSnapshot),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enable subscribes the saver to the host lifecycle events on bus
func (s *Saver) Enable(bus event.Bus) {
	bus.Subscribe(event.SaveLoaded, s.handleSaveLoaded)
	bus.Subscribe(event.DayStarted, func(ctx context.Context, _ event.Event) error {
		s.OnDayStarted(ctx)
		return nil
	})
	bus.Subscribe(event.DayEnding, func(ctx context.Context, _ event.Event) error {
		s.OnDayEnding(ctx)
		return nil
	})
	bus.Subscribe(event.Saving, func(ctx context.Context, _ event.Event) error {
		s.Save(ctx)
		return nil
	})
	bus.Subscribe(event.ReturnedToTitle, func(ctx context.Context, _ event.Event) error {
		s.Reset(ctx)
		return nil
	})
}

func (s *Saver) handleSaveLoaded(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.LifecyclePayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLifecyclePayloadError, "event_type", evt.Type, "error", err)
		return fmt.Errorf("decode %s payload: %w", evt.Type, err)
	}
	s.Load(ctx, payload.SaveSlot)
	return nil
}

// OnDayEnding runs the end-of-day scan. Crops that differ from this morning's
// snapshot get a fresh record, every tracked crop records whether it is
// harvestable tonight, and records whose plot is now empty are dropped.
func (s *Saver) OnDayEnding(ctx context.Context) DayEndReport {
	ctx = logger.WithPassID(ctx, logger.GeneratePassID())
	start := time.Now()

	s.mu.Lock()
	report, pending := s.dayEnding(ctx)
	tracked := len(s.tracked)
	s.mu.Unlock()

	metrics.DayPasses.WithLabelValues(metrics.PhaseDayEnd).Inc()
	metrics.DayPassDuration.WithLabelValues(metrics.PhaseDayEnd).Observe(time.Since(start).Seconds())
	metrics.TrackedCrops.Set(float64(tracked))

	logger.FromContext(ctx).Info(LogMsgDayEndingComplete,
		"observed", report.Observed,
		"created", report.Created,
		"released", report.Released,
		"failed", report.Failed,
		"tracked", tracked)

	s.publishAll(ctx, pending)
	return report
}

func (s *Saver) dayEnding(ctx context.Context) (DayEndReport, []event.Event) {
	var report DayEndReport
	var pending []event.Event
	observed := make(map[domain.LocationKey]struct{})

	scan := s.eachCrop(ctx, metrics.PhaseDayEnd, func(key domain.LocationKey, crop Crop) {
		// Mark first so a failure below never drops an existing record
		observed[key] = struct{}{}
		report.Observed++

		meta := s.lookupCropData(ctx, crop.Kind())
		current := takeSnapshot(crop, meta.RegrowDays)

		previous, seenThisMorning := s.beginningOfDay[key]
		if !seenThisMorning || !SameCrop(previous, current) {
			_, replacing := s.tracked[key]
			s.tracked[key] = NewTrackedCrop(meta)
			report.Created++

			reason := ReasonNewlyPlanted
			if replacing {
				reason = ReasonReplaced
			}
			pending = append(pending, event.NewCropEvent(event.CropTracked, key.String(), reason))
		}

		if rec, ok := s.tracked[key]; ok {
			s.tracked[key] = RecordHarvestableTonight(rec, current)
		}
	})

	report.Failed = scan.failed
	if scan.unidentified {
		logger.FromContext(ctx).Warn(LogMsgReleaseSkipped)
	}

	for key := range s.tracked {
		if _, ok := observed[key]; ok {
			continue
		}
		// A location that failed to scan says nothing about its crops
		if !scan.covers(key.LocationName) {
			continue
		}
		delete(s.tracked, key)
		report.Released++
		pending = append(pending, event.NewCropEvent(event.CropReleased, key.String(), ReasonRemoved))
	}

	return report, pending
}

// OnDayStarted runs the start-of-day scan. It rebuilds the morning snapshots,
// applies the season rules to every tracked crop and kills crops marked for death.
func (s *Saver) OnDayStarted(ctx context.Context) DayStartReport {
	ctx = logger.WithPassID(ctx, logger.GeneratePassID())
	start := time.Now()

	s.mu.Lock()
	report, pending := s.dayStarted(ctx)
	tracked := len(s.tracked)
	s.mu.Unlock()

	metrics.DayPasses.WithLabelValues(metrics.PhaseDayStart).Inc()
	metrics.DayPassDuration.WithLabelValues(metrics.PhaseDayStart).Observe(time.Since(start).Seconds())
	metrics.TrackedCrops.Set(float64(tracked))

	logger.FromContext(ctx).Info(LogMsgDayStartedComplete,
		"untracked", report.Untracked,
		"flagged", report.Flagged,
		"marked", report.Marked,
		"killed", report.Killed,
		"failed", report.Failed,
		"tracked", tracked)

	s.publishAll(ctx, pending)
	return report
}

func (s *Saver) dayStarted(ctx context.Context) (DayStartReport, []event.Event) {
	var report DayStartReport
	var pending []event.Event
	log := logger.FromContext(ctx)

	clear(s.beginningOfDay)
	season := s.world.CurrentSeason()

	scan := s.eachCrop(ctx, metrics.PhaseDayStart, func(key domain.LocationKey, crop Crop) {
		rec, ok := s.tracked[key]
		if !ok {
			// Not planted by a player; remember it so tonight's scan can tell
			// whether it was replaced by something that was
			meta := s.lookupCropData(ctx, crop.Kind())
			s.beginningOfDay[key] = takeSnapshot(crop, meta.RegrowDays)
			report.Untracked++
			return
		}

		updated := StartDay(rec, season)
		if updated.ExistedInIncompatibleSeason && !rec.ExistedInIncompatibleSeason {
			report.Flagged++
		}
		if updated.MarkedForDeath && !rec.MarkedForDeath {
			report.Marked++
			log.Debug(LogMsgCropMarkedForDeath, "location", key.String(), "season", season)
		}

		if updated.MarkedForDeath {
			wasAlive := !crop.Dead()
			crop.Kill()
			report.Killed++
			if wasAlive {
				log.Info(LogMsgCropKilled, "location", key.String(), "season", season)
				pending = append(pending, event.NewCropEvent(event.CropKilled, key.String(), ReasonOutOfSeason))
			}
		}

		s.tracked[key] = updated
		s.beginningOfDay[key] = takeSnapshot(crop, updated.OriginalRegrowDays)
	})
	report.Failed = scan.failed

	return report, pending
}

// scanResult summarises a pass over every protectable location
type scanResult struct {
	failed int
	// unscanned holds the names of locations whose plots could not be listed
	unscanned map[string]struct{}
	// unidentified is set when a location failed before its name was known
	unidentified bool
}

// covers reports whether the scan saw every plot of location
func (r scanResult) covers(location string) bool {
	if r.unidentified {
		return false
	}
	_, skipped := r.unscanned[location]
	return !skipped
}

// eachCrop calls fn for every crop in every protectable location. A panic while
// scanning a location or handling a plot is recovered and counted so the rest
// of the scan still runs.
func (s *Saver) eachCrop(ctx context.Context, phase string, fn func(key domain.LocationKey, crop Crop)) scanResult {
	result := scanResult{unscanned: make(map[string]struct{})}
	for _, loc := range s.world.Locations() {
		name := ""
		listed := false
		if !s.guard(ctx, phase, LogMsgLocationFailed, func() {
			if !protectable(loc) {
				return
			}
			name = loc.Name()
			plots := loc.Plots()
			listed = true
			for _, plot := range plots {
				if plot.Crop == nil {
					continue
				}
				key := domain.LocationKey{LocationName: name, TileX: plot.TileX, TileY: plot.TileY}
				crop := plot.Crop
				if !s.guard(ctx, phase, LogMsgPlotFailed, func() { fn(key, crop) }, "location", key.String()) {
					result.failed++
				}
			}
		}) {
			result.failed++
			switch {
			case listed:
			case name == "":
				result.unidentified = true
			default:
				result.unscanned[name] = struct{}{}
			}
		}
	}
	return result
}

// guard runs fn, converting a panic into a logged failure
func (s *Saver) guard(ctx context.Context, phase, msg string, fn func(), args ...any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			metrics.PlotErrors.WithLabelValues(phase).Inc()
			logger.FromContext(ctx).Error(msg, append(args, "phase", phase, "panic", r)...)
		}
	}()
	fn()
	return true
}

// lookupCropData resolves kind, falling back to empty seasons and no regrowth
func (s *Saver) lookupCropData(ctx context.Context, kind string) domain.CropMetadata {
	if s.cropData == nil {
		return domain.DefaultCropMetadata()
	}

	meta, err := s.cropData.CropData(kind)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCropDataUnavailable, "kind", kind, "error", err)
		return domain.DefaultCropMetadata()
	}
	if meta.Seasons == nil {
		meta.Seasons = []string{}
	}
	return meta
}

// Load replaces both tables with the data stored for slot. Missing data starts
// empty; unreadable data is logged and also starts empty. Load never fails.
func (s *Saver) Load(ctx context.Context, slot string) {
	ctx = logger.WithPassID(ctx, logger.GeneratePassID())
	log := logger.FromContext(ctx).With("slot", slot)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slot = slot
	s.tracked = make(map[domain.LocationKey]domain.TrackedCrop)
	s.beginningOfDay = make(map[domain.LocationKey]domain.GrowthSnapshot)

	result := metrics.ResultOK
	defer func() {
		if r := recover(); r != nil {
			s.tracked = make(map[domain.LocationKey]domain.TrackedCrop)
			s.beginningOfDay = make(map[domain.LocationKey]domain.GrowthSnapshot)
			result = metrics.ResultRecovered
			log.Warn(LogMsgLoadFailed, "panic", r)
		}
		metrics.PersistenceOperations.WithLabelValues(metrics.OperationLoad, result).Inc()
		metrics.TrackedCrops.Set(float64(len(s.tracked)))
	}()

	blob, err := s.store.ReadSaveData(ctx, slot, savedata.DataKey)
	if errors.Is(err, domain.ErrSaveDataNotFound) {
		result = metrics.ResultEmpty
		log.Info(LogMsgNoSaveData)
		return
	}
	if err != nil {
		result = metrics.ResultRecovered
		log.Warn(LogMsgLoadFailed, "error", err)
		return
	}

	tables, err := savedata.Decode(blob)
	if err != nil {
		result = metrics.ResultRecovered
		log.Warn(LogMsgLoadFailed, "error", err)
		return
	}

	tracked, beginningOfDay, skipped := tables.Unpack()
	for _, key := range skipped {
		log.Warn(LogMsgDroppedMalformedKey, "key", key)
	}

	s.tracked = tracked
	s.beginningOfDay = beginningOfDay
	log.Info(LogMsgCropDataLoaded,
		"tracked", len(tracked),
		"snapshots", len(beginningOfDay),
		"dropped", len(skipped))
}

// Save writes both tables to the loaded slot. Failures are logged; the
// in-memory tables are unaffected and the next save tries again.
func (s *Saver) Save(ctx context.Context) {
	ctx = logger.WithPassID(ctx, logger.GeneratePassID())

	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx).With("slot", s.slot)
	if s.slot == "" {
		log.Warn(LogMsgSaveWithoutSlot)
		return
	}

	result := metrics.ResultOK
	defer func() {
		if r := recover(); r != nil {
			result = metrics.ResultFailed
			log.Error(LogMsgSaveFailed, "panic", r)
		}
		metrics.PersistenceOperations.WithLabelValues(metrics.OperationSave, result).Inc()
	}()

	blob, err := savedata.Encode(savedata.Pack(s.tracked, s.beginningOfDay), s.compress)
	if err != nil {
		result = metrics.ResultFailed
		log.Error(LogMsgSaveFailed, "error", err)
		return
	}

	if err := s.store.WriteSaveData(ctx, s.slot, savedata.DataKey, blob); err != nil {
		result = metrics.ResultFailed
		log.Error(LogMsgSaveFailed, "error", err)
		return
	}

	log.Debug(LogMsgCropDataSaved,
		"tracked", len(s.tracked),
		"snapshots", len(s.beginningOfDay),
		"bytes", len(blob))
}

// Reset discards both tables and forgets the slot, as when the player
// returns to the title screen
func (s *Saver) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slot = ""
	s.tracked = make(map[domain.LocationKey]domain.TrackedCrop)
	s.beginningOfDay = make(map[domain.LocationKey]domain.GrowthSnapshot)
	metrics.TrackedCrops.Set(0)
	logger.FromContext(ctx).Info(LogMsgCropDataReset)
}

// Slot returns the currently loaded save slot
func (s *Saver) Slot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slot
}

// Tracked returns the record for key, if the crop there is tracked
func (s *Saver) Tracked(key domain.LocationKey) (domain.TrackedCrop, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.tracked[key]
	return rec, ok
}

// BeginningOfDay returns this morning's snapshot for key
func (s *Saver) BeginningOfDay(key domain.LocationKey) (domain.GrowthSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, ok := s.beginningOfDay[key]
	return snap, ok
}

// TrackedCount returns the number of tracked crops
func (s *Saver) TrackedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tracked)
}

// Tables returns a copy of both tables in persisted form
func (s *Saver) Tables() savedata.Tables {
	s.mu.Lock()
	defer s.mu.Unlock()
	return savedata.Pack(s.tracked, s.beginningOfDay)
}

func (s *Saver) publishAll(ctx context.Context, events []event.Event) {
	if s.publisher == nil {
		return
	}
	for _, evt := range events {
		if err := s.publisher.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
		}
	}
}
