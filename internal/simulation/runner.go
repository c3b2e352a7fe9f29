// Package simulation drives a farm.World through the host's daily lifecycle,
// publishing the same events in the same order the game does.
package simulation

import (
	"context"
	"fmt"
	"sync"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/event"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/farm"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/metrics"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/worker"
)

// Action is something the player does during the day, between the morning
// and evening scans
type Action func(ctx context.Context, w *farm.World) error

// DayResult summarises one simulated day
type DayResult struct {
	Date      farm.Calendar
	Harvested int
	Stats     farm.Stats
}

// Runner plays days on a world. Days never overlap; Step and the day job
// serialise on the same lock.
type Runner struct {
	world *farm.World
	bus   event.Bus
	slot  string

	autoHarvest bool
	reload      bool
	daily       []Action
	firstDay    []Action

	mu     sync.Mutex
	loaded bool
	played int
}

// Option configures a Runner
type Option func(*Runner)

// WithAutoHarvest picks every harvestable crop each day
func WithAutoHarvest(enabled bool) Option {
	return func(r *Runner) { r.autoHarvest = enabled }
}

// WithReload quits to the title screen and reloads the save after every day
func WithReload(enabled bool) Option {
	return func(r *Runner) { r.reload = enabled }
}

// WithDailyAction runs a on every day
func WithDailyAction(a Action) Option {
	return func(r *Runner) { r.daily = append(r.daily, a) }
}

// WithFirstDayAction runs a once, on the first day played
func WithFirstDayAction(a Action) Option {
	return func(r *Runner) { r.firstDay = append(r.firstDay, a) }
}

// Sow plants the layout's plantings
func Sow(layout *farm.Layout) Action {
	return func(ctx context.Context, w *farm.World) error {
		_, err := layout.Sow(w)
		return err
	}
}

// NewRunner creates a runner for world, publishing lifecycle events for slot on bus
func NewRunner(world *farm.World, bus event.Bus, slot string, opts ...Option) *Runner {
	r := &Runner{
		world: world,
		bus:   bus,
		slot:  slot,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Played returns the number of days played so far
func (r *Runner) Played() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.played
}

// Step plays one day: day started, player actions, day ending, saving, then
// overnight growth. The save is loaded first if it is not loaded yet.
func (r *Runner) Step(ctx context.Context) (DayResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logger.FromContext(ctx)

	if !r.loaded {
		if err := r.publish(ctx, event.SaveLoaded); err != nil {
			return DayResult{}, err
		}
		r.loaded = true
		log.Info(LogMsgSaveLoaded, "slot", r.slot, "date", r.world.Calendar().String())
	}

	result := DayResult{Date: r.world.Calendar()}

	if err := r.publish(ctx, event.DayStarted); err != nil {
		return result, err
	}

	actions := r.daily
	if r.played == 0 {
		actions = append(append([]Action{}, r.firstDay...), r.daily...)
	}
	for _, a := range actions {
		if err := a(ctx, r.world); err != nil {
			log.Warn(LogMsgActionFailed, "date", result.Date.String(), "error", err)
		}
	}
	if r.autoHarvest {
		result.Harvested = r.world.HarvestAll()
		metrics.CropsHarvested.Add(float64(result.Harvested))
	}

	if err := r.publish(ctx, event.DayEnding); err != nil {
		return result, err
	}
	if err := r.publish(ctx, event.Saving); err != nil {
		return result, err
	}

	result.Stats = r.world.Stats()
	r.world.AdvanceDay()
	r.played++

	metrics.SimulatedDays.Inc()
	metrics.FarmCrops.WithLabelValues(metrics.StateAll).Set(float64(result.Stats.Crops))
	metrics.FarmCrops.WithLabelValues(metrics.StateDead).Set(float64(result.Stats.Dead))
	metrics.FarmCrops.WithLabelValues(metrics.StateHarvestable).Set(float64(result.Stats.Harvestable))

	log.Info(LogMsgDayComplete,
		"date", result.Date.String(),
		"harvested", result.Harvested,
		"crops", result.Stats.Crops,
		"dead", result.Stats.Dead)

	if r.reload {
		if err := r.publish(ctx, event.ReturnedToTitle); err != nil {
			return result, err
		}
		if err := r.publish(ctx, event.SaveLoaded); err != nil {
			return result, err
		}
	}

	return result, nil
}

// RunDays plays n days, stopping early if ctx is cancelled
func (r *Runner) RunDays(ctx context.Context, n int) ([]DayResult, error) {
	results := make([]DayResult, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := r.Step(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Job returns a worker job that plays one day per run
func (r *Runner) Job() worker.Job {
	return worker.JobFunc(func(ctx context.Context) error {
		if _, err := r.Step(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgDayFailed, "error", err)
			return err
		}
		return nil
	})
}

// Quit returns to the title screen if a save is loaded
func (r *Runner) Quit(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded {
		return nil
	}
	r.loaded = false
	logger.FromContext(ctx).Info(LogMsgReturnToTitle, "slot", r.slot, "played", r.played)
	return r.publish(ctx, event.ReturnedToTitle)
}

func (r *Runner) publish(ctx context.Context, eventType event.Type) error {
	date := r.world.Calendar()
	evt := event.NewLifecycleEvent(eventType, r.slot, date.Season, date.Day, date.Year)
	if err := r.bus.Publish(ctx, evt); err != nil {
		return fmt.Errorf("publish %s: %w", eventType, err)
	}
	return nil
}
