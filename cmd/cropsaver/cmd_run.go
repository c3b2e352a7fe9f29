package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/bootstrap"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/config"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/eventlog"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/farm"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/handler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/scheduler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/server"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/simulation"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// runSimulation is the handler for "cropsaver run"
func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, cfg); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	bus := bootstrap.InitializeEventSystem()
	engine, err := bootstrap.InitializeEngine(cfg, bus, store)
	if err != nil {
		_ = store.Close()
		return err
	}

	journal := bootstrap.InitializeEventLog(bus, store.Events, engine.Saver)

	components := bootstrap.ShutdownComponents{Runner: engine.Runner, Store: store}

	maintenance := worker.NewPool(1, 1)
	maintenance.Start(ctx)
	cleanup := scheduler.New(maintenance)
	cleanup.Schedule(eventlog.CleanupJobName, eventlog.DefaultCleanupEvery, eventlog.NewCleanupJob(journal, cfg.EventRetentionDays))
	components.Pools = append(components.Pools, maintenance)
	components.Schedulers = append(components.Schedulers, cleanup)

	if cfg.MetricsAddr != "" {
		checks := append([]handler.HealthChecker{engine.ReadyCheck()}, store.Checks...)
		srv := server.NewServer(cfg.MetricsAddr, server.Dependencies{
			Live:   engine.Saver,
			Store:  store,
			Events: journal,
			Checks: checks,
		})
		go func() {
			if err := srv.Start(); err != nil {
				slog.Error("Server failed", "error", err)
				stop()
			}
		}()
		components.Server = srv
	}

	if cfg.DayInterval > 0 {
		// One worker and a one-slot queue: days never overlap and a slow day
		// makes the scheduler skip ticks instead of piling them up
		pool := worker.NewPool(1, 1)
		pool.Start(ctx)
		sched := scheduler.New(pool)
		sched.Schedule(simulation.DayJobName, cfg.DayInterval, engine.Runner.Job())
		components.Pools = append(components.Pools, pool)
		components.Schedulers = append(components.Schedulers, sched)

		waitForDays(ctx, engine.Runner, cfg.Days, cfg.DayInterval)
	} else {
		days := cfg.Days
		if days == 0 {
			days = farm.DaysPerSeason
		}
		if _, err := engine.Runner.RunDays(ctx, days); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error(simulation.LogMsgDayFailed, "error", err)
		}
		if components.Server != nil {
			// Keep serving the final tables until interrupted
			<-ctx.Done()
		}
	}

	slog.Info(simulation.LogMsgRunnerFinished, "days", engine.Runner.Played(), "date", engine.World.Calendar().String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return nil
}

// waitForDays blocks until ctx is done or, when days > 0, until that many days have been played
func waitForDays(ctx context.Context, runner *simulation.Runner, days int, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if days > 0 && runner.Played() >= days {
				return
			}
		}
	}
}
