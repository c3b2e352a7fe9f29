package bootstrap

import (
	"context"
	"log/slog"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/scheduler"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/server"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/simulation"
	"github.com/SychO3/SMAPIDedicatedServerMod/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server     *server.Server
	Schedulers []*scheduler.Scheduler
	Pools      []*worker.Pool
	Runner     *simulation.Runner
	Store      *Store
}

// GracefulShutdown stops the components in order: the HTTP server, the
// schedulers, the workers running the current jobs, then the save is closed
// and the store released. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	for _, sched := range c.Schedulers {
		sched.Stop()
	}
	for _, pool := range c.Pools {
		pool.Stop()
	}

	if c.Runner != nil {
		if err := c.Runner.Quit(ctx); err != nil {
			slog.Error(LogMsgQuitFailed, "error", err)
		}
	}

	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		} else {
			slog.Info(LogMsgStoreClosed, "backend", c.Store.Backend)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
