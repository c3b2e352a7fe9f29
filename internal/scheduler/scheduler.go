package scheduler

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/worker"
)

// Log messages for scheduler operations
const (
	LogMsgTickSkipped   = "Scheduled job skipped, previous run still queued"
	LogMsgEnqueueFailed = "Failed to enqueue scheduled job"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	once       sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval. A tick that finds the
// pool queue full is dropped rather than queued behind the running job.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				err := s.workerPool.TryEnqueue(job)
				switch {
				case err == nil:
				case errors.Is(err, worker.ErrQueueFull):
					slog.Warn(LogMsgTickSkipped, "job", name, "interval", interval)
				default:
					slog.Error(LogMsgEnqueueFailed, "job", name, "error", err)
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
