package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/SychO3/SMAPIDedicatedServerMod/internal/logger"
)

// ErrQueueFull is returned by TryEnqueue when no slot is free
var ErrQueueFull = errors.New("worker queue is full")

// ErrPoolStopped is returned when enqueueing after Stop
var ErrPoolStopped = errors.New("worker pool is stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f(ctx)
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu      sync.RWMutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs receive a context derived from ctx that is
// cancelled by Stop.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.mu.Unlock()

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(p.ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			if err := p.run(ctx, job); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "worker", id, "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}

// run processes one job and turns a panic into an error so the worker survives
func (p *Pool) run(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", LogMsgWorkerJobPanicked, r)
		}
	}()
	return job.Process(ctx)
}

// Enqueue adds a job to the queue, blocking until there is room or ctx is done
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue adds a job without blocking, returning ErrQueueFull when the queue has no room
func (p *Pool) TryEnqueue(job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}

	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop cancels running jobs and waits for the workers to exit. Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	cancel := p.cancel
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
