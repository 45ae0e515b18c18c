package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/shopnet/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrQueueFull is returned when the task queue cannot accept more work
var ErrQueueFull = errors.New("task queue is full")

// ErrStopped is returned when work is submitted after shutdown
var ErrStopped = errors.New("task runner is stopped")

// Task is one unit of background work
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Runner executes background tasks on a fixed worker pool with a bounded
// queue. Feed imports and email deliveries go through it so HTTP handlers
// never block on slow I/O.
type Runner struct {
	tasks   chan Task
	logger  *zap.Logger
	workers int
	group   *errgroup.Group
	cancel  context.CancelFunc

	// mu orders Submit against Stop so no send can race the channel close
	mu      sync.RWMutex
	stopped bool
}

// NewRunner creates a runner sized by task configuration
func NewRunner(cfg config.TasksConfig, logger *zap.Logger) *Runner {
	return &Runner{
		tasks:   make(chan Task, cfg.QueueSize),
		logger:  logger,
		workers: cfg.Workers,
	}
}

// Start launches the worker pool
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.group, ctx = errgroup.WithContext(ctx)

	for i := 0; i < r.workers; i++ {
		worker := i
		r.group.Go(func() error {
			r.work(ctx, worker)
			return nil
		})
	}

	r.logger.Info("task runner started",
		zap.Int("workers", r.workers),
		zap.Int("queue_size", cap(r.tasks)))
}

// Submit enqueues a task without blocking
func (r *Runner) Submit(task Task) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopped {
		return ErrStopped
	}
	select {
	case r.tasks <- task:
		return nil
	default:
		r.logger.Warn("task rejected, queue full", zap.String("task", task.Name))
		return ErrQueueFull
	}
}

// Stop drains the queue and waits for in-flight tasks to finish
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	close(r.tasks)
	r.mu.Unlock()

	_ = r.group.Wait()
	r.cancel()
	r.logger.Info("task runner stopped")
}

func (r *Runner) work(ctx context.Context, worker int) {
	for task := range r.tasks {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					r.logger.Error("task panicked",
						zap.Int("worker", worker),
						zap.String("task", task.Name),
						zap.Any("panic", rec))
				}
			}()

			if err := task.Run(ctx); err != nil {
				r.logger.Error("task failed",
					zap.Int("worker", worker),
					zap.String("task", task.Name),
					zap.Error(err))
				return
			}
			r.logger.Debug("task finished",
				zap.Int("worker", worker),
				zap.String("task", task.Name))
		}()
	}
}
