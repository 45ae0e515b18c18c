package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopnet/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRunner(workers, queueSize int) *Runner {
	return NewRunner(config.TasksConfig{Workers: workers, QueueSize: queueSize}, zap.NewNop())
}

func TestRunner_ExecutesSubmittedTasks(t *testing.T) {
	runner := newTestRunner(2, 16)
	runner.Start(context.Background())

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		err := runner.Submit(Task{
			Name: "count",
			Run: func(ctx context.Context) error {
				done.Add(1)
				return nil
			},
		})
		require.NoError(t, err)
	}

	runner.Stop()
	assert.Equal(t, int32(5), done.Load())
}

func TestRunner_QueueFull(t *testing.T) {
	runner := newTestRunner(1, 1)

	block := make(chan struct{})
	slow := Task{Name: "slow", Run: func(ctx context.Context) error {
		<-block
		return nil
	}}

	// Workers not started, so the queue holds exactly one task
	require.NoError(t, runner.Submit(slow))
	assert.ErrorIs(t, runner.Submit(slow), ErrQueueFull)

	close(block)
	runner.Start(context.Background())
	runner.Stop()
}

func TestRunner_SubmitRacingStop(t *testing.T) {
	runner := newTestRunner(2, 8)
	runner.Start(context.Background())

	// Hammer Submit from several goroutines while Stop closes the queue; a
	// send after the close would panic and fail the test.
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				_ = runner.Submit(Task{Name: "noop", Run: func(ctx context.Context) error { return nil }})
			}
		}()
	}

	runner.Stop()
	wg.Wait()

	err := runner.Submit(Task{Name: "late", Run: func(ctx context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestRunner_SubmitAfterStop(t *testing.T) {
	runner := newTestRunner(1, 4)
	runner.Start(context.Background())
	runner.Stop()

	err := runner.Submit(Task{Name: "late", Run: func(ctx context.Context) error { return nil }})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestRunner_RecoversFromPanic(t *testing.T) {
	runner := newTestRunner(1, 4)
	runner.Start(context.Background())

	var done atomic.Bool
	require.NoError(t, runner.Submit(Task{Name: "boom", Run: func(ctx context.Context) error {
		panic("boom")
	}}))
	require.NoError(t, runner.Submit(Task{Name: "after", Run: func(ctx context.Context) error {
		done.Store(true)
		return nil
	}}))

	deadline := time.After(2 * time.Second)
	for !done.Load() {
		select {
		case <-deadline:
			t.Fatal("second task never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	runner.Stop()
}
