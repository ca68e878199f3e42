package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"resumewright/internal/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}
func (l nopLogger) With(...interface{}) logger.Logger { return l }
func (nopLogger) Sync() error                         { return nil }

func TestWorkerPoolRunsSubmittedJobs(t *testing.T) {
	wp := NewWorkerPool(2, nopLogger{})

	var completed int64
	handler := func(job interface{}) error {
		fn := job.(func())
		fn()
		return nil
	}
	wp.Start(context.Background(), handler)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		job := func() {
			atomic.AddInt64(&completed, 1)
			wg.Done()
		}
		if err := wp.Submit(job); err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
	}
	wg.Wait()

	if got := atomic.LoadInt64(&completed); got != 10 {
		t.Fatalf("expected 10 completed jobs, got %d", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	wp.Stop(ctx)
}

func TestWorkerPoolGetStatsReportsSize(t *testing.T) {
	wp := NewWorkerPool(3, nopLogger{})
	stats := wp.GetStats()
	if stats.Size != 3 {
		t.Fatalf("expected size 3, got %d", stats.Size)
	}
}
