package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	counter *atomic.Int64
}

type countResult struct {
	err error
}

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(4)
	pool.Start()
	for i := 0; i < 20; i++ {
		pool.Submit(&countJob{counter: &counter})
	}

	results := pool.Wait()
	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
	if got := counter.Load(); got != 20 {
		t.Errorf("Expected 20 executions, got %d", got)
	}
}

func TestPool_MinimumOneWorker(t *testing.T) {
	var counter atomic.Int64

	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})

	results := pool.Wait()
	if len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

type slowJob struct{}

func (j *slowJob) Execute(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return &countResult{err: ctx.Err()}
	case <-time.After(5 * time.Second):
		return &countResult{}
	}
}

func TestPool_ShutdownCancelsInFlightJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Submit(&slowJob{})
	pool.Submit(&slowJob{})

	finished := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown did not cancel in-flight jobs")
	}
}
