package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcEnvelope func()

func (f funcEnvelope) Run() { f() }

func TestWorkerDispatcher_RunsInFIFOOrder(t *testing.T) {
	w := NewWorkerDispatcher()
	defer w.Shutdown()

	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		n := i
		last := n == 4
		require.NoError(t, w.Dispatch(funcEnvelope(func() {
			order = append(order, n)
			if last {
				close(done)
			}
		})))
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelopes to run")
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestWorkerDispatcher_ShutdownRejectsNewWork(t *testing.T) {
	w := NewWorkerDispatcher()
	w.Shutdown()

	err := w.Dispatch(funcEnvelope(func() {}))
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWorkerDispatcher_QueueFull(t *testing.T) {
	w := NewWorkerDispatcher(WithQueueSize(1))
	defer w.Shutdown()

	block := make(chan struct{})
	// occupy the loop goroutine so the queue backs up
	require.NoError(t, w.Dispatch(funcEnvelope(func() { <-block })))
	time.Sleep(20 * time.Millisecond) // let the loop goroutine pick it up
	require.NoError(t, w.Dispatch(funcEnvelope(func() {})))

	err := w.Dispatch(funcEnvelope(func() {}))
	assert.ErrorIs(t, err, ErrQueueFull)
	close(block)
}

func TestWorkerDispatcher_ReentrantDispatchRejected(t *testing.T) {
	w := NewWorkerDispatcher()
	defer w.Shutdown()

	result := make(chan error, 1)
	require.NoError(t, w.Dispatch(funcEnvelope(func() {
		result <- w.Dispatch(funcEnvelope(func() {}))
	})))

	select {
	case err := <-result:
		assert.ErrorIs(t, err, ErrReentrantDispatch)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reentrant dispatch result")
	}
}

func TestWorkerDispatcher_RateLimited(t *testing.T) {
	w := NewWorkerDispatcher(WithRateLimit(map[time.Duration]int{time.Minute: 1}))
	defer w.Shutdown()

	require.NoError(t, w.Dispatch(funcEnvelope(func() {})))
	err := w.Dispatch(funcEnvelope(func() {}))
	assert.ErrorIs(t, err, ErrRateLimited)
}
