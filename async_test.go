package delegate

import (
	"sync"
	"testing"
	"time"

	"github.com/joeycumines/delegate/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsync_Inline(t *testing.T) {
	var mu sync.Mutex
	var got addArgs
	c := NewFree(func(a addArgs) struct{} {
		mu.Lock()
		got = a
		mu.Unlock()
		return struct{}{}
	})

	a := NewAsync[addArgs, struct{}](c, nil)
	require.NoError(t, a.Invoke(addArgs{A: 1, B: 2}))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, addArgs{A: 1, B: 2}, got)
}

func TestAsync_Dispatched(t *testing.T) {
	w := dispatch.NewWorkerDispatcher()
	defer w.Shutdown()

	done := make(chan addArgs, 1)
	c := NewFree(func(a addArgs) struct{} {
		done <- a
		return struct{}{}
	})

	a := NewAsync[addArgs, struct{}](c, w)
	require.NoError(t, a.Invoke(addArgs{A: 3, B: 4}))

	select {
	case got := <-done:
		assert.Equal(t, addArgs{A: 3, B: 4}, got)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for dispatched call")
	}
}

func TestAsync_Empty(t *testing.T) {
	var a Async[addArgs, struct{}]
	assert.True(t, a.IsEmpty())
	assert.ErrorIs(t, a.Invoke(addArgs{}), ErrEmpty)
}

func TestAsync_DispatchRejected(t *testing.T) {
	w := dispatch.NewWorkerDispatcher(dispatch.WithQueueSize(1))
	w.Shutdown()

	c := NewFree(func(a addArgs) struct{} { return struct{}{} })
	a := NewAsync[addArgs, struct{}](c, w)

	err := a.Invoke(addArgs{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDispatchRejected)
}
