package delegate

import (
	"testing"
	"time"

	"github.com/joeycumines/delegate/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncWait_Inline(t *testing.T) {
	c := NewFree(func(a addArgs) int { return a.A + a.B })
	aw := NewAsyncWait[addArgs, int](c, nil, Forever)

	ret, ok, err := aw.Invoke(addArgs{A: 2, B: 2})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, ret)
}

func TestAsyncWait_Dispatched_Success(t *testing.T) {
	w := dispatch.NewWorkerDispatcher()
	defer w.Shutdown()

	c := NewFree(func(a addArgs) int { return a.A * a.B })
	aw := NewAsyncWait[addArgs, int](c, w, Forever)

	ret, ok, err := aw.Invoke(addArgs{A: 6, B: 7})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, ret)
}

func TestAsyncWait_Timeout(t *testing.T) {
	w := dispatch.NewWorkerDispatcher()
	defer w.Shutdown()

	release := make(chan struct{})
	c := NewFree(func(a addArgs) int {
		<-release
		return a.A
	})
	defer close(release)

	aw := NewAsyncWait[addArgs, int](c, w, 10*time.Millisecond)
	ret, ok, err := aw.Invoke(addArgs{A: 1})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, ret)
}

func TestAsyncWait_NoWait_AlreadyRan(t *testing.T) {
	c := NewFree(func(a addArgs) int { return a.A })
	aw := NewAsyncWait[addArgs, int](c, nil, NoWait)

	ret, ok, err := aw.Invoke(addArgs{A: 9})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, ret)
}

func TestAsyncWait_Empty(t *testing.T) {
	var aw AsyncWait[addArgs, int]
	assert.True(t, aw.IsEmpty())
	_, _, err := aw.Invoke(addArgs{})
	assert.ErrorIs(t, err, ErrEmpty)
}
