package delegate

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addArgs struct {
	A, B int
}

func TestNewFree(t *testing.T) {
	c := NewFree(func(a addArgs) int { return a.A + a.B })
	require.False(t, c.IsEmpty())

	ret, err := c.Invoke(addArgs{A: 2, B: 3})
	require.NoError(t, err)
	assert.Equal(t, 5, ret)
}

func TestCallable_Empty(t *testing.T) {
	var c Callable[addArgs, int]
	assert.True(t, c.IsEmpty())

	_, err := c.Invoke(addArgs{})
	assert.ErrorIs(t, err, ErrEmpty)
}

type counter struct {
	n int
}

func (c *counter) Add(a addArgs) int {
	c.n += a.A + a.B
	return c.n
}

func TestNewMethod_OwnerAlive(t *testing.T) {
	owner := &counter{}
	c := NewMethod(owner, (*counter).Add)

	ret, err := c.Invoke(addArgs{A: 1, B: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, ret)
	assert.Equal(t, 2, owner.n)
}

func TestNewMethodShared(t *testing.T) {
	owner := NewSharedOwner(&counter{})
	c := NewMethodShared(owner, (*counter).Add)

	ret, err := c.Invoke(addArgs{A: 4, B: 5})
	require.NoError(t, err)
	assert.Equal(t, 9, ret)
}

func TestCallable_Equal(t *testing.T) {
	fn := func(a addArgs) int { return a.A }
	c1 := NewFree(fn)
	c2 := NewFree(fn)
	assert.True(t, c1.Equal(c2))

	other := NewFree(func(a addArgs) int { return a.B })
	assert.False(t, c1.Equal(other))
}

func TestNewMethod_OwnerReleased(t *testing.T) {
	owner := &counter{}
	c := NewMethod(owner, (*counter).Add)
	owner = nil
	runtime.GC()
	runtime.GC()

	_, err := c.Invoke(addArgs{A: 1, B: 1})
	assert.ErrorIs(t, err, ErrOwnerReleased)
}

func TestCallable_Clone(t *testing.T) {
	c := NewFree(func(a addArgs) int { return a.A })
	clone := c.Clone()
	assert.True(t, c.Equal(clone))
}
