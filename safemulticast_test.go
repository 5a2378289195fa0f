package delegate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeMulticast_ConcurrentAddInvoke(t *testing.T) {
	var sm SafeMulticast[addArgs]

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Add(NewFree(func(a addArgs) struct{} { return struct{}{} }))
		}()
	}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sm.Invoke(addArgs{})
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, sm.Len())
}

func TestSafeMulticast_ClearEmpties(t *testing.T) {
	var sm SafeMulticast[addArgs]
	sm.Add(NewFree(func(a addArgs) struct{} { return struct{}{} }))
	sm.Clear()
	assert.True(t, sm.IsEmpty())
}
