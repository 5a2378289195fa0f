package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBinarySemaphore_SignalThenWait(t *testing.T) {
	s := NewBinarySemaphore()
	s.Signal()
	assert.Equal(t, Signaled, s.Wait(0))
}

func TestBinarySemaphore_WaitTimesOut(t *testing.T) {
	s := NewBinarySemaphore()
	start := time.Now()
	outcome := s.Wait(20 * time.Millisecond)
	assert.Equal(t, TimedOut, outcome)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestBinarySemaphore_WaitForever(t *testing.T) {
	s := NewBinarySemaphore()
	done := make(chan WaitOutcome, 1)
	go func() { done <- s.Wait(-1) }()

	time.Sleep(10 * time.Millisecond)
	s.Signal()

	select {
	case outcome := <-done:
		assert.Equal(t, Signaled, outcome)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for forever-wait to return")
	}
}

func TestBinarySemaphore_Reset(t *testing.T) {
	s := NewBinarySemaphore()
	s.Signal()
	s.Reset()
	assert.Equal(t, TimedOut, s.Wait(10*time.Millisecond))
}

func TestBinarySemaphore_SignalIdempotentUntilConsumed(t *testing.T) {
	s := NewBinarySemaphore()
	s.Signal()
	s.Signal() // must not block or panic
	assert.Equal(t, Signaled, s.Wait(0))
}
