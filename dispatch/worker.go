package dispatch

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeycumines/go-catrate"
)

// WorkerDispatcher is a reference Dispatcher: one goroutine draining one
// FIFO queue, backed by a buffered channel. It is not part of the delegate
// package's invocation core: the core only ever depends on the Dispatcher
// interface.
type WorkerDispatcher struct {
	queue      chan Envelope
	done       chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
	loopGID    atomic.Int64
	running    atomic.Bool
	limiter    *catrate.Limiter
	queueLabel any
}

// Option configures a WorkerDispatcher.
type Option func(*workerConfig)

type workerConfig struct {
	queueSize int
	rates     map[time.Duration]int
}

// WithQueueSize sets the buffered queue's capacity (default 64).
func WithQueueSize(n int) Option {
	return func(c *workerConfig) {
		if n > 0 {
			c.queueSize = n
		}
	}
}

// WithRateLimit bounds how often Dispatch may accept an envelope, using
// github.com/joeycumines/go-catrate's sliding-window limiter. An over-rate
// Dispatch call returns ErrRateLimited.
func WithRateLimit(rates map[time.Duration]int) Option {
	return func(c *workerConfig) {
		c.rates = rates
	}
}

// NewWorkerDispatcher creates a WorkerDispatcher and starts its loop
// goroutine immediately.
func NewWorkerDispatcher(opts ...Option) *WorkerDispatcher {
	cfg := workerConfig{queueSize: 64}
	for _, o := range opts {
		o(&cfg)
	}

	w := &WorkerDispatcher{
		queue:      make(chan Envelope, cfg.queueSize),
		done:       make(chan struct{}),
		queueLabel: "dispatch",
	}
	if len(cfg.rates) > 0 {
		w.limiter = catrate.NewLimiter(cfg.rates)
	}
	w.running.Store(true)

	w.wg.Add(1)
	go w.loop()

	return w
}

func (w *WorkerDispatcher) loop() {
	defer w.wg.Done()
	w.loopGID.Store(goroutineID())
	for {
		select {
		case e, ok := <-w.queue:
			if !ok {
				return
			}
			e.Run()
		case <-w.done:
			// drain remaining envelopes before exiting, so a Shutdown
			// racing with in-flight Dispatch calls never silently drops
			// work already accepted into the queue.
			for {
				select {
				case e := <-w.queue:
					e.Run()
				default:
					return
				}
			}
		}
	}
}

// Dispatch enqueues e for execution on the loop goroutine. Returns
// ErrClosed if Shutdown has completed, ErrReentrantDispatch if called from
// inside the loop goroutine's own currently running envelope,
// ErrRateLimited if a configured rate limit rejects it, or ErrQueueFull if
// the queue has no room.
func (w *WorkerDispatcher) Dispatch(e Envelope) error {
	if !w.running.Load() {
		return ErrClosed
	}
	if gid := w.loopGID.Load(); gid != 0 && gid == goroutineID() {
		return ErrReentrantDispatch
	}
	if w.limiter != nil {
		if _, ok := w.limiter.Allow(w.queueLabel); !ok {
			return ErrRateLimited
		}
	}
	select {
	case w.queue <- e:
		return nil
	case <-w.done:
		return ErrClosed
	default:
		return ErrQueueFull
	}
}

// Shutdown stops accepting new envelopes and waits for the loop goroutine
// to drain and exit. Safe to call more than once.
func (w *WorkerDispatcher) Shutdown() {
	w.closeOnce.Do(func() {
		w.running.Store(false)
		close(w.done)
	})
	w.wg.Wait()
}
