package kv

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/matheus3301/baatchit/internal/bus"
	"go.uber.org/zap"
)

// ErrWriterStopped is delivered on the ack channel of writes issued after Stop.
var ErrWriterStopped = errors.New("kv writer stopped")

const writeTimeout = 5 * time.Second

// Persister queues a write and returns a channel that receives its result.
type Persister interface {
	Put(key string, value any) <-chan error
}

// PersistResult is the payload of persist.ok and persist.failed events.
type PersistResult struct {
	Key string
	Err string
}

type write struct {
	key   string
	value any
	ack   chan error
}

// Writer applies writes in order on a single goroutine. Failures are logged
// and published; they never reach the caller except through the ack channel.
type Writer struct {
	store  *Store
	bus    *bus.Bus
	logger *zap.Logger

	queue    chan write
	stopping chan struct{}
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
	cancel context.CancelFunc
}

// NewWriter creates a writer. Writes queue up until Start.
func NewWriter(s *Store, b *bus.Bus, logger *zap.Logger) *Writer {
	return &Writer{
		store:    s,
		bus:      b,
		logger:   logger,
		queue:    make(chan write, 64),
		stopping: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the write loop.
func (w *Writer) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.loop(ctx)
}

// Stop drains queued writes and waits for the loop to exit.
func (w *Writer) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// Put queues value for key. The returned channel is buffered and receives
// exactly one result.
func (w *Writer) Put(key string, value any) <-chan error {
	ack := make(chan error, 1)

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		ack <- ErrWriterStopped
		return ack
	}
	select {
	case w.queue <- write{key: key, value: value, ack: ack}:
	case <-w.stopping:
		ack <- ErrWriterStopped
	}
	return ack
}

func (w *Writer) loop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case op := <-w.queue:
			w.apply(op)
		case <-ctx.Done():
			close(w.stopping)
			w.mu.Lock()
			w.closed = true
			w.mu.Unlock()
			for {
				select {
				case op := <-w.queue:
					w.apply(op)
				default:
					return
				}
			}
		}
	}
}

func (w *Writer) apply(op write) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	err := w.store.SetItem(ctx, op.key, op.value)
	if err != nil {
		w.logger.Error("persist failed", zap.String("key", op.key), zap.Error(err))
		w.bus.Emit(bus.KindPersistFailed, PersistResult{Key: op.key, Err: err.Error()})
	} else {
		w.logger.Debug("persisted", zap.String("key", op.key))
		w.bus.Emit(bus.KindPersistOK, PersistResult{Key: op.key})
	}
	op.ack <- err
}
