package store

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/lslk89/xultimate-toolkit/options"
	"github.com/mongodb/grip/level"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

const (
	defaultMaxBufferSize int = 1e7
	defaultFlushInterval     = time.Minute
)

// RecordWriter buffers records of one type and writes them to a store as
// chunks, either when the buffer fills or on a timer.
type RecordWriter struct {
	mu         sync.Mutex
	ctx        context.Context
	cancel     context.CancelFunc
	buffer     []interface{}
	bufferType reflect.Type
	bufferSize int
	lastFlush  time.Time
	timer      *time.Timer
	closed     bool

	opts     options.RecordWriter
	store    Store
	registry Registry
}

func NewRecordWriter(ctx context.Context, store Store, registry Registry, opts options.RecordWriter) (*RecordWriter, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid record writer options")
	}
	if store == nil || registry == nil {
		return nil, errors.New("must provide a store and a codec registry")
	}

	if opts.MaxBufferSize <= 0 {
		opts.MaxBufferSize = defaultMaxBufferSize
	}
	if opts.FlushInterval == 0 {
		opts.FlushInterval = defaultFlushInterval
	}

	w := &RecordWriter{
		opts:      opts,
		store:     store,
		registry:  registry,
		lastFlush: time.Now(),
	}
	w.ctx, w.cancel = context.WithCancel(ctx)

	if opts.FlushInterval > 0 {
		w.timer = time.NewTimer(opts.FlushInterval)
		go w.timedFlush()
	}

	return w, nil
}

// Add buffers v. A value of a different type than the buffered ones first
// flushes the buffer, since a chunk holds a single record type; if that
// flush fails v is not buffered. If v fills the buffer and the resulting
// flush fails, v stays buffered with the rest and is written by the next
// successful Flush or Close, so it must not be added again.
func (w *RecordWriter) Add(v interface{}) error {
	t := reflect.TypeOf(v)
	codec, err := w.registry.Resolve(t)
	if err != nil {
		return err
	}
	if codec.ByteSize() <= 0 {
		return errors.Errorf("codec '%s' has no fixed width", codec)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return errors.New("cannot add to a closed record writer")
	}

	if len(w.buffer) > 0 && t != w.bufferType {
		if err = w.flush(w.ctx); err != nil {
			return errors.Wrap(err, "flushing buffer")
		}
	}

	w.buffer = append(w.buffer, v)
	w.bufferType = t
	w.bufferSize += codec.ByteSize()
	if w.bufferSize >= w.opts.MaxBufferSize {
		return errors.Wrap(w.flush(w.ctx), "flushing buffer")
	}

	return nil
}

// Flush writes any buffered records to the store.
func (w *RecordWriter) Flush(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	return w.flush(ctx)
}

// Close flushes anything left in the buffer and stops timed flushes. After
// Close, Add returns an error; repeated calls to Close are no-ops.
func (w *RecordWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	defer w.cancel()

	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.flush(w.ctx); err != nil {
		w.opts.Local.Send(message.NewErrorMessage(level.Error, err))
		return errors.Wrap(err, "flushing buffer")
	}

	return nil
}

func (w *RecordWriter) timedFlush() {
	defer w.timer.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.timer.C:
			w.mu.Lock()
			if len(w.buffer) > 0 && time.Since(w.lastFlush) >= w.opts.FlushInterval {
				if err := w.flush(w.ctx); err != nil {
					w.opts.Local.Send(message.NewErrorMessage(level.Error, err))
				}
			}
			_ = w.timer.Reset(w.opts.FlushInterval)
			w.mu.Unlock()
		}
	}
}

func (w *RecordWriter) flush(ctx context.Context) error {
	if len(w.buffer) == 0 {
		return nil
	}

	err := w.store.PutRecords(ctx, options.PutRecords{
		Key:    w.opts.Key,
		Values: w.buffer,
	})
	if err != nil {
		return err
	}

	w.buffer = nil
	w.bufferType = nil
	w.bufferSize = 0
	w.lastFlush = time.Now()

	return nil
}
