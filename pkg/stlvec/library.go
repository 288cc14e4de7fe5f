package stlvec

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/internal/handles"
	"github.com/stlvec/stlvec-go/pkg/stlvec/logging"
)

const (
	kindInt handles.Kind = iota + 1
	kindLong
)

// Library owns every handle issued through its tables.
//
// The registry is safe for concurrent use, so distinct handles may be used
// from distinct goroutines or C threads. The last-error slot is shared: every
// table call resets it on entry and a failure sets it, so it describes the
// most recent call of the whole library. Concurrent hosts that inspect it must
// hold one lock across every call and its TakeError (or stlvec_last_error), or
// run with Config.AbortOnError.
type Library struct {
	// Int is the table for 32-bit elements.
	Int *Table[int32]
	// Long is the table for platform-width elements.
	Long *Table[int]

	cfg Config
	reg *handles.Registry
	log logging.Logger

	mu      sync.Mutex
	lastErr error
	closed  bool
}

// Option customizes Open.
type Option func(*Library)

// WithLogger overrides the logger derived from Config.
func WithLogger(l logging.Logger) Option {
	return func(lib *Library) {
		if l != nil {
			lib.log = l
		}
	}
}

// Open builds a Library. When cfg.LogLevel is set a zap logger is built from
// it; otherwise the package default logger is used.
func Open(cfg Config, opts ...Option) (*Library, error) {
	lib := &Library{
		cfg: cfg,
		reg: handles.NewRegistry(),
		log: logging.Default(),
	}
	if cfg.LogLevel != "" {
		zl, err := logging.Build(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		lib.log = logging.New(zl)
	}
	for _, opt := range opts {
		opt(lib)
	}

	lib.Int = newTable[int32](lib, TypeInt, kindInt)
	lib.Long = newTable[int](lib, TypeLong, kindLong)
	return lib, nil
}

// Config returns the configuration the library was opened with.
func (l *Library) Config() Config {
	return l.cfg
}

// Close releases every live handle. Handles still live at this point were
// leaked by the caller and are reported at warn level. The method returns
// ErrLibraryClosed when called twice.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrLibraryClosed
	}
	l.closed = true
	l.mu.Unlock()

	leaked := l.reg.Close(func(_ handles.Kind, v any) {
		if r, ok := v.(interface{ Release() }); ok {
			r.Release()
		}
	})
	if leaked > 0 {
		l.log.Warn(context.Background(), "leaked handles released on close", zap.Int("count", leaked))
	}
	return nil
}

// LiveHandles returns the number of handles not yet deleted.
func (l *Library) LiveHandles() int {
	return l.reg.Len()
}

// TakeError returns the failure of the most recent table call, if it failed,
// and clears it.
func (l *Library) TakeError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.lastErr
	l.lastErr = nil
	return err
}

// LastStatus returns the status of the last recorded failure without
// clearing it.
func (l *Library) LastStatus() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return StatusOf(l.lastErr)
}

// ClearError drops the last recorded failure.
func (l *Library) ClearError() {
	l.mu.Lock()
	l.lastErr = nil
	l.mu.Unlock()
}

func (l *Library) record(fn string, err error) {
	opErr := &OpError{Func: fn, Err: err}
	fields := []zap.Field{
		zap.String("func", fn),
		zap.Stringer("status", StatusOf(err)),
		zap.Error(err),
	}

	if l.cfg.AbortOnError {
		l.log.Error(context.Background(), "boundary call aborted", fields...)
		panic(opErr)
	}

	l.log.Warn(context.Background(), "boundary call failed", fields...)
	l.mu.Lock()
	l.lastErr = opErr
	l.mu.Unlock()
}
