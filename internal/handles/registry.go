// Package handles maps opaque, address-sized handles to Go values that must
// never cross a foreign-function boundary themselves.
//
// A handle packs a slot number and the slot's generation. Releasing a handle
// bumps the generation, so a released handle is reported as stale even after
// its slot has been reused. Handle 0 is never issued.
package handles

import (
	"errors"
	"math/bits"
	"sync"
)

// Handle is the opaque value handed to foreign callers.
type Handle uintptr

// Kind tags the type of value stored under a handle.
type Kind uint32

const (
	genShift = bits.UintSize / 2
	slotMask = 1<<genShift - 1
	genMask  = slotMask
)

var (
	// ErrInvalid reports a handle that was never issued by the registry.
	ErrInvalid = errors.New("handles: invalid handle")

	// ErrStale reports a handle used after it was released.
	ErrStale = errors.New("handles: handle used after release")

	// ErrKind reports a handle that refers to a value of another kind.
	ErrKind = errors.New("handles: handle kind mismatch")

	// ErrExhausted reports that every slot is live.
	ErrExhausted = errors.New("handles: registry exhausted")

	// ErrClosed reports use of a closed registry.
	ErrClosed = errors.New("handles: registry closed")
)

type entry struct {
	value any
	kind  Kind
	gen   uintptr
	live  bool
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	entries []entry
	free    []uintptr
	live    int
	closed  bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make([]entry, 0, 64),
		free:    make([]uintptr, 0, 16),
	}
}

func pack(slot, gen uintptr) Handle {
	return Handle(gen<<genShift | (slot + 1))
}

func unpack(h Handle) (slot, gen uintptr, ok bool) {
	raw := uintptr(h) & slotMask
	if raw == 0 {
		return 0, 0, false
	}
	return raw - 1, uintptr(h) >> genShift, true
}

// Insert stores value under a fresh handle.
func (r *Registry) Insert(kind Kind, value any) (Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrClosed
	}

	var slot uintptr
	if n := len(r.free); n > 0 {
		slot = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		if uintptr(len(r.entries)) >= slotMask {
			return 0, ErrExhausted
		}
		slot = uintptr(len(r.entries))
		r.entries = append(r.entries, entry{})
	}

	e := &r.entries[slot]
	e.value = value
	e.kind = kind
	e.live = true
	r.live++
	return pack(slot, e.gen), nil
}

// Get returns the value stored under h.
func (r *Registry) Get(h Handle, kind Kind) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(h, kind)
	if err != nil {
		return nil, err
	}
	return e.value, nil
}

// Release removes h and returns its value. Releasing twice reports ErrStale.
func (r *Registry) Release(h Handle, kind Kind) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.lookup(h, kind)
	if err != nil {
		return nil, err
	}

	value := e.value
	slot, _, _ := unpack(h)
	e.value = nil
	e.live = false
	e.gen = (e.gen + 1) & genMask
	r.free = append(r.free, slot)
	r.live--
	return value, nil
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live
}

// Close releases every live handle, calling drop for each value, and rejects
// further inserts. It returns the number of handles that were still live.
func (r *Registry) Close(drop func(Kind, any)) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0
	}
	r.closed = true

	leaked := 0
	for i := range r.entries {
		e := &r.entries[i]
		if !e.live {
			continue
		}
		if drop != nil {
			drop(e.kind, e.value)
		}
		e.value = nil
		e.live = false
		e.gen = (e.gen + 1) & genMask
		leaked++
	}
	r.live = 0
	r.free = r.free[:0]
	r.entries = r.entries[:0]
	return leaked
}

func (r *Registry) lookup(h Handle, kind Kind) (*entry, error) {
	if r.closed {
		return nil, ErrClosed
	}
	slot, gen, ok := unpack(h)
	if !ok || slot >= uintptr(len(r.entries)) {
		return nil, ErrInvalid
	}
	e := &r.entries[slot]
	if !e.live || e.gen != gen {
		return nil, ErrStale
	}
	if e.kind != kind {
		return nil, ErrKind
	}
	return e, nil
}
