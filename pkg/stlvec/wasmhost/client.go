package wasmhost

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero/api"

	"github.com/stlvec/stlvec-go/pkg/stlvec"
	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

// Client drives one element table through the exports of the guest returned
// by Instantiate, so every call crosses a real guest import of the host
// module. It satisfies list.Ops.
type Client[T vector.Integer] struct {
	ctx   context.Context
	codec codec[T]
	names []string
	fns   []api.Function

	lastError  api.Function
	clearError api.Function

	last string
	err  error
}

// NewIntClient binds the int table of mod.
func NewIntClient(ctx context.Context, mod api.Module) (*Client[int32], error) {
	return newClient(ctx, mod, stlvec.TypeInt, intCodec)
}

// NewLongClient binds the long table of mod.
func NewLongClient(ctx context.Context, mod api.Module) (*Client[int], error) {
	return newClient(ctx, mod, stlvec.TypeLong, longCodec)
}

func newClient[T vector.Integer](ctx context.Context, mod api.Module, typ stlvec.ElementType, c codec[T]) (*Client[T], error) {
	lookup := func(name string) (api.Function, error) {
		fn := mod.ExportedFunction(name)
		if fn == nil {
			return nil, fmt.Errorf("wasmhost: module %q does not export %s", mod.Name(), name)
		}
		return fn, nil
	}

	ops := stlvec.Operations()
	cl := &Client[T]{
		ctx:   ctx,
		codec: c,
		names: make([]string, len(ops)),
		fns:   make([]api.Function, len(ops)),
	}
	for _, op := range ops {
		name := stlvec.ExportName(stlvec.Prefix, typ, op)
		fn, err := lookup(name)
		if err != nil {
			return nil, err
		}
		cl.names[op] = name
		cl.fns[op] = fn
	}

	var err error
	if cl.lastError, err = lookup(stlvec.FuncLastError); err != nil {
		return nil, err
	}
	if cl.clearError, err = lookup(stlvec.FuncClearError); err != nil {
		return nil, err
	}
	return cl, nil
}

func (c *Client[T]) call(op stlvec.Op, params ...uint64) uint64 {
	c.last = c.names[op]
	res, err := c.fns[op].Call(c.ctx, params...)
	if err != nil {
		if c.err == nil {
			c.err = fmt.Errorf("wasmhost: %s: %w", c.last, err)
		}
		return 0
	}
	if len(res) == 0 {
		return 0
	}
	return res[0]
}

// TakeError returns the first call failure since the previous TakeError, or
// the status recorded by the library, and clears both.
func (c *Client[T]) TakeError() error {
	if err := c.err; err != nil {
		c.err = nil
		return err
	}

	res, err := c.lastError.Call(c.ctx)
	if err != nil {
		return fmt.Errorf("wasmhost: %s: %w", stlvec.FuncLastError, err)
	}
	status := stlvec.Status(api.DecodeI32(res[0]))
	if status == stlvec.StatusOK {
		return nil
	}
	if _, err := c.clearError.Call(c.ctx); err != nil {
		return fmt.Errorf("wasmhost: %s: %w", stlvec.FuncClearError, err)
	}
	return &stlvec.OpError{Func: c.last, Err: stlvec.ErrorOf(status)}
}

func (c *Client[T]) New() uintptr {
	return uintptr(c.call(stlvec.OpNew))
}

func (c *Client[T]) Delete(h uintptr) {
	c.call(stlvec.OpDelete, uint64(h))
}

func (c *Client[T]) Size(h uintptr) uint64 {
	return c.call(stlvec.OpSize, uint64(h))
}

func (c *Client[T]) At(h uintptr, i uint64) T {
	return c.codec.decode(c.call(stlvec.OpAt, uint64(h), i))
}

func (c *Client[T]) Set(h uintptr, i uint64, value T) {
	c.call(stlvec.OpSet, uint64(h), i, c.codec.encode(value))
}

func (c *Client[T]) PushBack(h uintptr, value T) {
	c.call(stlvec.OpPushBack, uint64(h), c.codec.encode(value))
}

func (c *Client[T]) Insert(h uintptr, i uint64, value T) {
	c.call(stlvec.OpInsert, uint64(h), i, c.codec.encode(value))
}

func (c *Client[T]) Erase(h uintptr, i uint64) {
	c.call(stlvec.OpErase, uint64(h), i)
}

func (c *Client[T]) EraseSlice(h uintptr, begin, end uint64) {
	c.call(stlvec.OpEraseSlice, uint64(h), begin, end)
}

func (c *Client[T]) Find(h uintptr, value T) int {
	res := c.call(stlvec.OpFind, uint64(h), c.codec.encode(value))
	if c.err != nil {
		return -1
	}
	return int(api.DecodeI32(res))
}

func (c *Client[T]) PopBack(h uintptr) T {
	return c.codec.decode(c.call(stlvec.OpPopBack, uint64(h)))
}

func (c *Client[T]) Count(h uintptr, value T) uint64 {
	return c.call(stlvec.OpCount, uint64(h), c.codec.encode(value))
}

func (c *Client[T]) Sort(h uintptr) {
	c.call(stlvec.OpSort, uint64(h))
}

func (c *Client[T]) Reverse(h uintptr) {
	c.call(stlvec.OpReverse, uint64(h))
}

func (c *Client[T]) Equal(a, b uintptr) bool {
	return api.DecodeI32(c.call(stlvec.OpEqual, uint64(a), uint64(b))) != 0
}
