// Package wasmhost exposes the vector tables to WebAssembly guests as a wazero
// host module named "stlvec".
//
// Handles, indices and counts cross as i64. Elements of the int table cross
// as i32 and elements of the long table as i64. Results that are C ints in
// the native library (find, equal, last_error, abi_version) are i32.
package wasmhost

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/pkg/stlvec"
	"github.com/stlvec/stlvec-go/pkg/stlvec/logging"
	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

// ModuleName is the import module guests use.
const ModuleName = stlvec.Prefix

var (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
)

// codec moves one element type on and off the wasm value stack.
type codec[T vector.Integer] struct {
	typ    api.ValueType
	encode func(T) uint64
	decode func(uint64) T
}

var intCodec = codec[int32]{
	typ:    i32,
	encode: api.EncodeI32,
	decode: api.DecodeI32,
}

var longCodec = codec[int]{
	typ:    i64,
	encode: func(v int) uint64 { return api.EncodeI64(int64(v)) },
	decode: func(s uint64) int { return int(int64(s)) },
}

func boolean(b bool) uint64 {
	if b {
		return api.EncodeI32(1)
	}
	return api.EncodeI32(0)
}

// Instantiate registers the host module for lib in rt together with a
// trampoline guest named GuestName, and returns the guest. Its exports mirror
// the host functions and can be called through api.Function, which wazero
// does not allow on host modules.
func Instantiate(ctx context.Context, rt wazero.Runtime, lib *stlvec.Library) (api.Module, error) {
	host, err := InstantiateHost(ctx, rt, lib)
	if err != nil {
		return nil, err
	}
	return instantiateGuest(ctx, rt, host, GuestName)
}

// InstantiateHost registers only the host module for lib in rt. Guests
// compiled against the "stlvec" import module can be instantiated afterwards.
func InstantiateHost(ctx context.Context, rt wazero.Runtime, lib *stlvec.Library) (api.Module, error) {
	if lib == nil {
		return nil, fmt.Errorf("wasmhost: nil library")
	}

	b := rt.NewHostModuleBuilder(ModuleName)
	n := define(b, lib.Int, intCodec)
	n += define(b, lib.Long, longCodec)
	n += diagnostics(b, lib)

	mod, err := b.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("wasmhost: instantiate %s: %w", ModuleName, err)
	}
	logging.Default().Debug(ctx, "wasm host module instantiated",
		zap.String("module", ModuleName), zap.Int("functions", n))
	return mod, nil
}

func define[T vector.Integer](b wazero.HostModuleBuilder, t *stlvec.Table[T], c codec[T]) int {
	n := 0
	export := func(op stlvec.Op, params, results []api.ValueType, fn api.GoModuleFunc) {
		b.NewFunctionBuilder().
			WithGoModuleFunction(fn, params, results).
			Export(stlvec.ExportName(stlvec.Prefix, t.Type(), op))
		n++
	}
	h := func(s uint64) uintptr { return uintptr(s) }
	e := c.typ

	export(stlvec.OpNew, nil, []api.ValueType{i64}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = uint64(t.New())
	})
	export(stlvec.OpDelete, []api.ValueType{i64}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Delete(h(s[0]))
	})
	export(stlvec.OpSize, []api.ValueType{i64}, []api.ValueType{i64}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = t.Size(h(s[0]))
	})
	export(stlvec.OpAt, []api.ValueType{i64, i64}, []api.ValueType{e}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = c.encode(t.At(h(s[0]), s[1]))
	})
	export(stlvec.OpSet, []api.ValueType{i64, i64, e}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Set(h(s[0]), s[1], c.decode(s[2]))
	})
	export(stlvec.OpPushBack, []api.ValueType{i64, e}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.PushBack(h(s[0]), c.decode(s[1]))
	})
	export(stlvec.OpInsert, []api.ValueType{i64, i64, e}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Insert(h(s[0]), s[1], c.decode(s[2]))
	})
	export(stlvec.OpErase, []api.ValueType{i64, i64}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Erase(h(s[0]), s[1])
	})
	export(stlvec.OpEraseSlice, []api.ValueType{i64, i64, i64}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.EraseSlice(h(s[0]), s[1], s[2])
	})
	export(stlvec.OpFind, []api.ValueType{i64, e}, []api.ValueType{i32}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = api.EncodeI32(int32(t.Find(h(s[0]), c.decode(s[1]))))
	})
	export(stlvec.OpPopBack, []api.ValueType{i64}, []api.ValueType{e}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = c.encode(t.PopBack(h(s[0])))
	})
	export(stlvec.OpCount, []api.ValueType{i64, e}, []api.ValueType{i64}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = t.Count(h(s[0]), c.decode(s[1]))
	})
	export(stlvec.OpSort, []api.ValueType{i64}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Sort(h(s[0]))
	})
	export(stlvec.OpReverse, []api.ValueType{i64}, nil, func(_ context.Context, _ api.Module, s []uint64) {
		t.Reverse(h(s[0]))
	})
	export(stlvec.OpEqual, []api.ValueType{i64, i64}, []api.ValueType{i32}, func(_ context.Context, _ api.Module, s []uint64) {
		s[0] = boolean(t.Equal(h(s[0]), h(s[1])))
	})
	return n
}

func diagnostics(b wazero.HostModuleBuilder, lib *stlvec.Library) int {
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, s []uint64) {
			s[0] = api.EncodeI32(int32(lib.LastStatus()))
		}), nil, []api.ValueType{i32}).
		Export(stlvec.FuncLastError)
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(context.Context, api.Module, []uint64) {
			lib.ClearError()
		}), nil, nil).
		Export(stlvec.FuncClearError)
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, s []uint64) {
			s[0] = uint64(lib.LiveHandles())
		}), nil, []api.ValueType{i64}).
		Export(stlvec.FuncLiveHandles)
	b.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, s []uint64) {
			s[0] = api.EncodeI32(stlvec.ABIVersion)
		}), nil, []api.ValueType{i32}).
		Export(stlvec.FuncABIVersion)
	return 4
}
