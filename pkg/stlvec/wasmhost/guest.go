package wasmhost

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// GuestName is the name of the trampoline guest returned by Instantiate.
const GuestName = ModuleName + "_guest"

// wasm binary format constants used by encodeGuest.
const (
	secType     = 1
	secImport   = 2
	secFunction = 3
	secExport   = 7
	secCode     = 10

	funcForm   = 0x60
	externFunc = 0x00
	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

var wasmHeader = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

// instantiateGuest builds and instantiates a guest that imports every
// function of host and exports a trampoline of the same name and type.
// Calls through its exports take the same path as imports from any compiled
// guest.
func instantiateGuest(ctx context.Context, rt wazero.Runtime, host api.Module, name string) (api.Module, error) {
	bin := encodeGuest(host.Name(), host.ExportedFunctionDefinitions())
	mod, err := rt.InstantiateWithConfig(ctx, bin, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, fmt.Errorf("wasmhost: instantiate %s: %w", name, err)
	}
	return mod, nil
}

// encodeGuest returns a module importing each of defs from module and
// re-exporting it. Functions are laid out in name order.
func encodeGuest(module string, defs map[string]api.FunctionDefinition) []byte {
	names := slices.Sorted(maps.Keys(defs))
	n := uint32(len(names))

	var types, imports, funcs, exports, code []byte
	types = uleb(types, n)
	imports = uleb(imports, n)
	funcs = uleb(funcs, n)
	exports = uleb(exports, n)
	code = uleb(code, n)

	for i, name := range names {
		def := defs[name]
		idx := uint32(i)
		params := def.ParamTypes()

		types = append(types, funcForm)
		types = valueTypes(types, params)
		types = valueTypes(types, def.ResultTypes())

		imports = str(imports, module)
		imports = str(imports, name)
		imports = append(imports, externFunc)
		imports = uleb(imports, idx)

		funcs = uleb(funcs, idx)

		exports = str(exports, name)
		exports = append(exports, externFunc)
		exports = uleb(exports, n+idx)

		body := []byte{0x00} // no locals
		for p := range params {
			body = append(body, opLocalGet)
			body = uleb(body, uint32(p))
		}
		body = append(body, opCall)
		body = uleb(body, idx)
		body = append(body, opEnd)
		code = uleb(code, uint32(len(body)))
		code = append(code, body...)
	}

	out := slices.Clone(wasmHeader)
	out = section(out, secType, types)
	out = section(out, secImport, imports)
	out = section(out, secFunction, funcs)
	out = section(out, secExport, exports)
	out = section(out, secCode, code)
	return out
}

func section(out []byte, id byte, content []byte) []byte {
	out = append(out, id)
	out = uleb(out, uint32(len(content)))
	return append(out, content...)
}

func str(out []byte, s string) []byte {
	out = uleb(out, uint32(len(s)))
	return append(out, s...)
}

func valueTypes(out []byte, vts []api.ValueType) []byte {
	out = uleb(out, uint32(len(vts)))
	return append(out, vts...)
}

// uleb appends v as unsigned LEB128.
func uleb(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}
