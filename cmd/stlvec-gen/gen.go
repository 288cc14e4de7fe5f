package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/stlvec/stlvec-go/pkg/stlvec"
)

// target is one element type instantiation of the C table.
type target struct {
	Type   stlvec.ElementType
	Field  string // Library field holding the Table
	CType  string
	GoType string
}

var targets = []target{
	{Type: stlvec.TypeInt, Field: "Int", CType: "C.int", GoType: "int32"},
	{Type: stlvec.TypeLong, Field: "Long", CType: "C.long", GoType: "int"},
}

type argKind int

const (
	argHandle argKind = iota
	argIndex
	argValue
)

type retKind int

const (
	retNone retKind = iota
	retHandle
	retSize
	retValue
	retInt
	retBool
)

type param struct {
	name string
	kind argKind
}

type signature struct {
	method string
	params []param
	ret    retKind
}

var (
	pHandle = param{"h", argHandle}
	pIndex  = param{"i", argIndex}
	pValue  = param{"v", argValue}
)

var signatures = map[stlvec.Op]signature{
	stlvec.OpNew:        {"New", nil, retHandle},
	stlvec.OpDelete:     {"Delete", []param{pHandle}, retNone},
	stlvec.OpSize:       {"Size", []param{pHandle}, retSize},
	stlvec.OpAt:         {"At", []param{pHandle, pIndex}, retValue},
	stlvec.OpSet:        {"Set", []param{pHandle, pIndex, pValue}, retNone},
	stlvec.OpPushBack:   {"PushBack", []param{pHandle, pValue}, retNone},
	stlvec.OpInsert:     {"Insert", []param{pHandle, pIndex, pValue}, retNone},
	stlvec.OpErase:      {"Erase", []param{pHandle, pIndex}, retNone},
	stlvec.OpEraseSlice: {"EraseSlice", []param{pHandle, {"b", argIndex}, {"e", argIndex}}, retNone},
	stlvec.OpFind:       {"Find", []param{pHandle, pValue}, retInt},
	stlvec.OpPopBack:    {"PopBack", []param{pHandle}, retValue},
	stlvec.OpCount:      {"Count", []param{pHandle, pValue}, retSize},
	stlvec.OpSort:       {"Sort", []param{pHandle}, retNone},
	stlvec.OpReverse:    {"Reverse", []param{pHandle}, retNone},
	stlvec.OpEqual:      {"Equal", []param{{"a", argHandle}, {"b", argHandle}}, retBool},
}

// export is one rendered boundary function.
type export struct {
	Name   string
	Params string
	Result string
	Body   string
}

var fileTemplate = template.Must(template.New("exports").Parse(`// Code generated by stlvec-gen. DO NOT EDIT.

//go:build cgo && !windows

package main

// #include <stddef.h>
// #include <stdint.h>
import "C"
{{range .}}
//export {{.Name}}
func {{.Name}}({{.Params}}) {{.Result}} {
	{{.Body}}
}
{{end}}`))

func (t target) cType(k argKind) string {
	switch k {
	case argHandle:
		return "C.uintptr_t"
	case argIndex:
		return "C.size_t"
	default:
		return t.CType
	}
}

func (t target) goValue(p param) string {
	switch p.kind {
	case argHandle:
		return "uintptr(" + p.name + ")"
	case argIndex:
		return "uint64(" + p.name + ")"
	default:
		return t.GoType + "(" + p.name + ")"
	}
}

func (t target) render(op stlvec.Op) (export, error) {
	sig, ok := signatures[op]
	if !ok {
		return export{}, fmt.Errorf("no C signature for operation %s", op)
	}

	params := make([]string, len(sig.params))
	args := make([]string, len(sig.params))
	for n, p := range sig.params {
		params[n] = p.name + " " + t.cType(p.kind)
		args[n] = t.goValue(p)
	}
	call := fmt.Sprintf("lib.%s.%s(%s)", t.Field, sig.method, strings.Join(args, ", "))

	e := export{
		Name:   stlvec.ExportName(stlvec.Prefix, t.Type, op),
		Params: strings.Join(params, ", "),
	}
	switch sig.ret {
	case retNone:
		e.Body = call
	case retHandle:
		e.Result, e.Body = "C.uintptr_t", "return C.uintptr_t("+call+")"
	case retSize:
		e.Result, e.Body = "C.size_t", "return C.size_t("+call+")"
	case retValue:
		e.Result, e.Body = t.CType, "return "+t.CType+"("+call+")"
	case retInt:
		e.Result, e.Body = "C.int", "return C.int("+call+")"
	case retBool:
		e.Result, e.Body = "C.int", "return cbool("+call+")"
	}
	return e, nil
}

// fileName is the output file for t.
func (t target) fileName() string {
	return "zz_exports_" + t.Type.Name + ".go"
}

// generate renders the export file for t and formats it.
func generate(t target) ([]byte, error) {
	var exports []export
	for _, op := range stlvec.Operations() {
		e, err := t.render(op)
		if err != nil {
			return nil, err
		}
		exports = append(exports, e)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, exports); err != nil {
		return nil, fmt.Errorf("render %s: %w", t.fileName(), err)
	}
	out, err := imports.Process(t.fileName(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", t.fileName(), err)
	}
	return out, nil
}
