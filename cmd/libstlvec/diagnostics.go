//go:build cgo && !windows

package main

// #include <stddef.h>
import "C"

import "github.com/stlvec/stlvec-go/pkg/stlvec"

//export stlvec_last_error
func stlvec_last_error() C.int {
	return C.int(lib.LastStatus())
}

//export stlvec_clear_error
func stlvec_clear_error() {
	lib.ClearError()
}

//export stlvec_live_handles
func stlvec_live_handles() C.size_t {
	return C.size_t(lib.LiveHandles())
}

//export stlvec_abi_version
func stlvec_abi_version() C.int {
	return stlvec.ABIVersion
}
