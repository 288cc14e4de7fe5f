// Package stlvec is the per-type boundary layer over package vector.
//
// A Library owns a handle registry and one Table per element type:
//
//	lib, err := stlvec.Open(stlvec.Config{})
//	if err != nil {
//	    return err
//	}
//	defer lib.Close()
//
//	h := lib.Int.New()
//	lib.Int.PushBack(h, 3)
//	v := lib.Int.At(h, 0)
//	if err := lib.TakeError(); err != nil {
//	    return err
//	}
//	lib.Int.Delete(h)
//
// Table methods have exactly the shapes of the flat foreign-callable
// functions: handles are uintptr, indices and counts are unsigned, values are
// raw integers. A failed call returns a zero value, Find returns -1 and Equal
// returns false; the failure is recorded in the library's last-error slot and
// reported through TakeError or LastStatus. With Config.AbortOnError the call
// panics instead.
//
// The exported name of every boundary function is ExportName(prefix, type,
// op) for each entry of ElementTypes and Operations. The C library and the
// wasm host module both derive their tables from these lists.
package stlvec
