// Package internalcheck holds static checks over the module's own source.
//
// The checks load packages with golang.org/x/tools/go/packages and inspect
// their syntax. They guard properties the compiler cannot: that the C export
// table matches the operation table, and that boundary code only panics on
// the abort path.
//
// # Internal Use Only
//
// The package has no API; it exists for its tests.
package internalcheck
