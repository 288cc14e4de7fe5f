package stlvec

// ABIVersion changes whenever a boundary function changes signature or
// meaning.
const ABIVersion = 1

var Version = "v0.0.0-in-progress"

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Version
}
