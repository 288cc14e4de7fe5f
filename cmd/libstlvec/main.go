// Command libstlvec is built with -buildmode=c-shared into libstlvec.so and
// its header. It exports the vector tables for int and long elements as
// stlvec_<type>_<op> plus the stlvec_* diagnostics.
//
// The library reads its configuration from the environment when it is
// loaded; see stlvec.ConfigFromEnv. Checked failures are recorded and must
// be polled with stlvec_last_error unless STLVEC_ABORT_ON_ERROR is set.
package main

//go:generate go run ../stlvec-gen -out .

func main() {}
