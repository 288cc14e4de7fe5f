// Package logging provides the logging facade used by the stlvec boundary
// layers.
//
// The Logger interface is intentionally small so hosts can plug in their own
// implementation. The default implementation is backed by go.uber.org/zap:
//
//	logger := logging.New(zap.NewExample())
//	logger.Info(ctx, "handle created", zap.String("type", "int"))
//
// The package keeps a process-wide default that starts as a no-op logger.
// The C library replaces it at load time from its configuration:
//
//	zl, err := logging.Build("debug", "json")
//	if err != nil {
//	    return err
//	}
//	logging.SetDefault(logging.New(zl))
//
// Fields are zap fields. Boundary code logs handle lifecycle at debug level,
// checked errors at warn level, and aborts at error level.
package logging
