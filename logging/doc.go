// Package logging provides a minimal logging interface and adapters for xbam.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the builder pipeline uses for diagnostics. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ZerologAdapter wrapping a zerolog.Logger
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	x := xbam.New(func(o *xbam.Options) { o.Logger = logger })
package logging
