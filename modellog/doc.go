// Package modellog provides core.ModelLog implementations.
//
//   - InMemoryStore keeps every entry in memory (tests, tooling)
//   - LoggerSink forwards entries to a logging.Logger
//   - Multi fans an entry out to several logs
package modellog
