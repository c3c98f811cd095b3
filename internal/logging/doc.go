// Package logging provides structured logging for wifictrl.
//
// This package wraps a package-global zap logger with convenience functions for
// the few things worth logging around reply decoding: the raw reply that was
// fed in, and the reason a reply was rejected.
//
// # Log Levels
//
//   - Debug: raw reply previews, full reply text on decode failures
//   - Info: normal operations (file read, registry saved)
//   - Warn: replies that failed to decode
//   - Error: unrecoverable command failures
//
// # Configuration
//
// Logging is silent by default so command output stays clean. It is enabled
// with the --log-level flag or the WIFICTRL_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize(logLevel); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Log output goes to stderr in zap's console format.
//
// # Thread Safety
//
// Logging functions are safe for concurrent use. Initialize and SetLogger
// replace the global logger and should be called once at startup.
package logging
