package logging

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/muurk/wifictrl/internal/ctrlproto"
	"github.com/muurk/wifictrl/internal/wifierr"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "WIFICTRL_LOG_LEVEL"

// maxPreviewBytes caps how much of a reply is copied into a log entry
const maxPreviewBytes = 256

// Initialize creates a new logger with the specified level.
// If level is empty, it checks WIFICTRL_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	// stdout carries decoded records, so logs go to stderr
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
	}
}

// InitializeFromEnv initializes the logger from the WIFICTRL_LOG_LEVEL
// environment variable.
func InitializeFromEnv() error {
	return Initialize("")
}

// SetLogger replaces the global logger. Passing nil restores silent mode.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogResponse logs a raw daemon reply at debug level
func LogResponse(label string, response string) {
	if !GetLogger().Core().Enabled(zapcore.DebugLevel) {
		return
	}
	Debug(label,
		zap.Int("length", len(response)),
		zap.Int("lines", strings.Count(strings.TrimSpace(response), "\n")+1),
		zap.String("preview", preview(response)),
	)
}

// LogParseFailure logs a reply that could not be decoded into a record.
// The full reply is included at debug level only.
func LogParseFailure(record string, err error) {
	fields := []zap.Field{zap.String("record", record)}

	var wErr *wifierr.Error
	if errors.As(err, &wErr) && wErr.Response != "" {
		// wErr.Error() embeds the whole reply, so only its cause is logged
		fields = append(fields, zap.String("error_kind", wErr.Kind.String()))
		if wErr.Err != nil {
			fields = append(fields, zap.Error(wErr.Err))
		}
		fields = append(fields, zap.Int("response_length", len(wErr.Response)))
	} else {
		fields = append(fields, zap.Error(err))
	}

	if cfgErr, ok := asConfigError(err); ok {
		fields = append(fields, zap.String("kind", cfgErr.Kind.String()))
		if cfgErr.Kind == ctrlproto.KindDecode {
			fields = append(fields,
				zap.String("field", cfgErr.Field),
				zap.String("value", cfgErr.Value),
			)
		}
	}

	if wErr != nil && wErr.Response != "" && GetLogger().Core().Enabled(zapcore.DebugLevel) {
		fields = append(fields, zap.String("response", wErr.Response))
	}

	Warn("Failed to decode reply", fields...)
}

// asConfigError finds the core decode error behind err, wrapped or bare
func asConfigError(err error) (*ctrlproto.ConfigError, bool) {
	if cfgErr, _, ok := wifierr.ParseFailure(err); ok {
		return cfgErr, true
	}
	var cfgErr *ctrlproto.ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

// preview returns a quoted, length-limited copy of s suitable for a single log field
func preview(s string) string {
	if len(s) > maxPreviewBytes {
		return strconv.Quote(s[:maxPreviewBytes]) + "..."
	}
	return strconv.Quote(s)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
