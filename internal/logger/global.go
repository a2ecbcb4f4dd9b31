package logger

import "os"

var globalLogger *Logger

func init() {
	globalLogger = New(
		ParseLevel(os.Getenv("LOG_LEVEL")),
		ParseFormat(os.Getenv("LOG_FORMAT")),
		os.Stdout,
	)
}

// Global returns the process-wide logger instance.
func Global() *Logger {
	return globalLogger
}

// SetGlobal replaces the process-wide logger instance.
func SetGlobal(l *Logger) {
	globalLogger = l
}

// Debug logs a debug message using the global logger.
func Debug(msg string, fields ...map[string]interface{}) {
	globalLogger.Debug(msg, fields...)
}

// Info logs an informational message using the global logger.
func Info(msg string, fields ...map[string]interface{}) {
	globalLogger.Info(msg, fields...)
}

// Warn logs a warning using the global logger.
func Warn(msg string, fields ...map[string]interface{}) {
	globalLogger.Warn(msg, fields...)
}

// Error logs an error using the global logger.
func Error(msg string, err error, fields ...map[string]interface{}) {
	globalLogger.Error(msg, err, fields...)
}

// Infof logs a formatted informational message using the global logger.
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Warnf logs a formatted warning using the global logger.
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}
