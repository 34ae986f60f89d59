package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// level is shared by every logger this package creates, so one SetLevel
// call adjusts verbosity application-wide.
var level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

// Logger is a thin wrapper around a zap sugared logger
type Logger struct {
	sugar *zap.SugaredLogger
}

// New creates a new logger for the given component. Output goes to stderr
// so stdout stays free for suggestion output.
func New(component string) *Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stderr),
		level,
	)
	sugar := zap.New(core).Sugar()
	if component != "" {
		sugar = sugar.Named(component)
	}
	return &Logger{sugar: sugar}
}

// SetLevel changes the verbosity for all loggers. Unknown level names are
// ignored and leave the current level in place.
func SetLevel(name string) {
	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return
	}
	level.SetLevel(parsed)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// Global logger instance for application-wide logging
var Global = New("")

// SetGlobal sets the global logger
func SetGlobal(logger *Logger) {
	Global = logger
}
