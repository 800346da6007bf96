// logger/logger.go
package logger

// Ref: https://betterstack.com/community/guides/logging/go/zap/#logging-errors-with-zap
import (
	"errors"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel mirrors zap's levels, with LogLevelNone added to silence the SDK.
type LogLevel int

const (
	LogLevelDebug  LogLevel = -1
	LogLevelInfo   LogLevel = 0
	LogLevelWarn   LogLevel = 1
	LogLevelError  LogLevel = 2
	LogLevelDPanic LogLevel = 3
	LogLevelPanic  LogLevel = 4
	LogLevelFatal  LogLevel = 5
	LogLevelNone   LogLevel = 6
)

var levelNames = map[string]LogLevel{
	"LogLevelDebug":  LogLevelDebug,
	"LogLevelInfo":   LogLevelInfo,
	"LogLevelWarn":   LogLevelWarn,
	"LogLevelError":  LogLevelError,
	"LogLevelDPanic": LogLevelDPanic,
	"LogLevelPanic":  LogLevelPanic,
	"LogLevelFatal":  LogLevelFatal,
	"LogLevelNone":   LogLevelNone,
}

// ParseLogLevelFromString converts the level names used in config files and ADDIGY_LOG_LEVEL.
// Unknown names return LogLevelNone.
func ParseLogLevelFromString(levelStr string) LogLevel {
	if level, ok := levelNames[levelStr]; ok {
		return level
	}
	return LogLevelNone
}

// Logger is the structured logger shared by the transport and every service.
type Logger interface {
	SetLevel(level LogLevel)
	Debug(msg string, fields ...zapcore.Field)
	Info(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	// Error logs msg and returns it as an error, so call sites can log and return in one statement.
	Error(msg string, fields ...zapcore.Field) error
	Panic(msg string, fields ...zapcore.Field)
	Fatal(msg string, fields ...zapcore.Field)
	With(fields ...zapcore.Field) Logger
	GetLogLevel() LogLevel

	// Request lifecycle helpers
	LogRequestStart(event string, requestID string, method string, url string, headers map[string][]string)
	LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration)
	LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string)
	LogCookies(direction string, obj interface{}, method, url string)
}

// defaultLogger filters by logLevel before handing entries to zap.
type defaultLogger struct {
	logger   *zap.Logger
	logLevel LogLevel
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &defaultLogger{logger: zap.NewNop(), logLevel: LogLevelNone}
}

func (d *defaultLogger) SetLevel(level LogLevel) {
	d.logLevel = level
}

func (d *defaultLogger) GetLogLevel() LogLevel {
	return d.logLevel
}

// enabled reports whether entries at level pass the configured threshold.
func (d *defaultLogger) enabled(level LogLevel) bool {
	return d.logLevel <= level
}

// ToZapFields converts alternating key/value arguments into zap fields. Non-string keys and a
// trailing key without a value are dropped.
func ToZapFields(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}

func (d *defaultLogger) Debug(msg string, fields ...zapcore.Field) {
	if d.enabled(LogLevelDebug) {
		d.logger.Debug(msg, fields...)
	}
}

func (d *defaultLogger) Info(msg string, fields ...zapcore.Field) {
	if d.enabled(LogLevelInfo) {
		d.logger.Info(msg, fields...)
	}
}

func (d *defaultLogger) Warn(msg string, fields ...zapcore.Field) {
	if d.enabled(LogLevelWarn) {
		d.logger.Warn(msg, fields...)
	}
}

func (d *defaultLogger) Error(msg string, fields ...zapcore.Field) error {
	if d.enabled(LogLevelError) {
		d.logger.Error(msg, fields...)
	}
	return errors.New(msg)
}

// Panic logs at panic level, after which zap panics.
func (d *defaultLogger) Panic(msg string, fields ...zapcore.Field) {
	if d.enabled(LogLevelPanic) {
		d.logger.Panic(msg, fields...)
	}
}

// Fatal logs at fatal level, after which zap exits the process.
func (d *defaultLogger) Fatal(msg string, fields ...zapcore.Field) {
	if d.enabled(LogLevelFatal) {
		d.logger.Fatal(msg, fields...)
	}
}

// With returns a child logger that adds fields to every entry.
func (d *defaultLogger) With(fields ...zapcore.Field) Logger {
	return &defaultLogger{
		logger:   d.logger.With(fields...),
		logLevel: d.logLevel,
	}
}
