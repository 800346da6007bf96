// logger/loggerconfig.go
package logger

// Ref: https://betterstack.com/community/guides/logging/go/zap/#logging-errors-with-zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deploymenttheory/go-api-sdk-addigy/version"
)

const (
	LogOutputJSON   = "json"
	LogOutputPretty = "pretty"
)

// BuildLogger creates and returns a new zap logger instance wrapped in the Logger interface.
// "json" produces structured JSON lines, "pretty" produces console output separated by
// logConsoleSeparator. When logExportPath is non-empty, logs are also written to that file.
// The 'sdk' and 'sdk_version' fields are appended to the end of every entry by customCore.
// The function panics if the logger cannot be initialized.
func BuildLogger(logLevel LogLevel, logOutputFormat string, logConsoleSeparator string, logExportPath string) Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.MessageKey = "msg"
	encoderCfg.LevelKey = "level"
	encoderCfg.NameKey = "logger"
	encoderCfg.CallerKey = "caller"
	encoderCfg.StacktraceKey = "stacktrace"
	encoderCfg.LineEnding = zapcore.DefaultLineEnding
	encoderCfg.EncodeDuration = zapcore.StringDurationEncoder

	encoding := "json"
	if logOutputFormat == LogOutputPretty {
		encoding = "console"
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.ConsoleSeparator = logConsoleSeparator
	}

	outputPaths := []string{"stdout"}
	if logExportPath != "" {
		outputPaths = append(outputPaths, logExportPath)
	}

	config := zap.Config{
		Level:             zap.NewAtomicLevelAt(convertToZapLevel(logLevel)),
		Development:       false,
		Encoding:          encoding,
		DisableCaller:     true,
		DisableStacktrace: true,
		Sampling:          nil,
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputPaths,
		ErrorOutputPaths: []string{ // zap's internal errors only, not those logged by the SDK
			"stderr",
		},
	}

	logger := zap.Must(config.Build())

	// Wrap the original core with the custom core
	wrappedCore := &customCore{
		Core: logger.Core(),
		trailing: []zapcore.Field{
			zap.String("sdk", version.GetAppName()),
			zap.String("sdk_version", version.GetVersion()),
		},
	}
	wrappedLogger := zap.New(wrappedCore)

	return &defaultLogger{
		logger:   wrappedLogger,
		logLevel: logLevel,
	}
}

// convertToZapLevel converts the custom LogLevel to a zapcore.Level
func convertToZapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zap.DebugLevel
	case LogLevelInfo:
		return zap.InfoLevel
	case LogLevelWarn:
		return zap.WarnLevel
	case LogLevelError:
		return zap.ErrorLevel
	case LogLevelDPanic:
		return zap.DPanicLevel
	case LogLevelPanic:
		return zap.PanicLevel
	case LogLevelFatal:
		return zap.FatalLevel
	default:
		return zap.InfoLevel // Default to InfoLevel
	}
}
