package logger

import (
	"go.uber.org/zap/zapcore"
)

// customCore appends a fixed set of trailing fields (SDK name and version) to every entry,
// after the call-site fields.
type customCore struct {
	zapcore.Core
	trailing []zapcore.Field
}

// With adds structured context to the Core.
func (c *customCore) With(fields []zapcore.Field) zapcore.Core {
	return &customCore{Core: c.Core.With(fields), trailing: c.trailing}
}

// Write serializes the Entry with the call-site fields first and the trailing fields last.
func (c *customCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, appendTrailing(fields, c.trailing))
}

// Check determines whether the supplied Entry should be logged.
func (c *customCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, c)
	}
	return checkedEntry
}

// Sync flushes buffered logs (if any).
func (c *customCore) Sync() error {
	return c.Core.Sync()
}

// appendTrailing drops call-site fields that collide with a trailing key and appends the trailing fields.
func appendTrailing(fields, trailing []zapcore.Field) []zapcore.Field {
	reserved := make(map[string]bool, len(trailing))
	for _, field := range trailing {
		reserved[field.Key] = true
	}

	out := make([]zapcore.Field, 0, len(fields)+len(trailing))
	for _, field := range fields {
		if reserved[field.Key] {
			continue
		}
		out = append(out, field)
	}
	return append(out, trailing...)
}
