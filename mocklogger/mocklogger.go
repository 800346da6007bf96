// mocklogger/mocklogger.go
package mocklogger

import (
	"errors"
	"time"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockLogger is a mock type for the Logger interface, embedding a *zap.Logger to satisfy the type requirement.
//
// Level methods (Debug, Info, Warn) only record a call when an expectation for that method has been
// registered with On, so tests can assert on the calls they care about without stubbing every log line.
type MockLogger struct {
	mock.Mock
	*zap.Logger
	logLevel logger.LogLevel
}

// NewMockLogger creates a new instance of MockLogger with an embedded no-op *zap.Logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Logger: zap.NewNop(),
	}
}

// Ensure MockLogger implements the logger.Logger interface from the logger package
var _ logger.Logger = (*MockLogger)(nil)

// expects reports whether an expectation has been registered for method.
func (m *MockLogger) expects(method string) bool {
	for _, call := range m.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}

// GetLogLevel returns the level set with SetLevel.
func (m *MockLogger) GetLogLevel() logger.LogLevel {
	return m.logLevel
}

// SetLevel sets the logging level of the MockLogger.
func (m *MockLogger) SetLevel(level logger.LogLevel) {
	m.logLevel = level
}

// With returns a fresh MockLogger carrying the same level.
func (m *MockLogger) With(fields ...zap.Field) logger.Logger {
	newMock := NewMockLogger()
	newMock.logLevel = m.logLevel
	return newMock
}

// Debug logs a message at the Debug level.
func (m *MockLogger) Debug(msg string, fields ...zap.Field) {
	if m.expects("Debug") {
		m.Called(msg, fields)
	}
}

// Info logs a message at the Info level.
func (m *MockLogger) Info(msg string, fields ...zap.Field) {
	if m.expects("Info") {
		m.Called(msg, fields)
	}
}

// Warn logs a message at the Warn level.
func (m *MockLogger) Warn(msg string, fields ...zap.Field) {
	if m.expects("Warn") {
		m.Called(msg, fields)
	}
}

// Error logs a message at the Error level and returns an error carrying msg.
func (m *MockLogger) Error(msg string, fields ...zap.Field) error {
	if m.expects("Error") {
		m.Called(msg, fields)
	}
	return errors.New(msg)
}

// Panic logs a message at the Panic level.
func (m *MockLogger) Panic(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// Fatal logs a message at the Fatal level.
func (m *MockLogger) Fatal(msg string, fields ...zap.Field) {
	m.Called(msg, fields)
}

// LogRequestStart logs the start of an HTTP request.
func (m *MockLogger) LogRequestStart(event string, requestID string, method string, url string, headers map[string][]string) {
	if m.expects("LogRequestStart") {
		m.Called(event, requestID, method, url, headers)
	}
}

// LogRequestEnd logs the end of an HTTP request.
func (m *MockLogger) LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration) {
	if m.expects("LogRequestEnd") {
		m.Called(event, method, url, statusCode, duration)
	}
}

// LogError logs an error event.
func (m *MockLogger) LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string) {
	if m.expects("LogError") {
		m.Called(event, method, url, statusCode, serverStatusMessage, err, rawResponse)
	}
}

// LogCookies logs information about cookies.
func (m *MockLogger) LogCookies(direction string, obj interface{}, method, url string) {
	if m.expects("LogCookies") {
		m.Called(direction, obj, method, url)
	}
}
