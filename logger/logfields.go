// logger/logfields.go
package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// LogRequestStart logs the initiation of an HTTP request, including the HTTP method, URL, and headers.
// Headers should already be redacted by the caller.
func (d *defaultLogger) LogRequestStart(event string, requestID string, method string, url string, headers map[string][]string) {
	if d.logLevel <= LogLevelDebug {
		fields := []zap.Field{
			zap.String("event", event),
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", url),
			zap.Reflect("headers", headers),
		}
		d.logger.Debug("HTTP request started", fields...)
	}
}

// LogRequestEnd logs the completion of an HTTP request, including the HTTP method, URL, status code, and duration.
func (d *defaultLogger) LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration) {
	if d.logLevel <= LogLevelInfo {
		fields := []zap.Field{
			zap.String("event", event),
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
			zap.Duration("duration", duration),
		}
		d.logger.Info("HTTP request completed", fields...)
	}
}

// LogError logs an error that occurs during the processing of an HTTP request, including the HTTP method,
// URL, status code, server status message and the raw response body.
func (d *defaultLogger) LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string) {
	if d.logLevel <= LogLevelError {
		errorMessage := ""
		if err != nil {
			errorMessage = err.Error()
		}
		fields := []zap.Field{
			zap.String("event", event),
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status_code", statusCode),
			zap.String("status_message", serverStatusMessage),
			zap.String("error_message", errorMessage),
			zap.String("raw_response", rawResponse),
		}
		d.logger.Error("Error during HTTP request", fields...)
	}
}

// LogCookies logs the cookies attached to a request or response. Only request and response objects
// are understood; anything else is ignored.
func (d *defaultLogger) LogCookies(direction string, obj interface{}, method, url string) {
	if d.logLevel > LogLevelDebug {
		return
	}

	var cookies []*http.Cookie
	switch v := obj.(type) {
	case *http.Request:
		cookies = v.Cookies()
	case *http.Response:
		cookies = v.Cookies()
	default:
		return
	}

	if len(cookies) == 0 {
		return
	}

	names := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		names = append(names, cookie.Name)
	}

	d.logger.Debug("Cookies",
		zap.String("direction", direction),
		zap.String("method", method),
		zap.String("url", url),
		zap.Strings("cookie_names", names),
	)
}
