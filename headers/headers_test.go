// headers/headers_test.go
package headers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/deploymenttheory/go-api-sdk-addigy/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSetSessionCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "https://app-prod.addigy.com", nil)
	headerHandler := NewHeaderHandler(req, mocklogger.NewMockLogger())

	headerHandler.SetSessionCookie("auth_token", "abc123")
	headerHandler.SetOrigin("https://app-prod.addigy.com")

	assert.Equal(t, "auth_token=abc123;", req.Header.Get("Cookie"))
	assert.Equal(t, "https://app-prod.addigy.com", req.Header.Get("Origin"))
}

func TestSetContentType(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	headerHandler := NewHeaderHandler(req, mocklogger.NewMockLogger())

	headerHandler.SetContentType("application/json")
	headerHandler.SetAccept("application/json")

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"), "Content-Type header should be correctly set")
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestSetRequestHeadersSkipsEmptyValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	headerHandler := NewHeaderHandler(req, mocklogger.NewMockLogger())

	headerHandler.SetRequestHeaders(map[string]string{
		"client-id":     "id",
		"client-secret": "",
	})

	assert.Equal(t, "id", req.Header.Get("client-id"))
	_, present := req.Header["Client-Secret"]
	assert.False(t, present)
}

func TestLogHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	req.Header.Set("Cookie", "auth_token=abc;")
	mockLog := mocklogger.NewMockLogger()
	mockLog.SetLevel(logger.LogLevelDebug)
	mockLog.On("Debug", "HTTP Request Headers", mock.MatchedBy(func(fields []zap.Field) bool {
		return len(fields) == 1 && fields[0].String == "Cookie: REDACTED"
	})).Once()

	headerHandler := NewHeaderHandler(req, mockLog)
	headerHandler.LogHeaders(true)

	mockLog.AssertExpectations(t)
}

func TestLogHeadersAboveDebugIsSilent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	mockLog := mocklogger.NewMockLogger()
	mockLog.SetLevel(logger.LogLevelInfo)
	mockLog.On("Debug", mock.Anything, mock.Anything)

	NewHeaderHandler(req, mockLog).LogHeaders(true)

	mockLog.AssertNotCalled(t, "Debug", mock.Anything, mock.Anything)
}

func TestHeadersToStringIsSorted(t *testing.T) {
	headers := http.Header{}
	headers.Set("B-Header", "2")
	headers.Add("A-Header", "1")
	headers.Add("A-Header", "one")

	assert.Equal(t, "A-Header: 1, one\nB-Header: 2", HeadersToString(headers))
}

func TestCheckDeprecationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://prod.addigy.com/api/devices", nil)
	resp := &http.Response{Header: http.Header{}, Request: req}
	resp.Header.Set("Deprecation", "Sun, 11 Nov 2029 23:59:59 GMT")

	mockLog := mocklogger.NewMockLogger()
	mockLog.On("Warn", "API endpoint is deprecated", mock.Anything).Once()

	CheckDeprecationHeader(resp, mockLog)

	mockLog.AssertExpectations(t)
}
