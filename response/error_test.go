// response/error_test.go
package response

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/mocklogger"
	"github.com/deploymenttheory/go-api-sdk-addigy/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newErrorResponse(statusCode int, contentType, body string) *http.Response {
	resp := &http.Response{
		StatusCode: statusCode,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    httptest.NewRequest(http.MethodPost, "https://app-prod.addigy.com/api/mdm/user/profiles/configurations/", nil),
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	return resp
}

// TestHandleAPIErrorResponse tests the handling of various API error responses.
func TestHandleAPIErrorResponse(t *testing.T) {
	tests := []struct {
		name            string
		statusCode      int
		contentType     string
		body            string
		expectedMessage string
		expectedDetails []string
	}{
		{
			name:            "json message",
			statusCode:      http.StatusBadRequest,
			contentType:     "application/json",
			body:            `{"message": "invalid payload"}`,
			expectedMessage: "invalid payload",
		},
		{
			name:            "json error string",
			statusCode:      http.StatusUnauthorized,
			contentType:     "application/json; charset=utf-8",
			body:            `{"error": "invalid credentials"}`,
			expectedMessage: "invalid credentials",
		},
		{
			name:            "json nested error with details",
			statusCode:      http.StatusUnprocessableEntity,
			contentType:     "application/json",
			body:            `{"error": {"message": "validation failed"}, "errors": ["payload_type missing", {"field": "name"}]}`,
			expectedMessage: "validation failed",
			expectedDetails: []string{"payload_type missing", `{"field":"name"}`},
		},
		{
			name:            "json without message",
			statusCode:      http.StatusInternalServerError,
			contentType:     "application/json",
			body:            `{}`,
			expectedMessage: "An unknown error occurred",
		},
		{
			name:            "xml",
			statusCode:      http.StatusBadRequest,
			contentType:     "application/xml",
			body:            `<error><code>400</code><message>bad request</message></error>`,
			expectedMessage: "400; bad request",
		},
		{
			name:            "html paragraphs and links",
			statusCode:      http.StatusForbidden,
			contentType:     "text/html",
			body:            `<html><body><p>Session expired. <a href="https://app.addigy.com/login">Sign in</a></p></body></html>`,
			expectedMessage: "Session expired. [Link: https://app.addigy.com/login] Sign in",
		},
		{
			name:            "html title only",
			statusCode:      http.StatusBadGateway,
			contentType:     "text/html",
			body:            `<html><head><title>502 Bad Gateway</title></head><body><h1>502</h1></body></html>`,
			expectedMessage: "502 Bad Gateway",
		},
		{
			name:            "plain text",
			statusCode:      http.StatusNotFound,
			contentType:     "text/plain",
			body:            "not found\n",
			expectedMessage: "not found",
		},
		{
			name:            "unknown content type",
			statusCode:      http.StatusTeapot,
			contentType:     "application/pdf",
			body:            "%PDF",
			expectedMessage: "Unknown content type error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLog := mocklogger.NewMockLogger()
			mockLog.On("LogError", "api_error_response", http.MethodPost, mock.Anything, tt.statusCode, mock.Anything, mock.Anything, tt.body).Once()

			apiErr := HandleAPIErrorResponse(newErrorResponse(tt.statusCode, tt.contentType, tt.body), mockLog)

			require.NotNil(t, apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, http.MethodPost, apiErr.Method)
			assert.Equal(t, "https://app-prod.addigy.com/api/mdm/user/profiles/configurations/", apiErr.URL)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Equal(t, tt.expectedDetails, apiErr.Details)
			assert.Equal(t, tt.body, apiErr.RawResponse)
			mockLog.AssertExpectations(t)
		})
	}
}

func TestAPIErrorError(t *testing.T) {
	apiErr := &APIError{StatusCode: http.StatusNotFound, Method: http.MethodGet, URL: "https://prod.addigy.com/api/devices", Message: "missing"}

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(apiErr.Error()), &decoded))
	assert.Equal(t, float64(http.StatusNotFound), decoded["status_code"])
	assert.Equal(t, "missing", decoded["message"])
}

func TestAPIErrorSatisfiesErrorsAs(t *testing.T) {
	var err error = HandleAPIErrorResponse(newErrorResponse(http.StatusBadRequest, "text/plain", "nope"), mocklogger.NewMockLogger())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, status.Describe(http.StatusBadRequest), apiErr.StatusMessage)
}
