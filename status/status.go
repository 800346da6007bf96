// status/status.go
// Package status classifies the HTTP status codes returned by the Addigy hosts.
package status

import (
	"fmt"
	"net/http"
)

// NoResponseMessage describes a request that never produced a response.
const NoResponseMessage = "No response received, possible network or connection error."

// addigyMessages covers the statuses Addigy answers with in practice.
var addigyMessages = map[int]string{
	http.StatusFound:               "Redirected, usually to the sign-in page. The session cookie is missing or has expired.",
	http.StatusBadRequest:          "Bad request. Check the request parameters and payload fields.",
	http.StatusUnauthorized:        "Authentication failed. Check the client id and secret, or sign in again for internal endpoints.",
	http.StatusForbidden:           "Forbidden. Internal endpoints require an owner or power user session.",
	http.StatusNotFound:            "Not found. Check the endpoint path and the identifiers in it.",
	http.StatusConflict:            "Conflict. An object with the same name or identifier already exists.",
	http.StatusUnprocessableEntity: "Unprocessable entity. The payload was well formed but rejected.",
	http.StatusTooManyRequests:     "Rate limited by Addigy. Slow down before sending more requests.",
	http.StatusInternalServerError: "Addigy internal error. Malformed MDM payloads often surface this way.",
	http.StatusBadGateway:          "Bad gateway between Addigy services.",
	http.StatusServiceUnavailable:  "Addigy is unavailable or in maintenance.",
	http.StatusGatewayTimeout:      "Addigy timed out waiting for an upstream service.",
}

// IsRedirectStatusCode reports whether statusCode asks the client to repeat the request against the
// Location header (301, 302, 303, 307, 308).
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsSuccessStatusCode reports whether statusCode is in the 2xx range.
func IsSuccessStatusCode(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// Describe returns a message for statusCode, falling back to the standard status text.
func Describe(statusCode int) string {
	if message, ok := addigyMessages[statusCode]; ok {
		return message
	}
	if text := http.StatusText(statusCode); text != "" {
		return text + "."
	}
	return fmt.Sprintf("Unknown status code: %d", statusCode)
}

// TranslateStatusCode describes the status of resp. A nil response means the request never reached
// Addigy.
func TranslateStatusCode(resp *http.Response) string {
	if resp == nil {
		return NoResponseMessage
	}
	return Describe(resp.StatusCode)
}
