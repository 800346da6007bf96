// headers/redact/redact.go
package redact

import "net/http"

// sensitiveHeaders holds the canonical names of headers whose values never reach the logs
// when redaction is enabled. The Addigy public API authenticates with client-id and
// client-secret headers and the internal API with an auth_token session cookie.
var sensitiveHeaders = map[string]bool{
	"Authorization":       true,
	"Client-Secret":       true,
	"Cookie":              true,
	"Set-Cookie":          true,
	"Proxy-Authorization": true,
}

// RedactSensitiveHeaderData redacts sensitive data based on the hideSensitiveData flag.
// Header names are matched case-insensitively.
func RedactSensitiveHeaderData(hideSensitiveData bool, key, value string) string {
	if hideSensitiveData && sensitiveHeaders[http.CanonicalHeaderKey(key)] {
		return "REDACTED"
	}
	return value
}

// RedactHeaders returns a copy of headers with every sensitive value replaced.
func RedactHeaders(hideSensitiveData bool, headers http.Header) map[string][]string {
	redacted := make(map[string][]string, len(headers))
	for name, values := range headers {
		copied := make([]string, len(values))
		for i, value := range values {
			copied[i] = RedactSensitiveHeaderData(hideSensitiveData, name, value)
		}
		redacted[name] = copied
	}
	return redacted
}
