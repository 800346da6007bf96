// headers/headers.go
package headers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/cookiejar"
	"github.com/deploymenttheory/go-api-sdk-addigy/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// HeaderHandler is responsible for managing and setting headers on HTTP requests.
type HeaderHandler struct {
	req *http.Request // The http.Request for which headers are being managed
	log logger.Logger // The logger to use for logging headers
}

// NewHeaderHandler creates a new instance of HeaderHandler for a given http.Request and logger.
func NewHeaderHandler(req *http.Request, log logger.Logger) *HeaderHandler {
	return &HeaderHandler{
		req: req,
		log: log,
	}
}

// SetContentType sets the Content-Type header for the request.
func (h *HeaderHandler) SetContentType(contentType string) {
	h.req.Header.Set("Content-Type", contentType)
}

// SetAccept sets the Accept header for the request.
func (h *HeaderHandler) SetAccept(acceptHeader string) {
	h.req.Header.Set("Accept", acceptHeader)
}

// SetUserAgent sets the User-Agent header for the request.
func (h *HeaderHandler) SetUserAgent(userAgent string) {
	h.req.Header.Set("User-Agent", userAgent)
}

// SetOrigin sets the Origin header. The internal API rejects session calls without one.
func (h *HeaderHandler) SetOrigin(origin string) {
	h.req.Header.Set("Origin", origin)
}

// SetSessionCookie sets the Cookie header to the single session cookie name=token;
func (h *HeaderHandler) SetSessionCookie(name, token string) {
	h.req.Header.Set("Cookie", cookiejar.SessionCookieHeader(name, token))
}

// SetCustomHeader sets a custom header for an HTTP request.
func (h *HeaderHandler) SetCustomHeader(headerName, headerValue string) {
	h.req.Header.Set(headerName, headerValue)
}

// SetRequestHeaders sets every non-empty header in standardHeaders on the request.
func (h *HeaderHandler) SetRequestHeaders(standardHeaders map[string]string) {
	for header, value := range standardHeaders {
		if value != "" {
			h.SetCustomHeader(header, value)
		}
	}
}

// LogHeaders prints all the current headers in the http.Request using the zap logger.
// Sensitive values are redacted when hideSensitiveData is set.
func (h *HeaderHandler) LogHeaders(hideSensitiveData bool) {
	if h.log.GetLogLevel() <= logger.LogLevelDebug {
		redactedHeaders := http.Header(redact.RedactHeaders(hideSensitiveData, h.req.Header))
		h.log.Debug("HTTP Request Headers", zap.String("Headers", HeadersToString(redactedHeaders)))
	}
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line, sorted by name.
func HeadersToString(headers http.Header) string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	headerStrings := make([]string, 0, len(names))
	for _, name := range names {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(headers[name], ", ")))
	}
	return strings.Join(headerStrings, "\n")
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	deprecationHeader := resp.Header.Get("Deprecation")
	if deprecationHeader == "" {
		return
	}

	endpoint := ""
	if resp.Request != nil && resp.Request.URL != nil {
		endpoint = resp.Request.URL.String()
	}
	log.Warn("API endpoint is deprecated",
		zap.String("Date", deprecationHeader),
		zap.String("Endpoint", endpoint),
	)
}
