// redirecthandler/redirecthandler.go
package redirecthandler

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// RedirectHandler contains configurations for handling HTTP redirects.
type RedirectHandler struct {
	Logger           logger.Logger // Logger instance for logging.
	MaxRedirects     int           // Maximum allowed redirects to prevent infinite loops.
	SensitiveHeaders []string      // Headers to be removed on cross-domain redirects.
}

// NewRedirectHandler creates a new instance of RedirectHandler. The Addigy credentials travel in the
// client-id and client-secret headers and the session in Cookie, so all of them are dropped when a
// redirect leaves the original host.
func NewRedirectHandler(log logger.Logger, maxRedirects int) *RedirectHandler {
	return &RedirectHandler{
		Logger:           log,
		MaxRedirects:     maxRedirects,
		SensitiveHeaders: []string{"Authorization", "Cookie", "Client-Id", "Client-Secret"},
	}
}

// AddSensitiveHeader allows adding configurable sensitive headers.
func (r *RedirectHandler) AddSensitiveHeader(header string) {
	r.SensitiveHeaders = append(r.SensitiveHeaders, header)
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// checkRedirect is called by net/http with the next request already built and via holding the
// requests made so far, oldest first.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) == 0 {
		return nil
	}
	previous := via[len(via)-1]

	// net/http rewrites POST into GET on 301/302/303, which would drop a payload submission.
	if previous.Method == http.MethodPost || previous.Method == http.MethodPatch {
		r.Logger.Warn("Redirect attempted on non-idempotent method, not following", zap.String("method", previous.Method), zap.String("location", req.URL.String()))
		return http.ErrUseLastResponse
	}

	if len(via) >= r.MaxRedirects {
		r.Logger.Warn("Maximum redirects reached", zap.Int("maxRedirects", r.MaxRedirects))
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	target := req.URL.String()
	for _, visited := range via {
		if visited.URL.String() == target {
			r.Logger.Error("Redirect loop detected", zap.String("url", target))
			return &RedirectLoopError{URL: target}
		}
	}

	if req.URL.Host != previous.URL.Host {
		r.secureRequest(req)
	}

	r.Logger.Info("Redirecting request", zap.String("originalURL", previous.URL.String()), zap.String("newURL", target), zap.Int("redirectCount", len(via)))
	return nil
}

// secureRequest removes sensitive headers from the request if the new destination is a different domain.
func (r *RedirectHandler) secureRequest(req *http.Request) {
	for _, header := range r.SensitiveHeaders {
		req.Header.Del(header)
	}
}

// RedirectLoopError represents an error when a redirect loop is detected.
type RedirectLoopError struct {
	URL string
}

// Error implements the error interface.
func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected at %s", e.URL)
}

// MaxRedirectsError represents an error when the maximum number of redirects is reached.
type MaxRedirectsError struct {
	MaxRedirects int
}

// Error implements the error interface.
func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// SetupRedirectHandler configures the HTTP client for redirect handling based on the client configuration.
// When redirects are disabled the client returns the redirect response itself.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return nil
	}

	if maxRedirects < 1 {
		return log.Error("Invalid maxRedirects value", zap.Int("maxRedirects", maxRedirects))
	}

	NewRedirectHandler(log, maxRedirects).WithRedirectHandling(client)
	log.Debug("Redirect handling enabled", zap.Int("MaxRedirects", maxRedirects))
	return nil
}
