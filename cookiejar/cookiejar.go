// cookiejar/cookiejar.go

/* The cookiejar package provides cookie handling for the Addigy HTTP client: initialization of a
cookie jar, the auth_token session cookie the internal API expects, extraction of the impersonated
session token from Set-Cookie headers and redaction of session cookies before logging. */

package cookiejar

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sort"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

const (
	// SessionCookieName is the cookie carrying the session token on internal API calls.
	SessionCookieName = "auth_token"
	// ParentSessionCookieName carries the parent organisation's token during impersonation.
	ParentSessionCookieName = "prod_auth_token"
	// OriginalSessionCookieName is set alongside the impersonated token and must be skipped.
	OriginalSessionCookieName = "original_auth_token"
)

var (
	ErrNoSetCookie     = errors.New("no set-cookie found in response")
	ErrNoAuthCookie    = errors.New("no auth cookie found")
	ErrNoTokenInCookie = errors.New("no token found in cookie")
)

// SetupCookieJar initializes the HTTP client with a cookie jar if enabled in the configuration.
func SetupCookieJar(client *http.Client, enableCookieJar bool, log logger.Logger) error {
	if enableCookieJar {
		jar, err := cookiejar.New(nil)
		if err != nil {
			log.Error("Failed to create cookie jar", zap.Error(err))
			return fmt.Errorf("setupCookieJar failed: %w", err)
		}
		client.Jar = jar
	}
	return nil
}

// ApplyCustomCookies adds the configured custom cookies to req in name order.
func ApplyCustomCookies(req *http.Request, cookies map[string]string) {
	names := make([]string, 0, len(cookies))
	for name := range cookies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		req.AddCookie(&http.Cookie{Name: name, Value: cookies[name]})
	}
}

// SessionCookieHeader renders the Cookie header value name=token; used by the internal API.
func SessionCookieHeader(name, token string) string {
	return name + "=" + token + ";"
}

// ExtractImpersonationToken finds the impersonated session token among raw Set-Cookie values.
// The first value that mentions prod_auth_token but not original_auth_token is used, and the token
// is the text after "auth_token=" up to the next ";".
func ExtractImpersonationToken(setCookies []string) (string, error) {
	if len(setCookies) == 0 {
		return "", ErrNoSetCookie
	}

	var cookie string
	found := false
	for _, candidate := range setCookies {
		if strings.Contains(candidate, ParentSessionCookieName) && !strings.Contains(candidate, OriginalSessionCookieName) {
			cookie = candidate
			found = true
			break
		}
	}
	if !found {
		return "", ErrNoAuthCookie
	}

	marker := SessionCookieName + "="
	idx := strings.Index(cookie, marker)
	if idx < 0 {
		return "", ErrNoTokenInCookie
	}

	token, _, _ := strings.Cut(cookie[idx+len(marker):], ";")
	if token == "" {
		return "", ErrNoTokenInCookie
	}
	return token, nil
}

// RedactSensitiveCookies redacts the session cookies in place and returns the same slice.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	sensitiveCookieNames := map[string]bool{
		SessionCookieName:         true,
		ParentSessionCookieName:   true,
		OriginalSessionCookieName: true,
	}

	for _, cookie := range cookies {
		if sensitiveCookieNames[cookie.Name] {
			cookie.Value = "REDACTED"
		}
	}

	return cookies
}

// CookiesFromHeader converts the Set-Cookie values of header to []*http.Cookie.
func CookiesFromHeader(header http.Header) []*http.Cookie {
	cookies := []*http.Cookie{}
	for _, cookieHeader := range header["Set-Cookie"] {
		if cookie := ParseCookieHeader(cookieHeader); cookie != nil {
			cookies = append(cookies, cookie)
		}
	}
	return cookies
}

// ParseCookieHeader parses a single Set-Cookie header and returns an *http.Cookie.
func ParseCookieHeader(header string) *http.Cookie {
	headerParts := strings.Split(header, ";")
	cookieParts := strings.SplitN(headerParts[0], "=", 2)
	if len(cookieParts) == 2 {
		return &http.Cookie{Name: strings.TrimSpace(cookieParts[0]), Value: cookieParts[1]}
	}
	return nil
}
