// httpclient/options.go
package httpclient

import (
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/cookiejar"
)

// requestOptions collects the per-request settings applied by RequestOption values.
type requestOptions struct {
	query         url.Values
	headers       map[string]string
	form          url.Values
	origin        string
	sessionCookie string
	sessionToken  string
}

// RequestOption customises a single DoRequest call.
type RequestOption func(*requestOptions)

// WithQuery adds values to the request's query string.
func WithQuery(values url.Values) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		for key, vs := range values {
			for _, v := range vs {
				o.query.Add(key, v)
			}
		}
	}
}

// WithQueryParam adds a single key=value pair to the query string.
func WithQueryParam(key, value string) RequestOption {
	return WithQuery(url.Values{key: []string{value}})
}

// WithHeader sets a header on the request, overriding the integration's standard headers.
func WithHeader(name, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = map[string]string{}
		}
		o.headers[name] = value
	}
}

// WithOrigin sets the Origin header expected by the internal API.
func WithOrigin(origin string) RequestOption {
	return func(o *requestOptions) {
		o.origin = origin
	}
}

// WithSessionCookie authenticates the request with the auth_token session cookie.
func WithSessionCookie(token string) RequestOption {
	return WithNamedSessionCookie(cookiejar.SessionCookieName, token)
}

// WithNamedSessionCookie authenticates the request with a session cookie called name, such as
// prod_auth_token during impersonation.
func WithNamedSessionCookie(name, token string) RequestOption {
	return func(o *requestOptions) {
		o.sessionCookie = name
		o.sessionToken = token
	}
}

// WithFormBody sends values form-encoded instead of marshalling the body argument.
func WithFormBody(values url.Values) RequestOption {
	return func(o *requestOptions) {
		o.form = values
	}
}
