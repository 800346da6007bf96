// apiintegrations/addigyapi/addigyapi.go
package addigyapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// Integration implements httpclient.APIIntegration for the Addigy public REST API.
type Integration struct {
	BaseDomain   string        // BaseDomain overrides DefaultPublicAPIBaseURL, mostly for tests.
	ClientID     string        // ClientID is sent in the client-id header.
	ClientSecret string        // ClientSecret is sent in the client-secret header.
	Logger       logger.Logger // Logger is the structured logger used for logging.
}

// Domain returns the public API base URL without a trailing slash.
func (a *Integration) Domain() string {
	if a.BaseDomain != "" {
		return strings.TrimRight(a.BaseDomain, "/")
	}
	return DefaultPublicAPIBaseURL
}

// GetAuthMethodDescriptor describes how requests are authenticated.
func (a *Integration) GetAuthMethodDescriptor() string {
	return AuthMethodDescriptor
}

// SetRequestHeaders adds the client credentials. They are only attached to requests addressed to the
// public API host; internal calls on other hosts authenticate with a session cookie instead.
func (a *Integration) SetRequestHeaders(req *http.Request) {
	base, err := url.Parse(a.Domain())
	if err != nil || req.URL == nil || !strings.EqualFold(req.URL.Host, base.Host) {
		return
	}
	req.Header.Set(ClientIDHeader, a.ClientID)
	req.Header.Set(ClientSecretHeader, a.ClientSecret)
}

// GetContentTypeHeader returns the Content-Type for a JSON body sent with method.
func (a *Integration) GetContentTypeHeader(method string) string {
	switch method {
	case http.MethodGet, http.MethodDelete, http.MethodHead:
		return ""
	default:
		return "application/json"
	}
}

// GetAcceptHeader returns the Accept header sent with every request.
func (a *Integration) GetAcceptHeader() string {
	return "application/json"
}

// MarshalRequest encodes body as JSON. []byte and json.RawMessage bodies are sent verbatim.
func (a *Integration) MarshalRequest(body interface{}, method string, endpoint string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		data, err = json.Marshal(body)
		if err != nil {
			a.Logger.Error("Failed marshaling JSON request", zap.String("endpoint", endpoint), zap.Error(err))
			return nil, err
		}
	}

	if method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		a.Logger.Debug("JSON Request Body", zap.String("endpoint", endpoint), zap.Int("length", len(data)))
	}

	return data, nil
}
