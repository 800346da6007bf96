// httpclient/integration.go
package httpclient

import (
	"net/http"
)

// APIIntegration is implemented by each API the client can talk to. It supplies the base URL,
// attaches credentials and encodes request bodies.
type APIIntegration interface {
	Domain() string
	SetRequestHeaders(req *http.Request)

	// Utilities
	MarshalRequest(body interface{}, method string, endpoint string) ([]byte, error)
	GetContentTypeHeader(method string) string
	GetAcceptHeader() string

	// Info
	GetAuthMethodDescriptor() string
}
