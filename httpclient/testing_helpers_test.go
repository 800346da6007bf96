// httpclient/testing_helpers_test.go
package httpclient

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/require"
)

// stubIntegration is a minimal APIIntegration pointed at a test server.
type stubIntegration struct {
	domain string
}

func (s *stubIntegration) Domain() string { return strings.TrimRight(s.domain, "/") }

func (s *stubIntegration) SetRequestHeaders(req *http.Request) {
	req.Header.Set("client-id", "test-id")
}

func (s *stubIntegration) MarshalRequest(body interface{}, method string, endpoint string) ([]byte, error) {
	return json.Marshal(body)
}

func (s *stubIntegration) GetContentTypeHeader(method string) string { return "application/json" }

func (s *stubIntegration) GetAcceptHeader() string { return "application/json" }

func (s *stubIntegration) GetAuthMethodDescriptor() string { return "stub" }

func newTestClient(t *testing.T, domain string, mutate func(*ClientConfig)) *Client {
	t.Helper()
	config := ClientConfig{
		Integration:     &stubIntegration{domain: domain},
		FollowRedirects: true,
	}
	if mutate != nil {
		mutate(&config)
	}
	client, err := BuildClientWithLogger(config, logger.NewNopLogger(), true)
	require.NoError(t, err)
	return client
}
