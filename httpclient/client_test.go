// httpclient/client_test.go
package httpclient

import (
	"testing"
	"time"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClient_PopulatesDefaults(t *testing.T) {
	client, err := BuildClient(ClientConfig{Integration: &stubIntegration{domain: "https://prod.addigy.com/api"}, LogLevel: "LogLevelWarn"}, true)

	require.NoError(t, err)
	config := client.Config()
	assert.Equal(t, "LogLevelWarn", config.LogLevel)
	assert.Equal(t, logger.LogOutputJSON, config.LogOutputFormat)
	assert.Equal(t, 30*time.Second, config.CustomTimeout.Duration())
	assert.Equal(t, logger.LogLevelWarn, client.Logger.GetLogLevel())
	assert.Equal(t, 30*time.Second, client.http.Timeout)
	assert.NotNil(t, client.http.CheckRedirect, "disabled redirects still install a policy")
}

func TestBuildClient_CookieJarAndProxy(t *testing.T) {
	client := newTestClient(t, "https://prod.addigy.com/api", func(c *ClientConfig) {
		c.CookieJarEnabled = true
		c.ProxyURL = "http://proxy.internal:3128"
	})

	assert.NotNil(t, client.http.Jar)
	assert.NotNil(t, client.http.Transport)
}

func TestBuildClient_InvalidConfiguration(t *testing.T) {
	integration := &stubIntegration{domain: "https://prod.addigy.com/api"}

	tests := []struct {
		name   string
		config ClientConfig
	}{
		{"missing integration", ClientConfig{}},
		{"relative domain", ClientConfig{Integration: &stubIntegration{domain: "prod.addigy.com"}}},
		{"unknown log level", ClientConfig{Integration: integration, LogLevel: "verbose"}},
		{"unknown output format", ClientConfig{Integration: integration, LogOutputFormat: "xml"}},
		{"negative timeout", ClientConfig{Integration: integration, CustomTimeout: Duration(-time.Second)}},
		{"redirects without limit", ClientConfig{Integration: integration, FollowRedirects: true}},
		{"bad proxy", ClientConfig{Integration: integration, ProxyURL: "::bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildClientWithLogger(tt.config, logger.NewNopLogger(), false)
			assert.ErrorContains(t, err, "invalid configuration")
		})
	}
}

func TestIsIdempotentHTTPMethod(t *testing.T) {
	assert.True(t, IsIdempotentHTTPMethod("GET"))
	assert.True(t, IsIdempotentHTTPMethod("PUT"))
	assert.True(t, IsIdempotentHTTPMethod("DELETE"))
	assert.False(t, IsIdempotentHTTPMethod("POST"))
	assert.False(t, IsIdempotentHTTPMethod("PATCH"))
	assert.False(t, IsSupportedHTTPMethod("CONNECT"))
}
