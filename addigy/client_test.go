// addigy/client_test.go
package addigy

import (
	"context"
	"errors"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresClientCredentials(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		missing []string
	}{
		{"no secret", Config{ClientID: "id"}, []string{"client_secret"}},
		{"no id", Config{ClientSecret: "secret"}, []string{"client_id"}},
		{"empty", Config{}, []string{"client_id", "client_secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClientWithLogger(tt.config, logger.NewNopLogger())

			assert.Nil(t, client)
			var configErr *auth.ConfigurationError
			require.True(t, errors.As(err, &configErr))
			assert.Equal(t, tt.missing, configErr.Missing)
		})
	}
}

func TestNewClient_DefaultHosts(t *testing.T) {
	client, err := NewClientWithLogger(Config{ClientID: "id", ClientSecret: "secret"}, logger.NewNopLogger())

	require.NoError(t, err)
	assert.Equal(t, addigyapi.DefaultPublicAPIBaseURL, client.HTTP.Integration.Domain())
	assert.Equal(t, addigyapi.DefaultHosts(), client.Devices.hosts)
	assert.NotNil(t, client.MdmPolicies)
	assert.NotNil(t, client.MdmConfigurations)
}

func TestNewClient_PublicRequestsCarryCredentials(t *testing.T) {
	rec := (&recorder{}).on("GET", "/api/devices", `[]`)
	client := newTestClient(t, rec)

	_, err := client.Devices.GetDevices(context.Background())

	require.NoError(t, err)
	req := rec.last(t)
	assert.Equal(t, "client-id", req.Header.Get(addigyapi.ClientIDHeader))
	assert.Equal(t, "client-secret", req.Header.Get(addigyapi.ClientSecretHeader))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
}

func TestNewClient_AuthSignsInAgainstAPIHost(t *testing.T) {
	rec := (&recorder{}).on("POST", "/signin", `{"orgid":"org-1","authtoken":"token-1","email":"admin@example.com"}`)
	client := newTestClient(t, rec)

	authObject, err := client.Auth.GetAuthObject(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testAuth, authObject)
	assert.Equal(t, map[string]interface{}{"username": "admin@example.com", "password": "hunter2"}, rec.last(t).jsonBody(t))
}
