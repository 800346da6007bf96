// addigy/integrations.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// IntegrationsService manages public API keys through the internal API.
type IntegrationsService struct{ service }

// GetAPIIntegrations returns the organisation's API keys.
func (s *IntegrationsService) GetAPIIntegrations(ctx context.Context, authObject auth.AuthObject) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.API+"/accounts/api/keys/get", nil, &out,
		s.session(authObject, accountHeaders(authObject)...)...)
	return out, err
}

// CreateAPIIntegration creates an API key called name. The response holds the new client id and secret.
func (s *IntegrationsService) CreateAPIIntegration(ctx context.Context, authObject auth.AuthObject, name string) (json.RawMessage, error) {
	body := map[string]string{"name": name}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, s.hosts.AppProd+"/api/integrations/keys", body, &out, s.session(authObject)...)
	return out, err
}

// DeleteAPIIntegration deletes the API key with the given object id.
func (s *IntegrationsService) DeleteAPIIntegration(ctx context.Context, authObject auth.AuthObject, objectID string) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodDelete, s.hosts.AppProd+"/api/integrations/keys", nil, &out,
		s.session(authObject, httpclient.WithQueryParam("id", objectID))...)
	return out, err
}
