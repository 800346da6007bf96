// addigy/devices.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// DevicesService reads device inventory through the public API.
type DevicesService struct{ service }

// GetOnlineDevices returns the devices currently connected to Addigy.
func (s *DevicesService) GetOnlineDevices(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "devices/online", nil, &out)
	return out, err
}

// GetDevices returns every device in the organisation.
func (s *DevicesService) GetDevices(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "devices", nil, &out)
	return out, err
}

// GetPolicyDevices returns the devices assigned to policyID.
func (s *DevicesService) GetPolicyDevices(ctx context.Context, policyID string) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "policies/devices", nil, &out, httpclient.WithQueryParam("policy_id", policyID))
	return out, err
}

// UpdateDevicePolicy moves the device agentID into policyID. The endpoint only accepts a form body.
func (s *DevicesService) UpdateDevicePolicy(ctx context.Context, policyID, agentID string) (json.RawMessage, error) {
	form := url.Values{}
	form.Set("policy_id", policyID)
	form.Set("agent_id", agentID)

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "policies/devices", nil, &out, httpclient.WithFormBody(form))
	return out, err
}
