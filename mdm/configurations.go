// mdm/configurations.go
package mdm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

const configurationProfilesPath = "/api/v2/mdm/configurations/profiles"

// ConfigurationPayload is a payload as listed by the configuration API.
type ConfigurationPayload struct {
	AddigyPayloadType    string `json:"addigy_payload_type"`
	AddigyPayloadVersion *int   `json:"addigy_payload_version,omitempty"`
	OrgID                string `json:"orgid"`
	PayloadDisplayName   string `json:"payload_display_name"`
	PayloadGroupID       string `json:"payload_group_id"`
	PayloadIdentifier    string `json:"payload_identifier"`
	PayloadPriority      int    `json:"payload_priority"`
	PayloadType          string `json:"payload_type"`
	PayloadUUID          string `json:"payload_uuid"`
	PayloadVersion       int    `json:"payload_version"`
	PolicyRestricted     bool   `json:"policy_restricted"`
	HasManifest          *bool  `json:"has_manifest,omitempty"`
}

// PolicyMdmPayload links a configuration to a policy.
type PolicyMdmPayload struct {
	OrgID           string `json:"orgid"`
	ConfigurationID string `json:"configuration_id"`
	PolicyID        string `json:"policy_id"`
}

// ConfigurationList is the body returned by the configuration profiles endpoint.
type ConfigurationList struct {
	Payloads            []ConfigurationPayload `json:"payloads"`
	StagedPayloads      []json.RawMessage      `json:"staged_payloads"`
	PoliciesMdmPayloads []PolicyMdmPayload     `json:"policies_mdm_payloads"`
}

// Configurations reads the organisation's MDM configurations.
type Configurations struct {
	client   *httpclient.Client
	endpoint string
	origin   string
}

// NewConfigurations returns a Configurations reading from the app host in hosts. Requests carry the
// app-prod origin like every other internal call.
func NewConfigurations(client *httpclient.Client, hosts addigyapi.Hosts) *Configurations {
	hosts = hosts.WithDefaults()
	return &Configurations{
		client:   client,
		endpoint: hosts.App + configurationProfilesPath,
		origin:   hosts.AppProd,
	}
}

// GetMdmConfigurations lists every configuration payload.
func (c *Configurations) GetMdmConfigurations(ctx context.Context, authObject auth.AuthObject) ([]ConfigurationPayload, error) {
	var out ConfigurationList
	if _, err := c.client.DoRequest(ctx, http.MethodGet, c.endpoint, nil, &out,
		httpclient.WithSessionCookie(authObject.AuthToken),
		httpclient.WithOrigin(c.origin),
	); err != nil {
		return nil, fmt.Errorf("listing MDM configurations: %w", err)
	}
	return out.Payloads, nil
}

// GetMdmConfigurationByName returns the first configuration whose display name is name, or a
// *NotFoundError.
func (c *Configurations) GetMdmConfigurationByName(ctx context.Context, authObject auth.AuthObject, name string) (*ConfigurationPayload, error) {
	configurations, err := c.GetMdmConfigurations(ctx, authObject)
	if err != nil {
		return nil, err
	}
	for i := range configurations {
		if configurations[i].PayloadDisplayName == name {
			return &configurations[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "MDM configuration", Key: name}
}
