// addigy/policies.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// DefaultInstructionProvider is the provider used for policy instructions when none is given.
const DefaultInstructionProvider = "ansible-profile"

// Policy is a node of the organisation's policy tree.
type Policy struct {
	PolicyID string `json:"policyId"`
	Name     string `json:"name"`
	Parent   string `json:"parent,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
	OrgID    string `json:"orgid,omitempty"`
}

// CreatePolicyInput describes a new policy. Empty optional fields are left out of the request.
type CreatePolicyInput struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
}

// PoliciesService manages policies and their instructions through the public API.
type PoliciesService struct{ service }

// GetPolicies returns every policy in the organisation.
func (s *PoliciesService) GetPolicies(ctx context.Context) ([]Policy, error) {
	var out []Policy
	_, err := s.client.DoRequest(ctx, http.MethodGet, "policies", nil, &out)
	return out, err
}

// CreatePolicy creates a policy.
func (s *PoliciesService) CreatePolicy(ctx context.Context, input CreatePolicyInput) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "policies", input, &out)
	return out, err
}

// GetPolicyInstructions returns the instructions attached to policyID. An empty provider means
// DefaultInstructionProvider.
func (s *PoliciesService) GetPolicyInstructions(ctx context.Context, policyID, provider string) ([]json.RawMessage, error) {
	query := url.Values{}
	query.Set("provider", providerOrDefault(provider))
	query.Set("policy_id", policyID)

	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "policies/instructions", nil, &out, httpclient.WithQuery(query))
	return out, err
}

// CreatePolicyInstructions attaches instructionID to policyID.
func (s *PoliciesService) CreatePolicyInstructions(ctx context.Context, policyID, instructionID string) (json.RawMessage, error) {
	body := map[string]string{
		"instruction_id": instructionID,
		"policy_id":      policyID,
	}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "policies/instructions", body, &out)
	return out, err
}

// DeletePolicyInstructions detaches instructionID from policyID.
func (s *PoliciesService) DeletePolicyInstructions(ctx context.Context, policyID, instructionID, provider string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("policy_id", policyID)
	query.Set("instruction_id", instructionID)
	query.Set("provider", providerOrDefault(provider))

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodDelete, "policies/instructions", nil, &out, httpclient.WithQuery(query))
	return out, err
}

// GetPolicyDetails returns the full configuration of policyID.
func (s *PoliciesService) GetPolicyDetails(ctx context.Context, policyID, provider string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("provider", providerOrDefault(provider))
	query.Set("policy_id", policyID)

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "policies/details", nil, &out, httpclient.WithQuery(query))
	return out, err
}

func providerOrDefault(provider string) string {
	if provider == "" {
		return DefaultInstructionProvider
	}
	return provider
}
