// addigy/profiles.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// ProfilesService manages MDM profiles through the public API. Payloads are passed through as
// given; the mdm package builds them.
type ProfilesService struct{ service }

type createProfileRequest struct {
	Name     string        `json:"name"`
	Payloads []interface{} `json:"payloads"`
}

type updateProfileRequest struct {
	InstructionID string        `json:"instruction_id"`
	Payloads      []interface{} `json:"payloads"`
}

// GetProfiles returns every profile, or only those of instructionID when it is not empty.
func (s *ProfilesService) GetProfiles(ctx context.Context, instructionID string) ([]json.RawMessage, error) {
	var opts []httpclient.RequestOption
	if instructionID != "" {
		opts = append(opts, httpclient.WithQueryParam("instruction_id", instructionID))
	}

	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "profiles", nil, &out, opts...)
	return out, err
}

// CreateProfile creates a profile called name holding payloads.
func (s *ProfilesService) CreateProfile(ctx context.Context, name string, payloads []interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "profiles", createProfileRequest{Name: name, Payloads: nonNilPayloads(payloads)}, &out)
	return out, err
}

// UpdateProfile replaces the payloads of the profile identified by instructionID.
func (s *ProfilesService) UpdateProfile(ctx context.Context, instructionID string, payloads []interface{}) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPut, "profiles", updateProfileRequest{InstructionID: instructionID, Payloads: nonNilPayloads(payloads)}, &out)
	return out, err
}

// DeleteProfile deletes the profile identified by instructionID.
func (s *ProfilesService) DeleteProfile(ctx context.Context, instructionID string) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodDelete, "profiles", nil, &out, httpclient.WithQueryParam("instruction_id", instructionID))
	return out, err
}

func nonNilPayloads(payloads []interface{}) []interface{} {
	if payloads == nil {
		return []interface{}{}
	}
	return payloads
}
