// addigy/software.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// DefaultSoftwarePriority is the install priority of custom software created without one.
const DefaultSoftwarePriority = 10

// CustomSoftwareInput describes a new version of a custom software item. A zero Priority means
// DefaultSoftwarePriority.
type CustomSoftwareInput struct {
	BaseIdentifier     string   `json:"base_identifier"`
	Version            string   `json:"version"`
	Downloads          []string `json:"downloads"`
	InstallationScript string   `json:"installation_script"`
	Condition          string   `json:"condition"`
	RemoveScript       string   `json:"remove_script"`
	Priority           int      `json:"priority"`
}

// CreateSoftware is the body of the internal software endpoint. Unlike CustomSoftwareInput it carries
// predefined conditions, the icon and the category.
type CreateSoftware struct {
	BaseIdentifier       string               `json:"base_identifier"`
	Version              string               `json:"version"`
	Downloads            []SoftwareDownload   `json:"downloads"`
	Profiles             []json.RawMessage    `json:"profiles"`
	InstallationScript   string               `json:"installation_script"`
	RemoveScript         string               `json:"remove_script"`
	Condition            string               `json:"condition"`
	PredefinedConditions PredefinedConditions `json:"predefined_conditions"`
	Public               *bool                `json:"public"`
	SoftwareIcon         SoftwareIcon         `json:"software_icon"`
	RunOnSuccess         bool                 `json:"run_on_success"`
	StatusOnSkipped      string               `json:"status_on_skipped"`
	Priority             int                  `json:"priority"`
	Category             string               `json:"category"`
}

// SoftwareDownload is a file previously uploaded to the file manager.
type SoftwareDownload struct {
	OrgID       string    `json:"orgid"`
	Created     time.Time `json:"created"`
	ContentType string    `json:"content_type"`
	Filename    string    `json:"filename"`
	ID          string    `json:"id"`
	MD5Hash     string    `json:"md5_hash"`
	Provider    string    `json:"provider"`
	UserEmail   string    `json:"user_email"`
	Size        int64     `json:"size"`
}

type SoftwareIcon struct {
	OrgID    string `json:"orgid"`
	Filename string `json:"filename"`
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// PredefinedConditions are the install conditions the web app offers besides a condition script.
type PredefinedConditions struct {
	OSVersion            OSVersionCondition            `json:"os_version"`
	AppExists            AppExistsCondition            `json:"app_exists"`
	FileExists           PathCondition                 `json:"file_exists"`
	FileNotExists        PathCondition                 `json:"file_not_exists"`
	ProfileExists        ProfileExistsCondition        `json:"profile_exists"`
	ProcessNotRunning    ProcessNotRunningCondition    `json:"process_not_running"`
	RequiredArchitecture RequiredArchitectureCondition `json:"required_architecture"`
}

type OSVersionCondition struct {
	Enabled  bool   `json:"enabled"`
	Operator string `json:"operator"`
	Version  string `json:"version"`
}

type AppExistsCondition struct {
	Enabled             bool   `json:"enabled"`
	Operator            string `json:"operator"`
	Version             string `json:"version"`
	Path                string `json:"path"`
	InstallIfNotPresent bool   `json:"install_if_not_present"`
}

type PathCondition struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

type ProfileExistsCondition struct {
	Enabled   bool   `json:"enabled"`
	ProfileID string `json:"profile_id"`
}

type ProcessNotRunningCondition struct {
	Enabled     bool   `json:"enabled"`
	ProcessName string `json:"process_name"`
}

type RequiredArchitectureCondition struct {
	Enabled      bool `json:"enabled"`
	AppleSilicon bool `json:"apple_silicon"`
}

// SoftwareService reads the software catalog and manages custom software. CreateSoftwareInternal goes
// through the internal API.
type SoftwareService struct{ service }

// GetPublicSoftware returns Addigy's public software catalog.
func (s *SoftwareService) GetPublicSoftware(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "catalog/public", nil, &out)
	return out, err
}

// GetCustomSoftware returns the organisation's custom software.
func (s *SoftwareService) GetCustomSoftware(ctx context.Context) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "custom-software", nil, &out)
	return out, err
}

// GetCustomSoftwareAllVersions returns every version of the custom software item softwareID.
func (s *SoftwareService) GetCustomSoftwareAllVersions(ctx context.Context, softwareID string) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "custom-software", nil, &out, httpclient.WithQueryParam("identifier", softwareID))
	return out, err
}

// GetCustomSoftwareSpecificVersion returns the custom software version identified by instructionID.
func (s *SoftwareService) GetCustomSoftwareSpecificVersion(ctx context.Context, instructionID string) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "custom-software", nil, &out, httpclient.WithQueryParam("instructionid", instructionID))
	return out, err
}

// CreateCustomSoftware creates a custom software version. The endpoint answers with an empty body on
// success, in which case the returned message is nil.
func (s *SoftwareService) CreateCustomSoftware(ctx context.Context, input CustomSoftwareInput) (json.RawMessage, error) {
	if input.Priority == 0 {
		input.Priority = DefaultSoftwarePriority
	}
	if input.Downloads == nil {
		input.Downloads = []string{}
	}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "custom-software", input, &out)
	return out, err
}

// CreateSoftwareInternal creates a custom software item through the internal web-app endpoint, which
// accepts fields the public API ignores, such as priority and predefined conditions.
func (s *SoftwareService) CreateSoftwareInternal(ctx context.Context, authObject auth.AuthObject, software CreateSoftware) (json.RawMessage, error) {
	if software.Downloads == nil {
		software.Downloads = []SoftwareDownload{}
	}
	if software.Profiles == nil {
		software.Profiles = []json.RawMessage{}
	}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, s.hosts.App+"/api/software", software, &out, s.session(authObject)...)
	return out, err
}
