// mdm/customprofile.go
package mdm

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/casing"
	"howett.net/plist"
)

// PayloadScope selects whether a custom profile installs for the device or the logged-in user.
type PayloadScope string

const (
	ScopeSystem PayloadScope = "System"
	ScopeUser   PayloadScope = "User"
)

const customProfileUUIDPrefix = "custom-profile-"

// CustomProfileInput wraps a configuration profile (.mobileconfig) supplied as base64. An empty Scope
// selects ScopeSystem.
type CustomProfileInput struct {
	ProfileBase64       string
	SupportedOSVersions SupportedOSVersions
	Scope               PayloadScope
	Signed              bool
}

// CustomProfilePayload carries the profile as submitted next to its parsed tree, whose keys are
// snake_case.
type CustomProfilePayload struct {
	BasePayload
	IsProfileSigned       bool                   `json:"is_profile_signed"`
	ProfileJSONData       map[string]interface{} `json:"profile_json_data"`
	DecodedProfileContent string                 `json:"decoded_profile_content"`
	CustomProfileContent  string                 `json:"custom_profile_content"`
	SupportedOSVersions   SupportedOSVersions    `json:"supported_os_versions"`
	PayloadScope          PayloadScope           `json:"payload_scope"`
}

// CustomProfile decodes and parses the profile and builds its payload. XML, binary and OpenStep
// property lists are accepted; the root must be a dictionary. Decoding or parsing failures return a
// *MalformedDocumentError.
func (b *Builder) CustomProfile(displayName string, in CustomProfileInput) (*CustomProfilePayload, error) {
	raw, err := decodeProfile(in.ProfileBase64)
	if err != nil {
		return nil, &MalformedDocumentError{Reason: "invalid base64", Err: err}
	}

	tree, err := parseProfile(raw)
	if err != nil {
		return nil, err
	}

	scope := in.Scope
	if scope == "" {
		scope = ScopeSystem
	}

	groupID := b.ids.NewID()
	return &CustomProfilePayload{
		BasePayload:           newBasePayload(KindCustomProfile, groupID, customProfileUUIDPrefix+b.ids.NewID(), displayName),
		IsProfileSigned:       in.Signed,
		ProfileJSONData:       tree,
		DecodedProfileContent: string(raw),
		CustomProfileContent:  in.ProfileBase64,
		SupportedOSVersions:   in.SupportedOSVersions,
		PayloadScope:          scope,
	}, nil
}

// decodeProfile accepts padded and unpadded standard base64, ignoring surrounding whitespace.
func decodeProfile(encoded string) ([]byte, error) {
	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		return nil, errEmptyDocument
	}
	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err == nil {
		return raw, nil
	}
	if rawUnpadded, errUnpadded := base64.RawStdEncoding.DecodeString(strings.TrimRight(trimmed, "=")); errUnpadded == nil {
		return rawUnpadded, nil
	}
	return nil, err
}

// parseProfile parses raw and snake_cases every key of the resulting tree.
func parseProfile(raw []byte) (map[string]interface{}, error) {
	var document interface{}
	if _, err := plist.Unmarshal(raw, &document); err != nil {
		return nil, &MalformedDocumentError{Reason: "invalid property list", Err: err}
	}

	root, ok := document.(map[string]interface{})
	if !ok {
		return nil, &MalformedDocumentError{Reason: "property list root is not a dictionary"}
	}

	tree := casing.NormalizeKeys(root).(map[string]interface{})
	// <real> values such as nan and inf parse but have no JSON form.
	if _, err := json.Marshal(tree); err != nil {
		return nil, &MalformedDocumentError{Reason: "property list is not representable as JSON", Err: err}
	}
	return tree, nil
}
