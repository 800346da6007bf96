// mdm/payload.go
package mdm

// PayloadSchemaVersion is the payload_version every payload carries.
const PayloadSchemaVersion = 1

// BasePayload holds the fields shared by every payload. It is embedded in each concrete payload type,
// so its fields serialise at the top level.
type BasePayload struct {
	AddigyPayloadType  string `json:"addigy_payload_type"`
	PayloadType        string `json:"payload_type"`
	PayloadVersion     int    `json:"payload_version"`
	PayloadIdentifier  string `json:"payload_identifier"`
	PayloadUUID        string `json:"payload_uuid"`
	PayloadGroupID     string `json:"payload_group_id"`
	PayloadDisplayName string `json:"payload_display_name"`

	kind PayloadKind
}

func newBasePayload(kind PayloadKind, groupID, instanceID, displayName string) BasePayload {
	return BasePayload{
		AddigyPayloadType:  kind.AddigyPayloadType(),
		PayloadType:        kind.PayloadType(),
		PayloadVersion:     PayloadSchemaVersion,
		PayloadIdentifier:  kind.Identifier(groupID),
		PayloadUUID:        instanceID,
		PayloadGroupID:     groupID,
		PayloadDisplayName: displayName,
		kind:               kind,
	}
}

// Kind reports which variant the payload is.
func (b BasePayload) Kind() PayloadKind {
	return b.kind
}

// Base returns the shared fields.
func (b BasePayload) Base() BasePayload {
	return b
}

// Payload is implemented by every payload the builders return.
type Payload interface {
	Kind() PayloadKind
	Base() BasePayload
}

// SupportedOSVersions restricts a payload to minimum OS versions.
type SupportedOSVersions struct {
	MacOS string `json:"macOS,omitempty"`
	IOS   string `json:"iOS,omitempty"`
	TvOS  string `json:"tvOS,omitempty"`
}

// Ptr returns a pointer to v, for the optional fields of the input types.
func Ptr[T any](v T) *T {
	return &v
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
