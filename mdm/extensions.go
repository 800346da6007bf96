// mdm/extensions.go
package mdm

// Extension maps a team identifier to bundle identifiers (or, for system extension types, to
// extension type names). An empty team identifier covers unsigned legacy kernel extensions.
type Extension struct {
	TeamIdentifier    string
	BundleIdentifiers []string
}

// KernelExtensionInput describes a kernel extension allow-list.
type KernelExtensionInput struct {
	// AllowUserOverrides lets users approve kernel extensions the profile does not list.
	AllowUserOverrides      bool
	AllowedTeamIdentifiers  []string
	AllowedKernelExtensions []Extension
}

// KernelExtensionPayload is a com.apple.syspolicy.kernel-extension-policy payload.
type KernelExtensionPayload struct {
	BasePayload
	PayloadEnabled          bool                `json:"payload_enabled"`
	AllowUserOverrides      bool                `json:"allow_user_overrides"`
	AllowedKernelExtensions map[string][]string `json:"allowed_kernel_extensions"`
	AllowedTeamIdentifiers  []string            `json:"allowed_team_identifiers"`
}

// SystemExtensionInput describes a system extension allow-list.
type SystemExtensionInput struct {
	AllowUserOverrides          bool
	AllowedTeamIdentifiers      []string
	AllowedSystemExtensions     []Extension
	AllowedSystemExtensionTypes []Extension
}

// SystemExtensionPayload is a com.apple.system-extension-policy payload.
type SystemExtensionPayload struct {
	BasePayload
	PayloadEnabled               bool                `json:"payload_enabled"`
	AllowedSystemExtensions      map[string][]string `json:"allowed_system_extensions"`
	AllowedSystemExtensionsTypes map[string][]string `json:"allowed_system_extensions_types"`
	AllowedTeamIdentifiers       []string            `json:"allowed_team_identifiers"`
	AllowUserOverrides           bool                `json:"allow_user_overrides"`
}

// KernelExtension builds a kernel extension policy payload. Identifiers are not validated. A team
// identifier listed twice keeps its last bundle list; trusted team identifiers are copied in order,
// duplicates included.
func (b *Builder) KernelExtension(displayName string, in KernelExtensionInput) *KernelExtensionPayload {
	return &KernelExtensionPayload{
		BasePayload:             b.single(KindKernelExtension, displayName),
		PayloadEnabled:          true,
		AllowUserOverrides:      in.AllowUserOverrides,
		AllowedKernelExtensions: extensionTable(in.AllowedKernelExtensions),
		AllowedTeamIdentifiers:  appendTeamIdentifiers(in.AllowedTeamIdentifiers),
	}
}

// SystemExtension builds a system extension policy payload with the same table semantics as
// KernelExtension.
func (b *Builder) SystemExtension(displayName string, in SystemExtensionInput) *SystemExtensionPayload {
	return &SystemExtensionPayload{
		BasePayload:                  b.single(KindSystemExtension, displayName),
		PayloadEnabled:               true,
		AllowedSystemExtensions:      extensionTable(in.AllowedSystemExtensions),
		AllowedSystemExtensionsTypes: extensionTable(in.AllowedSystemExtensionTypes),
		AllowedTeamIdentifiers:       appendTeamIdentifiers(in.AllowedTeamIdentifiers),
		AllowUserOverrides:           in.AllowUserOverrides,
	}
}

// extensionTable maps team identifiers to bundle lists, last write wins.
func extensionTable(entries []Extension) map[string][]string {
	table := make(map[string][]string, len(entries))
	for _, e := range entries {
		table[e.TeamIdentifier] = nonNilStrings(e.BundleIdentifiers)
	}
	return table
}

func appendTeamIdentifiers(ids []string) []string {
	out := make([]string, 0, len(ids))
	return append(out, ids...)
}
