// mdm/webcontentfilter.go
package mdm

// Web content filter defaults.
const (
	DefaultWebContentFilterPriority      = 9
	WebContentFilterAddigyPayloadVersion = 2
	DefaultWebContentFilterType          = "Plugin"
	FilterGradeFirewall                  = "firewall"
	FilterGradeInspector                 = "inspector"
)

// WebContentFilterInput overrides the web content filter defaults. The three plugin fields are always
// sent; nil optional fields keep their default and non-nil ones replace it. A zero Priority selects
// DefaultWebContentFilterPriority.
type WebContentFilterInput struct {
	UserDefinedName string
	PluginBundleID  string
	FilterGrade     string

	VendorConfig                              map[string]string
	ContentFilterUUID                         *string
	ServerAddress                             *string
	Organization                              *string
	UserName                                  *string
	Password                                  *string
	FilterBrowsers                            *bool
	FilterSockets                             *bool
	FilterDataProviderBundleIdentifier        *string
	FilterDataProviderDesignatedRequirement   *string
	FilterPackets                             *bool
	FilterPacketProviderBundleIdentifier      *string
	FilterPacketProviderDesignatedRequirement *string
	AutoFilterEnabled                         *bool
	PermittedURLs                             []string
	BlacklistedURLs                           []string
	WhiteListedBookmarks                      []string
	PolicyRestricted                          *bool
	RequiresDeviceSupervision                 *bool
	RequiresMdmProfileApproved                *bool

	Priority int
}

// WebContentFilterPayload is a com.apple.webcontent-filter payload. Nil pointers, maps and slices
// serialise as null.
type WebContentFilterPayload struct {
	BasePayload
	AddigyPayloadVersion                      int                  `json:"addigy_payload_version"`
	AutoFilterEnabled                         *bool                `json:"auto_filter_enabled"`
	BlacklistedURLs                           []string             `json:"blacklisted_urls"`
	ContentFilterUUID                         *string              `json:"content_filter_uuid"`
	FilterBrowsers                            *bool                `json:"filter_browsers"`
	FilterDataProviderBundleIdentifier        *string              `json:"filter_data_provider_bundle_identifier"`
	FilterDataProviderDesignatedRequirement   *string              `json:"filter_data_provider_designated_requirement"`
	FilterGrade                               string               `json:"filter_grade"`
	FilterPacketProviderBundleIdentifier      *string              `json:"filter_packet_provider_bundle_identifier"`
	FilterPacketProviderDesignatedRequirement *string              `json:"filter_packet_provider_designated_requirement"`
	FilterPackets                             *bool                `json:"filter_packets"`
	FilterSockets                             bool                 `json:"filter_sockets"`
	FilterType                                string               `json:"filter_type"`
	HasManifest                               bool                 `json:"has_manifest"`
	Organization                              *string              `json:"organization"`
	Password                                  *string              `json:"password"`
	PayloadEnabled                            bool                 `json:"payload_enabled"`
	PayloadPriority                           int                  `json:"payload_priority"`
	PermittedURLs                             []string             `json:"permitted_urls"`
	PluginBundleID                            string               `json:"plugin_bundle_id"`
	PolicyRestricted                          bool                 `json:"policy_restricted"`
	RequiresDeviceSupervision                 bool                 `json:"requires_device_supervision"`
	RequiresMdmProfileApproved                bool                 `json:"requires_mdm_profile_approved"`
	ServerAddress                             *string              `json:"server_address"`
	SupportedOSVersions                       *SupportedOSVersions `json:"supported_os_versions"`
	UserDefinedName                           string               `json:"user_defined_name"`
	UserName                                  *string              `json:"user_name"`
	VendorConfig                              map[string]string    `json:"vendor_config"`
	WhiteListedBookmarks                      []string             `json:"white_listed_bookmarks"`
}

// WebContentFilter builds a web content filter payload from the defaults and the overrides in in.
func (b *Builder) WebContentFilter(displayName string, in WebContentFilterInput) *WebContentFilterPayload {
	priority := in.Priority
	if priority == 0 {
		priority = DefaultWebContentFilterPriority
	}

	payload := &WebContentFilterPayload{
		BasePayload:          b.single(KindWebContentFilter, displayName),
		AddigyPayloadVersion: WebContentFilterAddigyPayloadVersion,
		FilterSockets:        true,
		FilterType:           DefaultWebContentFilterType,
		PayloadEnabled:       true,
		PayloadPriority:      priority,
		UserDefinedName:      in.UserDefinedName,
		PluginBundleID:       in.PluginBundleID,
		FilterGrade:          in.FilterGrade,
	}
	in.applyTo(payload)
	return payload
}

// applyTo copies every override that was set.
func (in WebContentFilterInput) applyTo(p *WebContentFilterPayload) {
	if in.VendorConfig != nil {
		p.VendorConfig = in.VendorConfig
	}
	if in.ContentFilterUUID != nil {
		p.ContentFilterUUID = in.ContentFilterUUID
	}
	if in.ServerAddress != nil {
		p.ServerAddress = in.ServerAddress
	}
	if in.Organization != nil {
		p.Organization = in.Organization
	}
	if in.UserName != nil {
		p.UserName = in.UserName
	}
	if in.Password != nil {
		p.Password = in.Password
	}
	if in.FilterBrowsers != nil {
		p.FilterBrowsers = in.FilterBrowsers
	}
	if in.FilterSockets != nil {
		p.FilterSockets = *in.FilterSockets
	}
	if in.FilterDataProviderBundleIdentifier != nil {
		p.FilterDataProviderBundleIdentifier = in.FilterDataProviderBundleIdentifier
	}
	if in.FilterDataProviderDesignatedRequirement != nil {
		p.FilterDataProviderDesignatedRequirement = in.FilterDataProviderDesignatedRequirement
	}
	if in.FilterPackets != nil {
		p.FilterPackets = in.FilterPackets
	}
	if in.FilterPacketProviderBundleIdentifier != nil {
		p.FilterPacketProviderBundleIdentifier = in.FilterPacketProviderBundleIdentifier
	}
	if in.FilterPacketProviderDesignatedRequirement != nil {
		p.FilterPacketProviderDesignatedRequirement = in.FilterPacketProviderDesignatedRequirement
	}
	if in.AutoFilterEnabled != nil {
		p.AutoFilterEnabled = in.AutoFilterEnabled
	}
	if in.PermittedURLs != nil {
		p.PermittedURLs = in.PermittedURLs
	}
	if in.BlacklistedURLs != nil {
		p.BlacklistedURLs = in.BlacklistedURLs
	}
	if in.WhiteListedBookmarks != nil {
		p.WhiteListedBookmarks = in.WhiteListedBookmarks
	}
	if in.PolicyRestricted != nil {
		p.PolicyRestricted = *in.PolicyRestricted
	}
	if in.RequiresDeviceSupervision != nil {
		p.RequiresDeviceSupervision = *in.RequiresDeviceSupervision
	}
	if in.RequiresMdmProfileApproved != nil {
		p.RequiresMdmProfileApproved = *in.RequiresMdmProfileApproved
	}
}
