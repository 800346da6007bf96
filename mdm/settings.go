// mdm/settings.go
package mdm

// DefaultServiceManagementPriority is the payload_priority used when none is given.
const DefaultServiceManagementPriority = 9

// NotificationSetting configures notifications for one app bundle.
type NotificationSetting struct {
	BundleIdentifier         string      `json:"bundle_identifier"`
	NotificationsEnabled     bool        `json:"notifications_enabled"`
	ShowInLockScreen         bool        `json:"show_in_lock_screen"`
	ShowInNotificationCenter bool        `json:"show_in_notification_center"`
	SoundsEnabled            bool        `json:"sounds_enabled"`
	BadgesEnabled            bool        `json:"badges_enabled"`
	CriticalAlertEnabled     bool        `json:"critical_alert_enabled"`
	PreviewType              interface{} `json:"preview_type,omitempty"`
	AlertType                interface{} `json:"alert_type,omitempty"`
}

// NotificationSettingsPayload is a com.apple.notificationsettings payload.
type NotificationSettingsPayload struct {
	BasePayload
	NotificationSettings []NotificationSetting `json:"notification_settings"`
}

// NotificationSettings builds a notification settings payload around settings.
func (b *Builder) NotificationSettings(displayName string, settings []NotificationSetting) *NotificationSettingsPayload {
	if settings == nil {
		settings = []NotificationSetting{}
	}
	return &NotificationSettingsPayload{
		BasePayload:          b.single(KindNotificationSettings, displayName),
		NotificationSettings: settings,
	}
}

// ServiceManagementRule identifies login items or background services managed by the policy.
type ServiceManagementRule struct {
	Comment   string `json:"comment"`
	RuleType  string `json:"rule_type"`
	RuleValue string `json:"rule_value"`
}

// ServiceManagementInput carries the rules of a service management policy. A zero Priority selects
// DefaultServiceManagementPriority.
type ServiceManagementInput struct {
	Rules    []ServiceManagementRule
	Priority int
}

// ServiceManagementPayload is a com.apple.servicemanagement payload.
type ServiceManagementPayload struct {
	BasePayload
	AddigyPayloadVersion       int                     `json:"addigy_payload_version"`
	HasManifest                bool                    `json:"has_manifest"`
	PayloadEnabled             bool                    `json:"payload_enabled"`
	PayloadPriority            int                     `json:"payload_priority"`
	PolicyRestricted           bool                    `json:"policy_restricted"`
	RequiresDeviceSupervision  bool                    `json:"requires_device_supervision"`
	RequiresMdmProfileApproved bool                    `json:"requires_mdm_profile_approved"`
	SupportedOSVersions        *SupportedOSVersions    `json:"supported_os_versions"`
	Rules                      []ServiceManagementRule `json:"rules"`
}

// ServiceManagement builds a service management payload. Apart from the rules and priority every
// field is fixed.
func (b *Builder) ServiceManagement(displayName string, in ServiceManagementInput) *ServiceManagementPayload {
	priority := in.Priority
	if priority == 0 {
		priority = DefaultServiceManagementPriority
	}
	rules := in.Rules
	if rules == nil {
		rules = []ServiceManagementRule{}
	}

	return &ServiceManagementPayload{
		BasePayload:     b.single(KindServiceManagement, displayName),
		PayloadPriority: priority,
		Rules:           rules,
	}
}
