// mdm/kinds.go
/* Package mdm builds the configuration payloads behind Addigy's MDM policies and submits them to the
internal configuration API. Builders are pure: each call mints fresh identifiers and returns a new
payload tree, leaving the network to the Gateway. */
package mdm

import "fmt"

// PayloadKind enumerates the payload variants the builders produce. The Addigy and Apple type strings
// are properties of a kind, used only when a payload is serialised.
type PayloadKind int

const (
	KindKernelExtension PayloadKind = iota + 1
	KindSystemExtension
	KindNotificationSettings
	KindServiceManagement
	KindWebContentFilter
	KindFileVault2
	KindMCXStandby
	KindPKCS1Certificate
	KindFDERecoveryKeyEscrow
	KindFDERecoveryRedirect
	KindPPPC
	KindCustomProfile
)

type kindInfo struct {
	name        string
	addigyType  string
	payloadType string
}

var kindTable = map[PayloadKind]kindInfo{
	KindKernelExtension: {
		name:        "kernel_extension",
		addigyType:  "com.addigy.syspolicy.kernel-extension-policy.com.apple.syspolicy.kernel-extension-policy",
		payloadType: "com.apple.syspolicy.kernel-extension-policy",
	},
	KindSystemExtension: {
		name:        "system_extension",
		addigyType:  "com.addigy.syspolicy.system-extension-policy.com.apple.system-extension-policy",
		payloadType: "com.apple.system-extension-policy",
	},
	KindNotificationSettings: {
		name:        "notification_settings",
		addigyType:  "com.addigy.notifications.com.apple.notificationsettings",
		payloadType: "com.apple.notificationsettings",
	},
	KindServiceManagement: {
		name:        "service_management",
		addigyType:  "com.addigy.servicemanagement.com.apple.servicemanagement",
		payloadType: "com.apple.servicemanagement",
	},
	KindWebContentFilter: {
		name:        "web_content_filter",
		addigyType:  "com.addigy.webcontent-filter.com.apple.webcontent-filter",
		payloadType: "com.apple.webcontent-filter",
	},
	KindFileVault2: {
		name:        "filevault2",
		addigyType:  "com.addigy.securityAndPrivacy.com.apple.MCX.FileVault2",
		payloadType: "com.apple.MCX.FileVault2",
	},
	KindMCXStandby: {
		name:        "mcx_standby",
		addigyType:  "com.addigy.securityAndPrivacy.com.apple.MCX",
		payloadType: "com.apple.MCX",
	},
	KindPKCS1Certificate: {
		name:        "pkcs1_certificate",
		addigyType:  "com.addigy.securityAndPrivacy.com.apple.security.pkcs1",
		payloadType: "com.apple.security.pkcs1",
	},
	KindFDERecoveryKeyEscrow: {
		name:        "fde_recovery_key_escrow",
		addigyType:  "com.addigy.securityAndPrivacy.com.apple.security.FDERecoveryKeyEscrow",
		payloadType: "com.apple.security.FDERecoveryKeyEscrow",
	},
	KindFDERecoveryRedirect: {
		name:        "fde_recovery_redirect",
		addigyType:  "com.addigy.securityAndPrivacy.com.apple.security.FDERecoveryRedirect",
		payloadType: "com.apple.security.FDERecoveryRedirect",
	},
	KindPPPC: {
		name:        "pppc",
		addigyType:  "com.addigy.TCC.configuration-profile-policy.com.apple.TCC.configuration-profile-policy",
		payloadType: "com.apple.TCC.configuration-profile-policy",
	},
	KindCustomProfile: {
		name:        "custom_profile",
		addigyType:  "com.addigy.custom.mdm.payload",
		payloadType: "custom",
	},
}

// String returns a short name for logs.
func (k PayloadKind) String() string {
	if info, ok := kindTable[k]; ok {
		return info.name
	}
	return fmt.Sprintf("PayloadKind(%d)", int(k))
}

// AddigyPayloadType returns the addigy_payload_type wire string.
func (k PayloadKind) AddigyPayloadType() string {
	return kindTable[k].addigyType
}

// PayloadType returns the Apple payload_type wire string.
func (k PayloadKind) PayloadType() string {
	return kindTable[k].payloadType
}

// Identifier derives the payload_identifier for a payload of this kind in group groupID.
func (k PayloadKind) Identifier(groupID string) string {
	return k.AddigyPayloadType() + "." + groupID
}

// Kinds returns every payload kind in declaration order.
func Kinds() []PayloadKind {
	kinds := make([]PayloadKind, 0, len(kindTable))
	for k := KindKernelExtension; k <= KindCustomProfile; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
