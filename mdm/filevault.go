// mdm/filevault.go
package mdm

// FileVault constants.
const (
	DefaultFileVaultPriority = 1
	FileVaultEscrowLocation  = "Key will be escrowed to an Addigy secure database."
	fileVaultEnabled         = "On"
	fileVaultDisabled        = "Off"
)

// FileVaultInput describes a FileVault policy. Nil optional fields are sent as null. A zero Priority
// selects DefaultFileVaultPriority.
type FileVaultInput struct {
	Enable          bool
	Defer           bool
	ShowRecoveryKey *bool
	// DestroyFvKeyOnStandby requires the user to unlock FileVault after hibernation.
	DestroyFvKeyOnStandby *bool
	// EscrowRecoveryKey encrypts the personal recovery key with an Addigy certificate and stores it
	// in Addigy's database. It adds the certificate, escrow and redirect payloads.
	EscrowRecoveryKey                      bool
	DeferDontAskAtUserLogout               *bool
	DeferForceAtUserLoginMaxBypassAttempts *int
	Priority                               int
}

// FileVault2Payload enables or disables FileVault.
type FileVault2Payload struct {
	BasePayload
	AddigyPayloadVersion                   int    `json:"addigy_payload_version"`
	PayloadPriority                        int    `json:"payload_priority"`
	Enable                                 string `json:"enable"`
	Defer                                  bool   `json:"defer"`
	UseRecoveryKey                         bool   `json:"use_recovery_key"`
	ShowRecoveryKey                        *bool  `json:"show_recovery_key"`
	DeferDontAskAtUserLogout               *bool  `json:"defer_dont_ask_at_user_logout"`
	DeferForceAtUserLoginMaxBypassAttempts *int   `json:"defer_force_at_user_login_max_bypass_attempts"`
}

// MCXStandbyPayload controls key destruction on standby and pins FileVault on.
type MCXStandbyPayload struct {
	BasePayload
	AddigyPayloadVersion  int   `json:"addigy_payload_version"`
	PayloadPriority       int   `json:"payload_priority"`
	DestroyFvKeyOnStandby *bool `json:"destroy_fv_key_on_standby"`
	DontAllowFDEDisable   bool  `json:"dont_allow_fde_disable"`
}

// PKCS1CertificatePayload references the escrow certificate from the security profile.
type PKCS1CertificatePayload struct {
	BasePayload
	AddigyPayloadVersion  int  `json:"addigy_payload_version"`
	PayloadPriority       int  `json:"payload_priority"`
	IsFromSecurityProfile bool `json:"is_from_security_profile"`
}

// FDERecoveryKeyEscrowPayload escrows the recovery key encrypted with the certificate
// EncryptCertPayloadUUID.
type FDERecoveryKeyEscrowPayload struct {
	BasePayload
	AddigyPayloadVersion   int    `json:"addigy_payload_version"`
	PayloadPriority        int    `json:"payload_priority"`
	EncryptCertPayloadUUID string `json:"encrypt_cert_payload_uuid"`
	Location               string `json:"location"`
}

// FDERecoveryRedirectPayload points recovery at the same certificate as the escrow payload.
type FDERecoveryRedirectPayload struct {
	BasePayload
	AddigyPayloadVersion   int    `json:"addigy_payload_version"`
	PayloadPriority        int    `json:"payload_priority"`
	EncryptCertPayloadUUID string `json:"encrypt_cert_payload_uuid"`
	RedirectURL            string `json:"redirect_url"`
}

// FileVault builds the FileVault payload set: FileVault2 and MCX standby, then, when escrow is
// requested, the certificate, escrow and redirect payloads. All of them share one group id and
// priority; the escrow and redirect payloads share a certificate UUID distinct from the group id.
func (b *Builder) FileVault(displayName string, in FileVaultInput) []Payload {
	priority := in.Priority
	if priority == 0 {
		priority = DefaultFileVaultPriority
	}

	groupID := b.ids.NewID()
	encryptCertUUID := b.ids.NewID()
	base := func(kind PayloadKind) BasePayload {
		return newBasePayload(kind, groupID, b.ids.NewID(), displayName)
	}

	enable := fileVaultDisabled
	if in.Enable {
		enable = fileVaultEnabled
	}

	payloads := []Payload{
		&FileVault2Payload{
			BasePayload:                            base(KindFileVault2),
			PayloadPriority:                        priority,
			Enable:                                 enable,
			Defer:                                  in.Defer,
			UseRecoveryKey:                         true,
			ShowRecoveryKey:                        in.ShowRecoveryKey,
			DeferDontAskAtUserLogout:               in.DeferDontAskAtUserLogout,
			DeferForceAtUserLoginMaxBypassAttempts: in.DeferForceAtUserLoginMaxBypassAttempts,
		},
		&MCXStandbyPayload{
			BasePayload:           base(KindMCXStandby),
			PayloadPriority:       priority,
			DestroyFvKeyOnStandby: in.DestroyFvKeyOnStandby,
			DontAllowFDEDisable:   true,
		},
	}

	if !in.EscrowRecoveryKey {
		return payloads
	}

	return append(payloads,
		&PKCS1CertificatePayload{
			BasePayload:           base(KindPKCS1Certificate),
			PayloadPriority:       priority,
			IsFromSecurityProfile: true,
		},
		&FDERecoveryKeyEscrowPayload{
			BasePayload:            base(KindFDERecoveryKeyEscrow),
			PayloadPriority:        priority,
			EncryptCertPayloadUUID: encryptCertUUID,
			Location:               FileVaultEscrowLocation,
		},
		&FDERecoveryRedirectPayload{
			BasePayload:            base(KindFDERecoveryRedirect),
			PayloadPriority:        priority,
			EncryptCertPayloadUUID: encryptCertUUID,
			RedirectURL:            "",
		},
	)
}
