// mdm/policies.go
package mdm

import (
	"context"
	"encoding/json"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// Policies builds MDM policies and submits them. Each call mints new identifiers, so repeating a
// call creates a second policy rather than updating the first.
type Policies struct {
	builder   *Builder
	submitter Submitter
	log       logger.Logger
}

// NewPolicies ties builder to submitter.
func NewPolicies(builder *Builder, submitter Submitter, log logger.Logger) *Policies {
	if builder == nil {
		builder = NewBuilder(nil)
	}
	return &Policies{builder: builder, submitter: submitter, log: log}
}

func (p *Policies) submit(ctx context.Context, authObject auth.AuthObject, payloads ...Payload) (json.RawMessage, error) {
	if len(payloads) > 0 {
		base := payloads[0].Base()
		p.log.Info("Creating MDM policy",
			zap.String("kind", base.Kind().String()),
			zap.String("name", base.PayloadDisplayName),
			zap.String("group_id", base.PayloadGroupID),
			zap.Int("payload_count", len(payloads)),
		)
	}
	return p.submitter.SubmitPayloads(ctx, authObject, payloads)
}

// CreateKernelExtensionPolicy creates a kernel extension allow-list policy named name.
func (p *Policies) CreateKernelExtensionPolicy(ctx context.Context, authObject auth.AuthObject, name string, in KernelExtensionInput) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.KernelExtension(name, in))
}

// CreateSystemExtensionPolicy creates a system extension allow-list policy named name.
func (p *Policies) CreateSystemExtensionPolicy(ctx context.Context, authObject auth.AuthObject, name string, in SystemExtensionInput) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.SystemExtension(name, in))
}

// CreateNotificationSettingsPolicy creates a notification settings policy.
func (p *Policies) CreateNotificationSettingsPolicy(ctx context.Context, authObject auth.AuthObject, name string, settings []NotificationSetting) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.NotificationSettings(name, settings))
}

// CreateServiceManagementPolicy creates a service management (managed login items) policy.
func (p *Policies) CreateServiceManagementPolicy(ctx context.Context, authObject auth.AuthObject, name string, in ServiceManagementInput) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.ServiceManagement(name, in))
}

// CreateWebContentFilterPolicy creates a web content filter policy.
func (p *Policies) CreateWebContentFilterPolicy(ctx context.Context, authObject auth.AuthObject, name string, in WebContentFilterInput) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.WebContentFilter(name, in))
}

// CreateFileVaultPolicy creates a FileVault policy, submitting all of its payloads in one request.
func (p *Policies) CreateFileVaultPolicy(ctx context.Context, authObject auth.AuthObject, name string, in FileVaultInput) (json.RawMessage, error) {
	return p.submit(ctx, authObject, p.builder.FileVault(name, in)...)
}

// CreatePPPCPolicy creates a privacy preferences policy. Unknown services are rejected before any
// request is sent.
func (p *Policies) CreatePPPCPolicy(ctx context.Context, authObject auth.AuthObject, name string, inputs []PPPCInput) (json.RawMessage, error) {
	payload, err := p.builder.PPPC(name, inputs)
	if err != nil {
		p.log.Error("Invalid PPPC policy", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return p.submit(ctx, authObject, payload)
}

// CreateCustomProfile creates a custom profile policy from a base64 configuration profile. Malformed
// documents are rejected before any request is sent.
func (p *Policies) CreateCustomProfile(ctx context.Context, authObject auth.AuthObject, name string, in CustomProfileInput) (json.RawMessage, error) {
	payload, err := p.builder.CustomProfile(name, in)
	if err != nil {
		p.log.Error("Invalid custom profile", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	return p.submit(ctx, authObject, payload)
}

// CreateMdmProfile submits payloads the caller has already encoded.
func (p *Policies) CreateMdmProfile(ctx context.Context, authObject auth.AuthObject, payloads json.RawMessage) (json.RawMessage, error) {
	return p.submitter.SubmitRaw(ctx, authObject, payloads)
}
