// mdm/policies_test.go
package mdm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockSubmitter records submissions instead of sending them.
type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) SubmitPayloads(ctx context.Context, authObject auth.AuthObject, payloads []Payload) (json.RawMessage, error) {
	args := m.Called(ctx, authObject, payloads)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *mockSubmitter) SubmitRaw(ctx context.Context, authObject auth.AuthObject, payloads json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, authObject, payloads)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func newTestPolicies() (*Policies, *mockSubmitter) {
	submitter := &mockSubmitter{}
	b, _ := newSequenceBuilder()
	return NewPolicies(b, submitter, mocklogger.NewMockLogger()), submitter
}

// payloadKinds matches a submission whose payload kinds equal kinds, in order.
func payloadKinds(kinds ...PayloadKind) interface{} {
	return mock.MatchedBy(func(payloads []Payload) bool {
		if len(payloads) != len(kinds) {
			return false
		}
		for i, p := range payloads {
			if p.Kind() != kinds[i] {
				return false
			}
		}
		return true
	})
}

func TestPolicies_CreateEachKind(t *testing.T) {
	ctx := context.Background()
	encodedProfile := base64.StdEncoding.EncodeToString([]byte(dockProfile))

	tests := []struct {
		name   string
		kinds  []PayloadKind
		create func(p *Policies) (json.RawMessage, error)
	}{
		{"kernel extension", []PayloadKind{KindKernelExtension}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateKernelExtensionPolicy(ctx, testAuth, "k", KernelExtensionInput{})
		}},
		{"system extension", []PayloadKind{KindSystemExtension}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateSystemExtensionPolicy(ctx, testAuth, "s", SystemExtensionInput{})
		}},
		{"notification settings", []PayloadKind{KindNotificationSettings}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateNotificationSettingsPolicy(ctx, testAuth, "n", nil)
		}},
		{"service management", []PayloadKind{KindServiceManagement}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateServiceManagementPolicy(ctx, testAuth, "sm", ServiceManagementInput{})
		}},
		{"web content filter", []PayloadKind{KindWebContentFilter}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateWebContentFilterPolicy(ctx, testAuth, "w", WebContentFilterInput{FilterGrade: FilterGradeFirewall})
		}},
		{"filevault", []PayloadKind{KindFileVault2, KindMCXStandby}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateFileVaultPolicy(ctx, testAuth, "fv", FileVaultInput{Enable: true})
		}},
		{"pppc", []PayloadKind{KindPPPC}, func(p *Policies) (json.RawMessage, error) {
			return p.CreatePPPCPolicy(ctx, testAuth, "p", []PPPCInput{{Identifier: "com.foo", Services: []PPPCServiceRequest{{Service: ServiceCamera}}}})
		}},
		{"custom profile", []PayloadKind{KindCustomProfile}, func(p *Policies) (json.RawMessage, error) {
			return p.CreateCustomProfile(ctx, testAuth, "c", CustomProfileInput{ProfileBase64: encodedProfile})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policies, submitter := newTestPolicies()
			submitter.On("SubmitPayloads", ctx, testAuth, payloadKinds(tt.kinds...)).Return(json.RawMessage(`{"ok":true}`), nil).Once()

			out, err := tt.create(policies)

			require.NoError(t, err)
			assert.JSONEq(t, `{"ok":true}`, string(out))
			submitter.AssertExpectations(t)
		})
	}
}

func TestPolicies_InvalidInputIsNeverSubmitted(t *testing.T) {
	ctx := context.Background()
	policies, submitter := newTestPolicies()

	_, err := policies.CreatePPPCPolicy(ctx, testAuth, "p", []PPPCInput{{Services: []PPPCServiceRequest{{Service: "bluetooth"}}}})
	var unknown *UnknownServiceError
	assert.True(t, errors.As(err, &unknown))

	_, err = policies.CreateCustomProfile(ctx, testAuth, "c", CustomProfileInput{ProfileBase64: "not-base64!"})
	assert.ErrorIs(t, err, ErrMalformedDocument)

	submitter.AssertNotCalled(t, "SubmitPayloads", mock.Anything, mock.Anything, mock.Anything)
}

func TestPolicies_SubmissionErrorPropagates(t *testing.T) {
	ctx := context.Background()
	policies, submitter := newTestPolicies()
	cause := errors.New("connection reset")
	submitter.On("SubmitPayloads", ctx, testAuth, mock.Anything).Return(nil, cause)

	_, err := policies.CreateKernelExtensionPolicy(ctx, testAuth, "k", KernelExtensionInput{})

	assert.ErrorIs(t, err, cause)
}

func TestPolicies_CreateMdmProfile(t *testing.T) {
	ctx := context.Background()
	policies, submitter := newTestPolicies()
	raw := json.RawMessage(`[{"payload_type":"custom"}]`)
	submitter.On("SubmitRaw", ctx, testAuth, raw).Return(json.RawMessage(`[]`), nil).Once()

	out, err := policies.CreateMdmProfile(ctx, testAuth, raw)

	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`[]`), out)
	submitter.AssertExpectations(t)
}
