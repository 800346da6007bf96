// mdm/gateway_test.go
package mdm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuth = auth.AuthObject{OrgID: "org-1", AuthToken: "session-token", EmailAddress: "admin@example.com"}

func TestGateway_SubmitPayloads(t *testing.T) {
	var received map[string][]map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/mdm/user/profiles/configurations/", r.URL.Path)
		assert.Equal(t, "auth_token=session-token;", r.Header.Get("Cookie"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("Origin"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client, hosts := newTestTransport(t, server.URL)
	b, _ := newSequenceBuilder()
	payloads := b.FileVault("FileVault", FileVaultInput{Enable: true, EscrowRecoveryKey: true})

	out, err := NewGateway(client, hosts).SubmitPayloads(context.Background(), testAuth, payloads)

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(out))
	require.Len(t, received["payloads"], 5)
	assert.Equal(t, "On", received["payloads"][0]["enable"])
	assert.Equal(t, "com.apple.security.FDERecoveryRedirect", received["payloads"][4]["payload_type"])
}

func TestGateway_OriginIsAppProdHost(t *testing.T) {
	gateway := NewGateway(nil, addigyapi.Hosts{})
	assert.Equal(t, "https://app-prod.addigy.com/api/mdm/user/profiles/configurations/", gateway.endpoint)
	assert.Equal(t, "https://app-prod.addigy.com", gateway.origin)
}

func TestGateway_SubmitRaw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"payloads":[{"payload_type":"custom","payload_display_name":"Raw"}]}`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, hosts := newTestTransport(t, server.URL)
	out, err := NewGateway(client, hosts).SubmitRaw(context.Background(), testAuth, json.RawMessage(`[{"payload_type":"custom","payload_display_name":"Raw"}]`))

	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGateway_SubmitRawRejectsInvalidJSON(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	client, hosts := newTestTransport(t, server.URL)
	_, err := NewGateway(client, hosts).SubmitRaw(context.Background(), testAuth, json.RawMessage(`[{`))

	assert.ErrorIs(t, err, ErrMalformedDocument)
	assert.Zero(t, atomic.LoadInt32(&requests))
}

func TestGateway_ErrorIsPropagatedAndSentOnce(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"payload rejected"}`))
	}))
	defer server.Close()

	client, hosts := newTestTransport(t, server.URL)
	b, _ := newSequenceBuilder()

	_, err := NewGateway(client, hosts).SubmitPayloads(context.Background(), testAuth, []Payload{b.KernelExtension("k", KernelExtensionInput{})})

	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "payload rejected", apiErr.Message)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}
