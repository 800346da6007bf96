// mdm/testing_helpers_test.go
package mdm

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"github.com/deploymenttheory/go-api-sdk-addigy/identifier"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/require"
)

var baseKeys = []string{
	"addigy_payload_type",
	"payload_display_name",
	"payload_group_id",
	"payload_identifier",
	"payload_type",
	"payload_uuid",
	"payload_version",
}

func newSequenceBuilder() (*Builder, *identifier.Sequence) {
	seq := identifier.NewSequence("id")
	return NewBuilder(seq), seq
}

// toMap round-trips v through JSON so tests can inspect the wire form.
func toMap(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// withBase returns the base keys plus extra, sorted.
func withBase(extra ...string) []string {
	keys := append(append([]string{}, baseKeys...), extra...)
	sort.Strings(keys)
	return keys
}

// newTestTransport builds an httpclient.Client and Hosts that route every host to serverURL.
func newTestTransport(t *testing.T, serverURL string) (*httpclient.Client, addigyapi.Hosts) {
	t.Helper()
	hosts := addigyapi.Hosts{API: serverURL, App: serverURL, AppProd: serverURL}
	log := logger.NewNopLogger()
	client, err := httpclient.BuildClientWithLogger(httpclient.ClientConfig{
		Integration: &addigyapi.Integration{BaseDomain: hosts.PublicAPIBaseURL(), Logger: log},
	}, log, true)
	require.NoError(t, err)
	return client, hosts
}
