// mdm/pppc_test.go
package mdm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPPPC_EmptyTableHasEveryCategory(t *testing.T) {
	b, _ := newSequenceBuilder()

	payload, err := b.PPPC("Privacy", nil)
	require.NoError(t, err)

	wire := toMap(t, payload)
	assert.Equal(t, withBase("services"), sortedKeys(wire))

	services := wire["services"].(map[string]interface{})
	require.Len(t, services, 21)
	for _, category := range ServiceCategories() {
		assert.Equal(t, []interface{}{}, services[string(category)], string(category))
	}
}

func TestPPPC_SingleCamera(t *testing.T) {
	b, _ := newSequenceBuilder()

	payload, err := b.PPPC("Camera", []PPPCInput{{
		Identifier:      "com.foo.app",
		CodeRequirement: "identifier com.foo.app",
		Services:        []PPPCServiceRequest{{Service: ServiceCamera, Allowed: true, IdentifierType: IdentifierTypeBundleID}},
	}})
	require.NoError(t, err)

	camera := payload.Services.Records(ServiceCamera)
	require.Len(t, camera, 1)
	record := camera[0]
	assert.True(t, record.Allowed)
	assert.Equal(t, "com.foo.app", record.Identifier)
	assert.Equal(t, IdentifierTypeBundleID, record.IdentifierType)
	assert.Equal(t, "identifier com.foo.app", record.CodeRequirement)
	assert.Equal(t, "", record.Authorization)
	assert.True(t, record.ManualSelection)
	assert.Equal(t, "id-3", record.RowID)

	for _, category := range ServiceCategories() {
		if category != ServiceCamera {
			assert.Empty(t, payload.Services.Records(category), string(category))
		}
	}

	wire := toMap(t, payload)
	row := wire["services"].(map[string]interface{})["camera"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, []string{
		"allowed", "authorization", "code_requirement", "comment", "identifier", "identifier_type",
		"manual_selection", "predefined_app", "rowId", "static_code",
	}, sortedKeys(row))
	assert.Nil(t, row["predefined_app"])
}

func TestPPPC_FanOutAndSpecialCategories(t *testing.T) {
	b, _ := newSequenceBuilder()

	payload, err := b.PPPC("Agent", []PPPCInput{{
		Identifier:      "/usr/local/bin/agent",
		CodeRequirement: "anchor apple generic",
		Services: []PPPCServiceRequest{
			{Service: ServiceSystemPolicyAllFiles, Allowed: true, IdentifierType: IdentifierTypePath, StaticCode: true},
			{Service: ServiceScreenCapture, Allowed: true, Authorization: AuthorizationAllowStandardUser, IdentifierType: IdentifierTypePath},
			{
				Service:                   ServiceAppleEvents,
				Allowed:                   true,
				IdentifierType:            IdentifierTypePath,
				AEReceiverIdentifier:      "com.apple.systemevents",
				AEReceiverIdentifierType:  IdentifierTypeBundleID,
				AEReceiverCodeRequirement: "identifier com.apple.systemevents",
			},
		},
	}})
	require.NoError(t, err)

	allFiles := payload.Services.Records(ServiceSystemPolicyAllFiles)
	require.Len(t, allFiles, 1)
	assert.True(t, allFiles[0].StaticCode)
	assert.Nil(t, allFiles[0].AppleEventsReceiver)

	screen := payload.Services.Records(ServiceScreenCapture)
	require.Len(t, screen, 1)
	assert.False(t, screen[0].Allowed, "screen capture uses authorization instead of allowed")
	assert.Equal(t, AuthorizationAllowStandardUser, screen[0].Authorization)

	events := payload.Services.Records(ServiceAppleEvents)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].AppleEventsReceiver)
	assert.Equal(t, "com.apple.systemevents", events[0].AEReceiverIdentifier)
	assert.True(t, events[0].AEReceiverManualSelection)

	rowIDs := map[string]bool{allFiles[0].RowID: true, screen[0].RowID: true, events[0].RowID: true}
	assert.Len(t, rowIDs, 3)

	wire := toMap(t, payload)
	services := wire["services"].(map[string]interface{})
	eventRow := services["apple_events"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{"ae_receiver_identifier", "ae_receiver_identifier_type", "ae_receiver_code_requirement", "ae_receiver_predefined_app", "ae_receiver_manual_selection"} {
		assert.Contains(t, eventRow, key)
	}
	assert.Nil(t, eventRow["ae_receiver_predefined_app"])
	allFilesRow := services["system_policy_all_files"].([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, allFilesRow, "ae_receiver_identifier")
}

func TestPPPC_RepeatedServiceProducesIndependentRows(t *testing.T) {
	b, _ := newSequenceBuilder()
	grant := PPPCInput{
		Identifier: "com.foo.app",
		Services:   []PPPCServiceRequest{{Service: ServiceMicrophone, Allowed: false}},
	}

	payload, err := b.PPPC("Mic", []PPPCInput{grant, grant})
	require.NoError(t, err)

	rows := payload.Services.Records(ServiceMicrophone)
	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].RowID, rows[1].RowID)
}

func TestPPPC_UnknownService(t *testing.T) {
	b, seq := newSequenceBuilder()

	_, err := b.PPPC("Bad", []PPPCInput{{
		Identifier: "com.foo.app",
		Services:   []PPPCServiceRequest{{Service: ServiceCamera}, {Service: "bluetooth"}},
	}})

	var unknown *UnknownServiceError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, ServiceCategory("bluetooth"), unknown.Service)
	assert.Zero(t, seq.Issued(), "no identifiers are minted for a rejected policy")
	assert.Nil(t, (&PPPCServices{}).Records("bluetooth"))
}
