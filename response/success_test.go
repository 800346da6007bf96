// response/success_test.go
package response

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/mocklogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSuccessResponse(method, contentType, body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    httptest.NewRequest(method, "https://prod.addigy.com/api/devices", nil),
	}
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	return resp
}

type device struct {
	AgentID string `json:"agentid"`
}

func TestHandleAPISuccessResponse_JSON(t *testing.T) {
	var out []device
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "application/json", `[{"agentid":"a1"}]`), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, []device{{AgentID: "a1"}}, out)
}

func TestHandleAPISuccessResponse_JSONLabelledAsText(t *testing.T) {
	var out json.RawMessage
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "text/plain; charset=utf-8", `{"payloads":[]}`), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.JSONEq(t, `{"payloads":[]}`, string(out))
}

func TestHandleAPISuccessResponse_UntypedJSON(t *testing.T) {
	var out map[string]interface{}
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "", `{"ok":true}`), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, true, out["ok"])
}

func TestHandleAPISuccessResponse_PlainTextIntoString(t *testing.T) {
	var out string
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodPut, "text/plain", "ok"), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestHandleAPISuccessResponse_PlainTextIntoStructFails(t *testing.T) {
	var out map[string]interface{}
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "text/plain", "ok"), &out, mocklogger.NewMockLogger())

	assert.EqualError(t, err, "Response body is not JSON")
}

func TestHandleAPISuccessResponse_EmptyBody(t *testing.T) {
	out := json.RawMessage(`"untouched"`)
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodPost, "application/json", ""), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, `"untouched"`, string(out))
}

func TestHandleAPISuccessResponse_DeleteWithoutOut(t *testing.T) {
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodDelete, "application/json", `{"deleted":true}`), nil, mocklogger.NewMockLogger())

	assert.NoError(t, err)
}

func TestHandleAPISuccessResponse_XML(t *testing.T) {
	var out struct {
		Name string `xml:"name"`
	}
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "application/xml", `<policy><name>Default</name></policy>`), &out, mocklogger.NewMockLogger())

	require.NoError(t, err)
	assert.Equal(t, "Default", out.Name)
}

func TestHandleAPISuccessResponse_Binary(t *testing.T) {
	resp := newSuccessResponse(http.MethodGet, "application/octet-stream", "\x00\x01")
	resp.Header.Set("Content-Disposition", `attachment; filename="keys.bin"`)

	mockLog := mocklogger.NewMockLogger()
	mockLog.On("Debug", "Extracted filename from Content-Disposition", mock.MatchedBy(func(fields []zap.Field) bool {
		return len(fields) == 1 && fields[0].String == "keys.bin"
	})).Once()

	var data []byte
	require.NoError(t, HandleAPISuccessResponse(resp, &data, mockLog))
	assert.Equal(t, []byte{0x00, 0x01}, data)
	mockLog.AssertExpectations(t)

	var buf bytes.Buffer
	require.NoError(t, HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "application/octet-stream", "abc"), &buf, mocklogger.NewMockLogger()))
	assert.Equal(t, "abc", buf.String())
}

func TestHandleAPISuccessResponse_UnexpectedMIMEType(t *testing.T) {
	var out map[string]interface{}
	err := HandleAPISuccessResponse(newSuccessResponse(http.MethodGet, "image/png", "png"), &out, mocklogger.NewMockLogger())

	assert.EqualError(t, err, "unexpected MIME type: image/png")
}
