// addigy/testing_helpers_test.go
package addigy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/stretchr/testify/require"
)

var testAuth = auth.AuthObject{OrgID: "org-1", AuthToken: "token-1", EmailAddress: "admin@example.com"}

// recordedRequest is the part of an incoming request the tests assert on.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

func (r recordedRequest) jsonBody(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &out))
	return out
}

type cannedResponse struct {
	status      int
	contentType string
	body        string
}

// recorder answers requests from a "METHOD /path" route table and keeps every request it saw.
type recorder struct {
	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []recordedRequest
}

func (rec *recorder) on(method, path, body string) *recorder {
	return rec.onStatus(method, path, http.StatusOK, body)
}

func (rec *recorder) onStatus(method, path string, status int, body string) *recorder {
	if rec.routes == nil {
		rec.routes = map[string]cannedResponse{}
	}
	rec.routes[method+" "+path] = cannedResponse{status: status, contentType: "application/json", body: body}
	return rec
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	rec.mu.Lock()
	rec.requests = append(rec.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	route, ok := rec.routes[r.Method+" "+r.URL.Path]
	rec.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if route.body != "" {
		w.Header().Set("Content-Type", route.contentType)
	}
	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}

func (rec *recorder) all() []recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]recordedRequest(nil), rec.requests...)
}

// last returns the most recent request, failing the test when none arrived.
func (rec *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	requests := rec.all()
	require.NotEmpty(t, requests, "no request reached the server")
	return requests[len(requests)-1]
}

// newTestClient starts a server backed by rec and returns a Client whose hosts all point at it.
func newTestClient(t *testing.T, rec *recorder) *Client {
	t.Helper()
	server := httptest.NewServer(rec)
	t.Cleanup(server.Close)

	client, err := NewClientWithLogger(Config{
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		AdminUsername: "admin@example.com",
		AdminPassword: "hunter2",
		Hosts:         addigyapi.Hosts{API: server.URL, App: server.URL, AppProd: server.URL, FileManager: server.URL},
	}, logger.NewNopLogger())
	require.NoError(t, err)
	return client
}
