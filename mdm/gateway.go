// mdm/gateway.go
package mdm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"go.uber.org/zap"
)

// configurationsPath is the payload submission endpoint on the app-prod host.
const configurationsPath = "/api/mdm/user/profiles/configurations/"

// Submitter sends payloads to the configuration API.
type Submitter interface {
	// SubmitPayloads posts {"payloads": payloads} and returns the response body.
	SubmitPayloads(ctx context.Context, authObject auth.AuthObject, payloads []Payload) (json.RawMessage, error)
	// SubmitRaw posts {"payloads": payloads} with caller-encoded payload JSON.
	SubmitRaw(ctx context.Context, authObject auth.AuthObject, payloads json.RawMessage) (json.RawMessage, error)
}

// Gateway is the Submitter backed by the internal API.
type Gateway struct {
	client   *httpclient.Client
	endpoint string
	origin   string
}

var _ Submitter = (*Gateway)(nil)

// NewGateway returns a Gateway posting to the app-prod host in hosts.
func NewGateway(client *httpclient.Client, hosts addigyapi.Hosts) *Gateway {
	hosts = hosts.WithDefaults()
	return &Gateway{
		client:   client,
		endpoint: hosts.AppProd + configurationsPath,
		origin:   hosts.AppProd,
	}
}

type submission struct {
	Payloads interface{} `json:"payloads"`
}

// SubmitPayloads sends every payload in one request. The request is sent once; a failed submission
// may still have created some payloads server-side.
func (g *Gateway) SubmitPayloads(ctx context.Context, authObject auth.AuthObject, payloads []Payload) (json.RawMessage, error) {
	if payloads == nil {
		payloads = []Payload{}
	}
	return g.submit(ctx, authObject, submission{Payloads: payloads}, len(payloads))
}

// SubmitRaw sends payloads verbatim as the value of the payloads key.
func (g *Gateway) SubmitRaw(ctx context.Context, authObject auth.AuthObject, payloads json.RawMessage) (json.RawMessage, error) {
	if !json.Valid(payloads) {
		return nil, &MalformedDocumentError{Reason: "payloads are not valid JSON"}
	}
	return g.submit(ctx, authObject, submission{Payloads: payloads}, -1)
}

func (g *Gateway) submit(ctx context.Context, authObject auth.AuthObject, body submission, count int) (json.RawMessage, error) {
	g.client.Logger.Debug("Submitting MDM payloads", zap.String("endpoint", g.endpoint), zap.Int("payload_count", count))

	var out json.RawMessage
	if _, err := g.client.DoRequest(ctx, http.MethodPost, g.endpoint, body, &out,
		httpclient.WithSessionCookie(authObject.AuthToken),
		httpclient.WithOrigin(g.origin),
	); err != nil {
		return nil, fmt.Errorf("submitting MDM payloads: %w", err)
	}
	return out, nil
}
