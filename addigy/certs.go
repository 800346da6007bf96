// addigy/certs.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// CertsService reads Apple Push Notification service certificates through the internal API.
type CertsService struct{ service }

type apnsList struct {
	Items []json.RawMessage `json:"items"`
}

// GetApnsCerts returns one page of APNs certificates. next and previous are the cursors of the
// adjacent pages; empty values are not sent.
func (s *CertsService) GetApnsCerts(ctx context.Context, authObject auth.AuthObject, next, previous string) ([]json.RawMessage, error) {
	opts := accountHeaders(authObject)
	if next != "" {
		opts = append(opts, httpclient.WithQueryParam("next", next))
	}
	if previous != "" {
		opts = append(opts, httpclient.WithQueryParam("previous", previous))
	}

	var out apnsList
	if _, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.AppProd+"/api/apn/user/apn/list", nil, &out, s.session(authObject, opts...)...); err != nil {
		return nil, err
	}
	return out.Items, nil
}
