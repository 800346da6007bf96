// addigy/billing.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
)

// BillingService reads billing data through the internal API.
type BillingService struct{ service }

// GetBillingData returns the organisation's ChargeOver billing data.
func (s *BillingService) GetBillingData(ctx context.Context, authObject auth.AuthObject) (json.RawMessage, error) {
	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.AppProd+"/api/billing/get_chargeover_billing_data", nil, &out,
		s.session(authObject, accountHeaders(authObject)...)...)
	return out, err
}
