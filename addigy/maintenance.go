// addigy/maintenance.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
)

// MaintenanceService reads maintenance items through the public API.
type MaintenanceService struct{ service }

// GetMaintenance returns one page of maintenance items. page and perPage below 1 default to 1 and 10.
func (s *MaintenanceService) GetMaintenance(ctx context.Context, page, perPage int) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "maintenance", nil, &out, paging(page, perPage)...)
	return out, err
}
