// addigy/alerts.go
package addigy

import (
	"context"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// AlertStatus filters alerts by their state.
type AlertStatus string

const (
	AlertStatusAcknowledged AlertStatus = "Acknowledged"
	AlertStatusResolved     AlertStatus = "Resolved"
	AlertStatusUnattended   AlertStatus = "Unattended"
)

// Alert is a monitoring alert raised on a device.
type Alert struct {
	ID             string      `json:"_id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	Level          string      `json:"level"`
	Status         AlertStatus `json:"status"`
	AgentID        string      `json:"agentid"`
	OrgID          string      `json:"orgid"`
	FactName       string      `json:"fact_name"`
	FactIdentifier string      `json:"fact_identifier"`
	Selector       string      `json:"selector"`
	Value          string      `json:"value"`
	ValueType      string      `json:"valuetype"`
	Emails         []string    `json:"emails"`
	RemEnabled     bool        `json:"remenabled"`
	RemTime        int64       `json:"remtime"`
	CreatedOn      float64     `json:"created_on"`
	CreatedDate    string      `json:"created_date"`
}

// AlertsService reads alerts through the public API.
type AlertsService struct{ service }

// GetAlerts returns one page of alerts. An empty status returns alerts in every state; page and
// perPage below 1 default to 1 and 10.
func (s *AlertsService) GetAlerts(ctx context.Context, status AlertStatus, page, perPage int) ([]Alert, error) {
	opts := paging(page, perPage)
	if status != "" {
		opts = append(opts, httpclient.WithQueryParam("status", string(status)))
	}

	var out []Alert
	_, err := s.client.DoRequest(ctx, http.MethodGet, "alerts", nil, &out, opts...)
	return out, err
}
