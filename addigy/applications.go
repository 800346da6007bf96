// addigy/applications.go
package addigy

import (
	"context"
	"net/http"
)

// InstalledApplications lists the applications found on one device.
type InstalledApplications struct {
	AgentID               string        `json:"agentid"`
	InstalledApplications []Application `json:"installed_applications"`
}

// Application is one installed application.
type Application struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version"`
}

// ApplicationsService reads installed applications through the public API.
type ApplicationsService struct{ service }

// GetInstalledApplications returns the installed applications of every device.
func (s *ApplicationsService) GetInstalledApplications(ctx context.Context) ([]InstalledApplications, error) {
	var out []InstalledApplications
	_, err := s.client.DoRequest(ctx, http.MethodGet, "applications", nil, &out)
	return out, err
}
