// addigy/screenconnect.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
)

// ScreenConnectService creates remote-control links through the internal API.
type ScreenConnectService struct{ service }

type screenConnectRequest struct {
	SessionID string `json:"sessionId"`
	AgentID   string `json:"agentid"`
}

// GetScreenConnectLinks returns the ScreenConnect links of a device session. An empty agentID uses
// sessionID, which is the same value for every device seen so far.
func (s *ScreenConnectService) GetScreenConnectLinks(ctx context.Context, authObject auth.AuthObject, sessionID, agentID string) (json.RawMessage, error) {
	if agentID == "" {
		agentID = sessionID
	}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, s.hosts.AppProd+"/api/devices/screenconnect/links",
		screenConnectRequest{SessionID: sessionID, AgentID: agentID}, &out, s.session(authObject, accountHeaders(authObject)...)...)
	return out, err
}
