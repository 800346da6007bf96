// addigy/commands.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// CommandsService runs shell commands on devices through the public API.
type CommandsService struct{ service }

type runCommandRequest struct {
	AgentIDs []string `json:"agent_ids"`
	Command  string   `json:"command"`
}

// RunCommand queues command on every device in agentIDs. The response carries the action id used by
// GetCommandOutput.
func (s *CommandsService) RunCommand(ctx context.Context, agentIDs []string, command string) (json.RawMessage, error) {
	if agentIDs == nil {
		agentIDs = []string{}
	}

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodPost, "devices/commands", runCommandRequest{AgentIDs: agentIDs, Command: command}, &out)
	return out, err
}

// GetCommandOutput returns the output of actionID on the device agentID.
func (s *CommandsService) GetCommandOutput(ctx context.Context, actionID, agentID string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("action_id", actionID)
	query.Set("agentid", agentID)

	var out json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, "devices/output", nil, &out, httpclient.WithQuery(query))
	return out, err
}
