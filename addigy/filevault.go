// addigy/filevault.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
)

// FileVaultService reads escrowed FileVault recovery keys through the internal API.
type FileVaultService struct{ service }

// GetFileVaultKeys returns the recovery keys escrowed by the organisation's devices.
func (s *FileVaultService) GetFileVaultKeys(ctx context.Context, authObject auth.AuthObject) ([]json.RawMessage, error) {
	var out []json.RawMessage
	_, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.API+"/get_org_filevault_keys/", nil, &out, s.session(authObject)...)
	return out, err
}
