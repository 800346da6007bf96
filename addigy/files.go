// addigy/files.go
package addigy

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

// DefaultUploadContentType is the content type of uploads that do not name one.
const DefaultUploadContentType = "application/octet-stream"

// FilesService uploads files through the Addigy file manager. The file manager is a separate host, so
// the client credentials are attached explicitly.
type FilesService struct {
	service
	clientID     string
	clientSecret string
}

// GetFileUploadURL asks the file manager for a URL that fileName can be uploaded to. An empty
// contentType means DefaultUploadContentType.
func (s *FilesService) GetFileUploadURL(ctx context.Context, fileName, contentType string) (string, error) {
	var raw string
	_, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.FileManager+"/api/upload/url", nil, &raw,
		httpclient.WithHeader(addigyapi.ClientIDHeader, s.clientID),
		httpclient.WithHeader(addigyapi.ClientSecretHeader, s.clientSecret),
		httpclient.WithHeader("file-name", fileName),
		httpclient.WithHeader("Content-Type", uploadContentType(contentType)),
	)
	if err != nil {
		return "", err
	}

	// The URL arrives either bare or as a JSON string.
	var uploadURL string
	if json.Unmarshal([]byte(raw), &uploadURL) == nil {
		return uploadURL, nil
	}
	return strings.TrimSpace(raw), nil
}

// UploadFile PUTs data to an upload URL returned by GetFileUploadURL and returns the raw response
// body. An empty contentType means DefaultUploadContentType.
func (s *FilesService) UploadFile(ctx context.Context, uploadURL string, data []byte, contentType string) (string, error) {
	var out string
	_, err := s.client.DoRequest(ctx, http.MethodPut, uploadURL, data, &out,
		httpclient.WithHeader("Content-Type", uploadContentType(contentType)))
	return out, err
}

func uploadContentType(contentType string) string {
	if contentType == "" {
		return DefaultUploadContentType
	}
	return contentType
}
