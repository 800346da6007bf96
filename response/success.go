// response/success.go
/* Responsible for handling successful API responses. It reads the response body, logs the raw response
details and unmarshals the response based on the content type. The public API frequently labels JSON
bodies as text/plain, so JSON decoding is attempted for plain text and untyped bodies as well. */
package response

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"go.uber.org/zap"
)

// contentHandler defines the signature for unmarshaling content from a response body.
type contentHandler func([]byte, any, logger.Logger, string) error

// responseUnmarshallers maps MIME types to the corresponding contentHandler functions.
var responseUnmarshallers = map[string]contentHandler{
	"application/json": handlerUnmarshalJSON,
	"text/plain":       handlerUnmarshalText,
	"":                 handlerUnmarshalText,
	"application/xml":  handlerUnmarshalXML,
	"text/xml":         handlerUnmarshalXML,
}

// HandleAPISuccessResponse reads the response body, logs the raw response details, and unmarshals the
// response into out based on the content type. A nil out or an empty body leaves out untouched.
func HandleAPISuccessResponse(resp *http.Response, out any, log logger.Logger) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return log.Error("Failed to read response body", zap.Error(err))
	}

	log.Debug("Raw HTTP Response", zap.Int("status_code", resp.StatusCode), zap.Int("body_length", len(bodyBytes)))

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		if resp.Request != nil && resp.Request.Method == http.MethodDelete {
			log.Info("Successfully processed DELETE request", zap.String("URL", resp.Request.URL.String()), zap.Int("Status Code", resp.StatusCode))
		}
		return nil
	}

	if target, ok := out.(*string); ok {
		*target = string(bodyBytes)
		return nil
	}

	contentType := resp.Header.Get("Content-Type")
	contentDisposition := resp.Header.Get("Content-Disposition")

	if isBinaryData(contentType, contentDisposition) {
		return handleBinaryData(bytes.NewReader(bodyBytes), log, out, contentDisposition)
	}

	contentTypeNoParams, _ := ParseContentTypeHeader(contentType)
	if handler, ok := responseUnmarshallers[contentTypeNoParams]; ok {
		return handler(bodyBytes, out, log, contentType)
	}

	errMsg := fmt.Sprintf("unexpected MIME type: %s", contentType)
	return log.Error(errMsg, zap.String("content type", contentType))
}

// handlerUnmarshalJSON unmarshals JSON content into the provided output structure.
func handlerUnmarshalJSON(body []byte, out any, log logger.Logger, mimeType string) error {
	if err := json.Unmarshal(body, out); err != nil {
		log.Error("JSON Unmarshal error", zap.Error(err))
		return fmt.Errorf("failed to decode JSON response: %w", err)
	}
	log.Debug("Successfully unmarshalled JSON response", zap.String("content type", mimeType))
	return nil
}

// handlerUnmarshalText decodes plain text bodies that carry JSON. Text that is not JSON can only be
// read into a *string, which HandleAPISuccessResponse handles before dispatch.
func handlerUnmarshalText(body []byte, out any, log logger.Logger, mimeType string) error {
	if json.Valid(body) {
		return handlerUnmarshalJSON(body, out, log, mimeType)
	}
	return log.Error("Response body is not JSON", zap.String("content type", mimeType), zap.String("body", truncate(string(body), 256)))
}

// handlerUnmarshalXML unmarshals XML content into the provided output structure.
func handlerUnmarshalXML(body []byte, out any, log logger.Logger, mimeType string) error {
	if err := xml.Unmarshal(body, out); err != nil {
		log.Error("XML Unmarshal error", zap.Error(err))
		return fmt.Errorf("failed to decode XML response: %w", err)
	}
	log.Debug("Successfully unmarshalled XML response", zap.String("content type", mimeType))
	return nil
}

// isBinaryData checks if the MIME type or Content-Disposition indicates binary data.
func isBinaryData(contentType, contentDisposition string) bool {
	return strings.Contains(contentType, "application/octet-stream") || strings.HasPrefix(contentDisposition, "attachment")
}

// handleBinaryData stores binary data in *[]byte or streams it to an io.Writer.
func handleBinaryData(reader io.Reader, log logger.Logger, out any, contentDisposition string) error {
	switch out := out.(type) {
	case *[]byte:
		data, err := io.ReadAll(reader)
		if err != nil {
			return log.Error("Failed to read binary data", zap.Error(err))
		}
		*out = data

	case io.Writer:
		if _, err := io.Copy(out, reader); err != nil {
			return log.Error("Failed to stream binary data to io.Writer", zap.Error(err))
		}

	default:
		return errors.New("output parameter is not suitable for binary data (*[]byte or io.Writer)")
	}

	if contentDisposition != "" {
		_, params := ParseContentDisposition(contentDisposition)
		if filename, ok := params["filename"]; ok {
			log.Debug("Extracted filename from Content-Disposition", zap.String("filename", filename))
		}
	}

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
