// response/error.go
// This package provides utility functions and structures for decoding Addigy API responses.
package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/deploymenttheory/go-api-sdk-addigy/status"
	"golang.org/x/net/html"
)

// APIError represents an api error response.
type APIError struct {
	StatusCode    int      `json:"status_code"`              // HTTP status code
	Method        string   `json:"method"`                   // HTTP method used for the request
	URL           string   `json:"url"`                      // The URL of the HTTP request
	StatusMessage string   `json:"status_message,omitempty"` // Human-readable translation of the status code
	Message       string   `json:"message"`                  // Summary of the error
	Details       []string `json:"details,omitempty"`        // Detailed error messages, if any
	RawResponse   string   `json:"raw_response"`             // Raw response body for debugging
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	data, err := json.Marshal(e)
	if err == nil {
		return string(data)
	}

	if e.Message == "" {
		e.Message = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("API Error: StatusCode=%d, Message=%s", e.StatusCode, e.Message)
}

// HandleAPIErrorResponse reads a non-2xx response, extracts what it can from the body according to its
// content type and logs the failure.
func HandleAPIErrorResponse(resp *http.Response, log logger.Logger) *APIError {
	apiError := &APIError{
		StatusCode:    resp.StatusCode,
		StatusMessage: status.TranslateStatusCode(resp),
		Message:       "API Error Response",
	}
	if resp.Request != nil {
		apiError.Method = resp.Request.Method
		if resp.Request.URL != nil {
			apiError.URL = resp.Request.URL.String()
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		apiError.RawResponse = "Failed to read response body"
		log.LogError("api_error_response", apiError.Method, apiError.URL, apiError.StatusCode, apiError.StatusMessage, err, apiError.RawResponse)
		return apiError
	}

	mimeType, _ := parseHeader(resp.Header.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(bodyBytes, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(bodyBytes, apiError)
	case "text/html":
		parseHTMLResponse(bodyBytes, apiError)
	case "text/plain", "":
		parseTextResponse(bodyBytes, apiError)
	default:
		apiError.RawResponse = string(bodyBytes)
		apiError.Message = "Unknown content type error"
	}

	log.LogError("api_error_response", apiError.Method, apiError.URL, apiError.StatusCode, apiError.StatusMessage, errors.New(apiError.Message), apiError.RawResponse)
	return apiError
}

// jsonErrorBody covers the error shapes returned by the public and internal APIs.
type jsonErrorBody struct {
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Errors  []interface{}   `json:"errors"`
}

// parseJSONResponse pulls the message from "message" or "error" (a string or an object with a message)
// and collects "errors" entries as details.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	var body jsonErrorBody
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return
	}

	message := body.Message
	if message == "" && len(body.Error) > 0 {
		var text string
		var nested struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body.Error, &text) == nil {
			message = text
		} else if json.Unmarshal(body.Error, &nested) == nil {
			message = nested.Message
		}
	}
	if message == "" {
		message = "An unknown error occurred"
	}
	apiError.Message = message

	for _, entry := range body.Errors {
		switch v := entry.(type) {
		case string:
			apiError.Details = append(apiError.Details, v)
		default:
			encoded, err := json.Marshal(v)
			if err == nil {
				apiError.Details = append(apiError.Details, string(encoded))
			}
		}
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = "Failed to extract error details from XML response"
	}
}

// parseTextResponse uses a plain text body as the error message.
func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	bodyText := string(bodyBytes)
	apiError.RawResponse = bodyText
	if trimmed := strings.TrimSpace(bodyText); trimmed != "" {
		apiError.Message = trimmed
	}
}

// parseHTMLResponse extracts meaningful information from an HTML error response, such as the sign-in
// page the internal API serves when a session cookie has expired. Text within <p> tags is collected,
// links are kept as [Link: href], and the <title> is used when no paragraph has content.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var title string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
		}
		if n.Type == html.ElementNode && n.Data == "p" {
			var pContent strings.Builder
			var traverseChildren func(*html.Node)
			traverseChildren = func(c *html.Node) {
				if c.Type == html.TextNode {
					pContent.WriteString(strings.TrimSpace(c.Data) + " ")
				} else if c.Type == html.ElementNode && c.Data == "a" {
					for _, attr := range c.Attr {
						if attr.Key == "href" {
							pContent.WriteString("[Link: " + attr.Val + "] ")
							break
						}
					}
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					traverseChildren(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				traverseChildren(child)
			}
			if finalContent := strings.TrimSpace(pContent.String()); finalContent != "" {
				messages = append(messages, finalContent)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	switch {
	case len(messages) > 0:
		apiError.Message = strings.Join(messages, "; ")
	case title != "":
		apiError.Message = title
	default:
		apiError.Message = "HTML Error: See 'raw_response' field for details."
	}
}
