// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-addigy/cookiejar"
	"github.com/deploymenttheory/go-api-sdk-addigy/headers"
	"github.com/deploymenttheory/go-api-sdk-addigy/headers/redact"
	"github.com/deploymenttheory/go-api-sdk-addigy/response"
	"github.com/deploymenttheory/go-api-sdk-addigy/status"
	"github.com/deploymenttheory/go-api-sdk-addigy/version"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DoRequest sends one HTTP request and decodes the response into out.
//
// endpoint is either relative to the integration's Domain() or an absolute http(s) URL, which the
// internal API calls use to reach the app hosts. body is marshalled by the integration unless
// WithFormBody supplies a form. Requests are sent exactly once, whatever the method.
//
// A 2xx response is decoded into out (nil discards the body). Any other status, including an
// unfollowed redirect, returns a *response.APIError. Transport failures are returned wrapped, so
// errors.Is(err, context.Canceled) and similar checks work. The returned response's body has
// already been consumed and closed.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, body, out interface{}, opts ...RequestOption) (*http.Response, error) {
	log := c.Logger

	if !IsSupportedHTTPMethod(method) {
		return nil, log.Error("HTTP method not supported", zap.String("method", method))
	}

	options := &requestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	requestURL, err := c.resolveURL(endpoint, options.query)
	if err != nil {
		log.Error("Failed to build request URL", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	//region Body
	var requestData []byte
	contentType := ""
	if options.form != nil {
		requestData = []byte(options.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	} else if body != nil {
		requestData, err = c.Integration.MarshalRequest(body, method, endpoint)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		contentType = c.Integration.GetContentTypeHeader(method)
		if contentType == "" {
			contentType = "application/json"
		}
	}

	var bodyReader io.Reader
	if requestData != nil {
		bodyReader = bytes.NewReader(requestData)
	}
	//endregion

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, log.Error("Failed to create request", zap.String("url", requestURL), zap.Error(err))
	}

	//region Headers
	headerHandler := headers.NewHeaderHandler(req, log)
	headerHandler.SetAccept(c.Integration.GetAcceptHeader())
	headerHandler.SetUserAgent(version.GetUserAgentHeader())
	if contentType != "" {
		headerHandler.SetContentType(contentType)
	}
	c.Integration.SetRequestHeaders(req)
	if options.sessionCookie != "" {
		headerHandler.SetSessionCookie(options.sessionCookie, options.sessionToken)
	}
	if options.origin != "" {
		headerHandler.SetOrigin(options.origin)
	}
	headerHandler.SetRequestHeaders(options.headers)
	cookiejar.ApplyCustomCookies(req, c.config.CustomCookies)
	headerHandler.LogHeaders(c.config.HideSensitiveData)
	//endregion

	requestID := uuid.NewString()
	log.LogRequestStart("request_start", requestID, method, requestURL, redact.RedactHeaders(c.config.HideSensitiveData, req.Header))
	log.LogCookies("outgoing", req, method, requestURL)

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.LogError("request_error", method, requestURL, 0, status.TranslateStatusCode(nil), err, "")
		return nil, fmt.Errorf("%s %s: %w", method, requestURL, err)
	}
	defer resp.Body.Close()

	log.LogRequestEnd("request_end", method, requestURL, resp.StatusCode, time.Since(startTime))
	log.LogCookies("incoming", resp, method, requestURL)
	headers.CheckDeprecationHeader(resp, log)

	if status.IsSuccessStatusCode(resp.StatusCode) {
		return resp, response.HandleAPISuccessResponse(resp, out, log)
	}

	if status.IsRedirectStatusCode(resp.StatusCode) {
		log.Warn("Redirect response received and not followed", zap.Int("status_code", resp.StatusCode), zap.String("location", resp.Header.Get("Location")))
	}

	return resp, response.HandleAPIErrorResponse(resp, log)
}

// resolveURL joins relative endpoints onto the integration's domain and merges query values.
func (c *Client) resolveURL(endpoint string, query url.Values) (string, error) {
	raw := endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		raw = c.Integration.Domain() + "/" + strings.TrimLeft(endpoint, "/")
	}

	target, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	if len(query) > 0 {
		values := target.Query()
		for key, vs := range query {
			for _, v := range vs {
				values.Add(key, v)
			}
		}
		target.RawQuery = values.Encode()
	}

	return target.String(), nil
}
