// httpclient/client.go
/* The httpclient package provides the configurable HTTP transport shared by every Addigy service.
A Client is built once from a ClientConfig and an APIIntegration and is safe for concurrent use.
It resolves endpoints against the integration's base URL (or accepts absolute URLs for the internal
hosts), encodes JSON or form bodies, attaches credentials, session cookies and origin headers,
and decodes success and error responses. Requests are sent exactly once. */
package httpclient

import (
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/cookiejar"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/deploymenttheory/go-api-sdk-addigy/proxy"
	"github.com/deploymenttheory/go-api-sdk-addigy/redirecthandler"
	"go.uber.org/zap"
)

// Client is the transport collaborator used by the services.
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client

	// Exported
	Logger      logger.Logger
	Integration APIIntegration
}

// BuildClient creates a new HTTP client with the provided configuration. When populateDefaultValues is
// set, unset options are filled from the Default* constants before validation.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	return BuildClientWithLogger(config, nil, populateDefaultValues)
}

// BuildClientWithLogger is BuildClient for callers that already own a Logger, such as tests.
// A nil log builds one from the logging options in config.
func BuildClientWithLogger(config ClientConfig, log logger.Logger, populateDefaultValues bool) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}

	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	//region Logging
	if log == nil {
		parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
		log = logger.BuildLogger(parsedLogLevel, config.LogOutputFormat, config.LogConsoleSeparator, config.LogExportPath)
	}
	//endregion

	return buildClient(config, log)
}

func buildClient(config ClientConfig, log logger.Logger) (*Client, error) {
	//region HTTP
	log.Info("initializing new http client", zap.String("domain", config.Integration.Domain()))

	httpClient := &http.Client{
		Timeout: config.CustomTimeout.Duration(),
	}
	//endregion

	//region Cookies
	if err := cookiejar.SetupCookieJar(httpClient, config.CookieJarEnabled, log); err != nil {
		return nil, err
	}
	//endregion

	//region Redirect
	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		log.Error("Failed to set up redirect handler", zap.Error(err))
		return nil, err
	}
	//endregion

	//region Proxy
	if err := proxy.InitializeProxy(httpClient, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, config.ProxyAuthToken, log); err != nil {
		return nil, err
	}
	//endregion

	client := &Client{
		config:      config,
		http:        httpClient,
		Logger:      log,
		Integration: config.Integration,
	}

	log.Debug("New API client initialized",
		zap.String("Authentication Method", config.Integration.GetAuthMethodDescriptor()),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.String("Log Separator", config.LogConsoleSeparator),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Bool("Cookie Jar Enabled", config.CookieJarEnabled),
		zap.Int("Custom Cookies", len(config.CustomCookies)),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Custom Timeout", config.CustomTimeout.Duration()),
		zap.Bool("Proxy Configured", config.ProxyURL != ""),
	)

	return client, nil
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.config
}
