// httpclient/config_validation.go
package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
)

// validateClientConfig checks the configuration after defaults have been applied.
func validateClientConfig(config ClientConfig) error {
	if config.Integration == nil {
		return errors.New("no api integration supplied")
	}

	if _, err := url.ParseRequestURI(config.Integration.Domain()); err != nil {
		return fmt.Errorf("invalid api integration domain %q: %w", config.Integration.Domain(), err)
	}

	if config.LogLevel != "" && logger.ParseLogLevelFromString(config.LogLevel) == logger.LogLevelNone && config.LogLevel != "LogLevelNone" {
		return fmt.Errorf("invalid log level: %s", config.LogLevel)
	}

	switch config.LogOutputFormat {
	case "", logger.LogOutputJSON, logger.LogOutputPretty:
	default:
		return fmt.Errorf("invalid log output format: %s, expected %q or %q", config.LogOutputFormat, logger.LogOutputJSON, logger.LogOutputPretty)
	}

	if config.CustomTimeout < 0 {
		return errors.New("timeout cannot be negative")
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return errors.New("max redirects must be at least 1 when following redirects")
	}

	if config.ProxyURL != "" {
		if _, err := url.ParseRequestURI(config.ProxyURL); err != nil {
			return fmt.Errorf("invalid proxy url: %w", err)
		}
	}

	return nil
}

// validateFilePath cleans path, rejects traversal and checks the extension is one LoadConfigFromFile reads.
func validateFilePath(path string) (string, error) {
	cleanPath := filepath.Clean(path)

	absPath, err := filepath.EvalSymlinks(cleanPath)
	if err != nil {
		return "", fmt.Errorf("unable to resolve the absolute path of the configuration file: %s, error: %w", path, err)
	}

	if strings.Contains(absPath, "..") {
		return "", fmt.Errorf("invalid path, path traversal patterns detected: %s", path)
	}

	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".json", ".yaml", ".yml":
	default:
		return "", fmt.Errorf("invalid file extension for configuration file: %s, expected .json, .yaml or .yml", path)
	}

	return absPath, nil
}
