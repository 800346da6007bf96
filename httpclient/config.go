// httpclient/config.go
// Description: ClientConfig and the functions that load it from a JSON or YAML file or from
// environment variables.
package httpclient

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel            = "LogLevelInfo"
	DefaultLogOutputFormat     = logger.LogOutputJSON
	DefaultLogConsoleSeparator = "  "
	DefaultTimeout             = Duration(30 * time.Second)
	DefaultMaxRedirects        = 10
	EnvPrefix                  = "ADDIGY_"
)

// ClientConfig holds the transport options. Integration is supplied in code; everything else can be
// loaded from a file or the environment.
type ClientConfig struct {
	Integration APIIntegration `json:"-" yaml:"-"`

	// Log
	LogLevel            string `json:"log_level" yaml:"log_level"`                         // LogLevelDebug ... LogLevelFatal
	LogOutputFormat     string `json:"log_output_format" yaml:"log_output_format"`         // "json" or "pretty"
	LogConsoleSeparator string `json:"log_console_separator" yaml:"log_console_separator"` // separator for "pretty" output
	LogExportPath       string `json:"log_export_path" yaml:"log_export_path"`             // optional file receiving a copy of the logs
	HideSensitiveData   bool   `json:"hide_sensitive_data" yaml:"hide_sensitive_data"`

	// Cookies
	CookieJarEnabled bool              `json:"cookie_jar_enabled" yaml:"cookie_jar_enabled"`
	CustomCookies    map[string]string `json:"custom_cookies" yaml:"custom_cookies"`

	// Misc
	CustomTimeout   Duration `json:"custom_timeout" yaml:"custom_timeout"`
	FollowRedirects bool     `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects    int      `json:"max_redirects" yaml:"max_redirects"`

	// Proxy
	ProxyURL       string `json:"proxy_url" yaml:"proxy_url"`
	ProxyUsername  string `json:"proxy_username" yaml:"proxy_username"`
	ProxyPassword  string `json:"proxy_password" yaml:"proxy_password"`
	ProxyAuthToken string `json:"proxy_auth_token" yaml:"proxy_auth_token"`
}

// Duration is a time.Duration that reads "30s" style strings or nanosecond integers from JSON and YAML.
type Duration time.Duration

// Duration returns d as a time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// String implements fmt.Stringer.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// MarshalJSON encodes d as a duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(data))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration at line %d: expected a scalar", value.Line)
	}
	if nanoseconds, err := strconv.ParseInt(value.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(nanoseconds))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration at line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// SetDefaultValuesClientConfig fills unset options with the Default* values. Redirect following is
// left as configured; MaxRedirects only defaults when redirects are followed.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevel
	}
	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormat
	}
	if config.LogConsoleSeparator == "" {
		config.LogConsoleSeparator = DefaultLogConsoleSeparator
	}
	if config.CustomTimeout <= 0 {
		config.CustomTimeout = DefaultTimeout
	}
	if config.FollowRedirects && config.MaxRedirects <= 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}

// LoadConfigFromFile loads configuration values from a JSON or YAML file, chosen by extension
// (.json, .yaml or .yml), into a ClientConfig. Defaults are not applied.
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	cleanPath, err := validateFilePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to clean/validate filepath (%s): %w", path, err)
	}

	fileBytes, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read the configuration file: %s, error: %w", cleanPath, err)
	}

	var config ClientConfig
	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(fileBytes, &config)
	default:
		err = json.Unmarshal(fileBytes, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal the configuration file: %s, error: %w", cleanPath, err)
	}

	return &config, nil
}

// LoadConfigFromEnv overlays ADDIGY_* environment variables onto config (a new one when nil).
// Unset variables keep the existing value; malformed numbers, booleans and durations are errors.
func LoadConfigFromEnv(config *ClientConfig) (*ClientConfig, error) {
	if config == nil {
		config = &ClientConfig{}
	}

	// Logging
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)
	config.LogOutputFormat = getEnvOrDefault("LOG_OUTPUT_FORMAT", config.LogOutputFormat)
	config.LogConsoleSeparator = getEnvOrDefault("LOG_CONSOLE_SEPARATOR", config.LogConsoleSeparator)
	config.LogExportPath = getEnvOrDefault("LOG_EXPORT_PATH", config.LogExportPath)

	var err error
	if config.HideSensitiveData, err = parseBoolEnv("HIDE_SENSITIVE_DATA", config.HideSensitiveData); err != nil {
		return nil, err
	}

	// Cookies
	if config.CookieJarEnabled, err = parseBoolEnv("COOKIE_JAR_ENABLED", config.CookieJarEnabled); err != nil {
		return nil, err
	}
	if cookieStr := getEnvOrDefault("CUSTOM_COOKIES", ""); cookieStr != "" {
		config.CustomCookies = parseCookiesFromString(cookieStr)
	}

	// Timeouts and redirects
	if value, ok := os.LookupEnv(EnvPrefix + "CUSTOM_TIMEOUT"); ok {
		parsed, parseErr := time.ParseDuration(value)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid %sCUSTOM_TIMEOUT: %w", EnvPrefix, parseErr)
		}
		config.CustomTimeout = Duration(parsed)
	}
	if config.FollowRedirects, err = parseBoolEnv("FOLLOW_REDIRECTS", config.FollowRedirects); err != nil {
		return nil, err
	}
	if config.MaxRedirects, err = parseIntEnv("MAX_REDIRECTS", config.MaxRedirects); err != nil {
		return nil, err
	}

	// Proxy
	config.ProxyURL = getEnvOrDefault("PROXY_URL", config.ProxyURL)
	config.ProxyUsername = getEnvOrDefault("PROXY_USERNAME", config.ProxyUsername)
	config.ProxyPassword = getEnvOrDefault("PROXY_PASSWORD", config.ProxyPassword)
	config.ProxyAuthToken = getEnvOrDefault("PROXY_AUTH_TOKEN", config.ProxyAuthToken)

	return config, nil
}

// getEnvOrDefault returns the ADDIGY_-prefixed variable envKey, or defaultValue when unset.
func getEnvOrDefault(envKey string, defaultValue string) string {
	if value, exists := os.LookupEnv(EnvPrefix + envKey); exists {
		return value
	}
	return defaultValue
}

func parseBoolEnv(envKey string, current bool) (bool, error) {
	value, ok := os.LookupEnv(EnvPrefix + envKey)
	if !ok {
		return current, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return current, fmt.Errorf("invalid %s%s: %w", EnvPrefix, envKey, err)
	}
	return parsed, nil
}

func parseIntEnv(envKey string, current int) (int, error) {
	value, ok := os.LookupEnv(EnvPrefix + envKey)
	if !ok {
		return current, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return current, fmt.Errorf("invalid %s%s: %w", EnvPrefix, envKey, err)
	}
	return parsed, nil
}

// parseCookiesFromString parses a semi-colon separated string of key=value pairs into a map.
func parseCookiesFromString(cookieStr string) map[string]string {
	cookies := make(map[string]string)
	for _, pair := range strings.Split(cookieStr, ";") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			cookies[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return cookies
}
