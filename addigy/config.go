// addigy/config.go
package addigy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"gopkg.in/yaml.v3"
)

// Config holds the credentials and transport options of a Client.
type Config struct {
	// ClientID and ClientSecret authenticate the public API.
	ClientID     string `json:"client_id" yaml:"client_id"`
	ClientSecret string `json:"client_secret" yaml:"client_secret"`
	// AdminUsername and AdminPassword belong to an owner or power user and are only needed for the
	// internal API.
	AdminUsername string `json:"admin_username,omitempty" yaml:"admin_username,omitempty"`
	AdminPassword string `json:"admin_password,omitempty" yaml:"admin_password,omitempty"`

	Hosts addigyapi.Hosts         `json:"hosts" yaml:"hosts"`
	HTTP  httpclient.ClientConfig `json:"http" yaml:"http"`
}

func (c Config) validate() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client_id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client_secret")
	}
	if len(missing) > 0 {
		return &auth.ConfigurationError{Missing: missing}
	}
	return nil
}

// LoadConfigFromFile reads a Config from a .json, .yaml or .yml file.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", path, err)
	}
	return &config, nil
}

// LoadConfigFromEnv overlays ADDIGY_CLIENT_ID, ADDIGY_CLIENT_SECRET, ADDIGY_ADMIN_USERNAME,
// ADDIGY_ADMIN_PASSWORD and the transport variables read by httpclient.LoadConfigFromEnv onto config.
func LoadConfigFromEnv(config *Config) (*Config, error) {
	if config == nil {
		config = &Config{}
	}

	overlay := map[string]*string{
		httpclient.EnvPrefix + "CLIENT_ID":      &config.ClientID,
		httpclient.EnvPrefix + "CLIENT_SECRET":  &config.ClientSecret,
		httpclient.EnvPrefix + "ADMIN_USERNAME": &config.AdminUsername,
		httpclient.EnvPrefix + "ADMIN_PASSWORD": &config.AdminPassword,
	}
	for name, target := range overlay {
		if value, ok := os.LookupEnv(name); ok {
			*target = value
		}
	}

	if _, err := httpclient.LoadConfigFromEnv(&config.HTTP); err != nil {
		return nil, err
	}
	return config, nil
}
