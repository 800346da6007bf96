// addigy/facts.go
package addigy

import (
	"context"
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/mdm"
)

// ScriptType is the interpreter of a custom fact script.
type ScriptType string

const (
	ScriptTypeBash   ScriptType = "bash"
	ScriptTypePython ScriptType = "python"
	ScriptTypeZsh    ScriptType = "zsh"
)

var shebangs = map[ScriptType]string{
	ScriptTypeBash:   "#!/bin/bash",
	ScriptTypePython: "#!/usr/bin/python",
	ScriptTypeZsh:    "#!/bin/zsh",
}

// Shebang returns the interpreter line written ahead of scripts of type t, or "" for an unknown type.
func (t ScriptType) Shebang() string {
	return shebangs[t]
}

// CustomFact is an organisation-defined fact collected by a script on each device.
type CustomFact struct {
	OrganizationID  string                    `json:"organization_id,omitempty"`
	Name            string                    `json:"name"`
	Identifier      string                    `json:"identifier,omitempty"`
	Version         int                       `json:"version,omitempty"`
	ReturnType      string                    `json:"return_type"`
	OSArchitectures CustomFactOSArchitectures `json:"os_architectures"`
	Notes           string                    `json:"notes,omitempty"`
	Provider        string                    `json:"provider,omitempty"`
	Source          string                    `json:"source,omitempty"`
}

// CustomFactOSArchitectures holds the script of a fact per platform.
type CustomFactOSArchitectures struct {
	LinuxArm    CustomFactScript `json:"linux_arm"`
	DarwinAmd64 CustomFactScript `json:"darwin_amd64"`
}

// CustomFactScript is the script run on one platform.
type CustomFactScript struct {
	IsSupported bool   `json:"is_supported"`
	Language    string `json:"language"`
	Shebang     string `json:"shebang"`
	Script      string `json:"script"`
	MD5Hash     string `json:"md5_hash,omitempty"`
}

type customFactList struct {
	CustomFacts []CustomFact `json:"custom_facts"`
}

// FactsService manages custom facts through the internal API.
type FactsService struct{ service }

func (s *FactsService) endpoint() string {
	return s.hosts.AppProd + "/api/services/facts/custom"
}

// CreateCustomFact creates a macOS fact called name that runs script with the interpreter of
// scriptType. Facts always return a string.
func (s *FactsService) CreateCustomFact(ctx context.Context, authObject auth.AuthObject, name, script string, scriptType ScriptType) (*CustomFact, error) {
	shebang := scriptType.Shebang()
	if shebang == "" {
		return nil, fmt.Errorf("unsupported script type %q, expected bash, python or zsh", scriptType)
	}

	body := CustomFact{
		Name:       name,
		ReturnType: "string",
		OSArchitectures: CustomFactOSArchitectures{
			DarwinAmd64: CustomFactScript{
				IsSupported: true,
				Language:    string(scriptType),
				Shebang:     shebang,
				Script:      script,
			},
		},
	}

	var out CustomFact
	if _, err := s.client.DoRequest(ctx, http.MethodPost, s.endpoint(), body, &out, s.session(authObject)...); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCustomFacts returns the organisation's custom facts.
func (s *FactsService) GetCustomFacts(ctx context.Context, authObject auth.AuthObject) ([]CustomFact, error) {
	var out customFactList
	if _, err := s.client.DoRequest(ctx, http.MethodGet, s.endpoint(), nil, &out, s.session(authObject)...); err != nil {
		return nil, err
	}
	if out.CustomFacts == nil {
		return []CustomFact{}, nil
	}
	return out.CustomFacts, nil
}

// GetCustomFactByName returns the custom fact called name, or a *mdm.NotFoundError.
func (s *FactsService) GetCustomFactByName(ctx context.Context, authObject auth.AuthObject, name string) (*CustomFact, error) {
	facts, err := s.GetCustomFacts(ctx, authObject)
	if err != nil {
		return nil, err
	}
	for i := range facts {
		if facts[i].Name == name {
			return &facts[i], nil
		}
	}
	return nil, &mdm.NotFoundError{Resource: "custom fact", Key: name}
}
