package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/deploymenttheory/go-api-sdk-addigy/addigy"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/mdm"
)

var errMdmUsage = errors.New("usage: addigyctl mdm <configurations|kext|filevault|custom-profile|submit> [flags]")

func runMdmCmd(ctx context.Context, client *addigy.Client, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, errMdmUsage
	}

	var action func(auth.AuthObject) (interface{}, error)
	fs := newFlagSet("mdm " + args[0])
	switch args[0] {
	case "configurations":
		name := fs.String("name", "", "return only the configuration with this name")
		action = func(authObject auth.AuthObject) (interface{}, error) {
			if *name != "" {
				return client.MdmConfigurations.GetMdmConfigurationByName(ctx, authObject, *name)
			}
			return client.MdmConfigurations.GetMdmConfigurations(ctx, authObject)
		}
	case "kext":
		name := fs.String("name", "", "policy display name")
		overrides := fs.Bool("allow-overrides", false, "let users approve other kernel extensions")
		var teams stringList
		fs.Var(&teams, "team-id", "allowed team identifier (repeatable)")
		action = func(authObject auth.AuthObject) (interface{}, error) {
			return client.MdmPolicies.CreateKernelExtensionPolicy(ctx, authObject, *name, mdm.KernelExtensionInput{
				AllowUserOverrides:     *overrides,
				AllowedTeamIdentifiers: teams,
			})
		}
	case "filevault":
		name := fs.String("name", "", "policy display name")
		enable := fs.Bool("enable", true, "turn FileVault on")
		deferEnable := fs.Bool("defer", false, "defer enablement to the next logout")
		escrow := fs.Bool("escrow", false, "escrow the personal recovery key in Addigy")
		action = func(authObject auth.AuthObject) (interface{}, error) {
			return client.MdmPolicies.CreateFileVaultPolicy(ctx, authObject, *name, mdm.FileVaultInput{
				Enable:            *enable,
				Defer:             *deferEnable,
				EscrowRecoveryKey: *escrow,
			})
		}
	case "custom-profile":
		name := fs.String("name", "", "policy display name")
		file := fs.String("file", "", ".mobileconfig file")
		userScope := fs.Bool("user", false, "install in the user scope")
		signed := fs.Bool("signed", false, "the profile is signed")
		action = func(authObject auth.AuthObject) (interface{}, error) {
			data, err := os.ReadFile(filepath.Clean(*file))
			if err != nil {
				return nil, err
			}
			scope := mdm.ScopeSystem
			if *userScope {
				scope = mdm.ScopeUser
			}
			return client.MdmPolicies.CreateCustomProfile(ctx, authObject, *name, mdm.CustomProfileInput{
				ProfileBase64: base64.StdEncoding.EncodeToString(data),
				Scope:         scope,
				Signed:        *signed,
			})
		}
	case "submit":
		file := fs.String("file", "", "json file holding a payload array")
		action = func(authObject auth.AuthObject) (interface{}, error) {
			data, err := os.ReadFile(filepath.Clean(*file))
			if err != nil {
				return nil, err
			}
			return client.MdmPolicies.CreateMdmProfile(ctx, authObject, json.RawMessage(data))
		}
	default:
		return nil, errMdmUsage
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return withAuth(ctx, client, action)
}
