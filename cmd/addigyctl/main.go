// addigyctl is a small command line front end to the Addigy SDK.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/addigy"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
)

const defaultLogLevel = "LogLevelError"

var errUsage = errors.New("usage: addigyctl [-config file] <devices|alerts|policies|facts|users|mdm> [flags]")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes one command and writes its JSON result to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("addigyctl", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	configPath := global.String("config", envOr("ADDIGY_CONFIG", ""), "json or yaml config file")
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() < 1 {
		return errUsage
	}

	client, err := newClient(*configPath)
	if err != nil {
		return err
	}

	cmd, rest := global.Arg(0), global.Args()[1:]
	var result interface{}
	switch cmd {
	case "devices":
		result, err = runDevicesCmd(ctx, client, rest)
	case "alerts":
		result, err = runAlertsCmd(ctx, client, rest)
	case "policies":
		result, err = client.Policies.GetPolicies(ctx)
	case "facts":
		result, err = withAuth(ctx, client, func(authObject auth.AuthObject) (interface{}, error) {
			return client.Facts.GetCustomFacts(ctx, authObject)
		})
	case "users":
		result, err = withAuth(ctx, client, func(authObject auth.AuthObject) (interface{}, error) {
			return client.Users.GetUsers(ctx, authObject)
		})
	case "mdm":
		result, err = runMdmCmd(ctx, client, rest)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}
	return printJSON(stdout, result)
}

// newClient loads the config file, when given, and overlays the ADDIGY_* environment.
func newClient(configPath string) (*addigy.Client, error) {
	config := &addigy.Config{}
	if configPath != "" {
		loaded, err := addigy.LoadConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	config, err := addigy.LoadConfigFromEnv(config)
	if err != nil {
		return nil, err
	}
	if config.HTTP.LogLevel == "" {
		config.HTTP.LogLevel = defaultLogLevel
	}
	return addigy.NewClient(*config)
}

func withAuth(ctx context.Context, client *addigy.Client, fn func(auth.AuthObject) (interface{}, error)) (interface{}, error) {
	authObject, err := client.Auth.GetAuthObject(ctx)
	if err != nil {
		return nil, err
	}
	return fn(authObject)
}

func runDevicesCmd(ctx context.Context, client *addigy.Client, args []string) (interface{}, error) {
	fs := newFlagSet("devices")
	online := fs.Bool("online", false, "only devices currently online")
	policyID := fs.String("policy", "", "only devices in this policy")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case *online:
		return client.Devices.GetOnlineDevices(ctx)
	case *policyID != "":
		return client.Devices.GetPolicyDevices(ctx, *policyID)
	default:
		return client.Devices.GetDevices(ctx)
	}
}

func runAlertsCmd(ctx context.Context, client *addigy.Client, args []string) (interface{}, error) {
	fs := newFlagSet("alerts")
	status := fs.String("status", "", "Acknowledged, Resolved or Unattended")
	page := fs.Int("page", 1, "page number")
	perPage := fs.Int("per-page", 10, "alerts per page")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return client.Alerts.GetAlerts(ctx, addigy.AlertStatus(*status), *page, *perPage)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
