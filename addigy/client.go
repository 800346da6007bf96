// addigy/client.go
/* Package addigy is the entry point of the SDK. NewClient wires one shared transport into the public
API services, which authenticate with client credentials, and the internal services, which take an
auth.AuthObject obtained from Client.Auth. */
package addigy

import (
	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"github.com/deploymenttheory/go-api-sdk-addigy/identifier"
	"github.com/deploymenttheory/go-api-sdk-addigy/logger"
	"github.com/deploymenttheory/go-api-sdk-addigy/mdm"
)

// Client groups every Addigy service behind one transport.
type Client struct {
	HTTP *httpclient.Client
	Auth *auth.Service

	// Public API
	Alerts       *AlertsService
	Applications *ApplicationsService
	Commands     *CommandsService
	Devices      *DevicesService
	Files        *FilesService
	Maintenance  *MaintenanceService
	Policies     *PoliciesService
	Profiles     *ProfilesService
	Software     *SoftwareService

	// Internal API
	Billing           *BillingService
	Certs             *CertsService
	Facts             *FactsService
	FileVault         *FileVaultService
	Integrations      *IntegrationsService
	ScreenConnect     *ScreenConnectService
	Users             *UsersService
	MdmPolicies       *mdm.Policies
	MdmConfigurations *mdm.Configurations
}

// NewClient builds a Client from config. Unset transport options take their defaults and the logger
// is built from the logging options in config.HTTP.
func NewClient(config Config) (*Client, error) {
	return NewClientWithLogger(config, nil)
}

// NewClientWithLogger builds a Client that logs through log. A nil log is built from config.HTTP.
func NewClientWithLogger(config Config, log logger.Logger) (*Client, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	hosts := config.Hosts.WithDefaults()
	integration := &addigyapi.Integration{
		BaseDomain:   hosts.PublicAPIBaseURL(),
		ClientID:     config.ClientID,
		ClientSecret: config.ClientSecret,
	}
	httpConfig := config.HTTP
	httpConfig.Integration = integration

	httpClient, err := httpclient.BuildClientWithLogger(httpConfig, log, true)
	if err != nil {
		return nil, err
	}
	log = httpClient.Logger
	integration.Logger = log

	public := service{client: httpClient, hosts: hosts}
	builder := mdm.NewBuilder(identifier.Default)

	return &Client{
		HTTP: httpClient,
		Auth: auth.NewService(httpClient, hosts, config.AdminUsername, config.AdminPassword),

		Alerts:       &AlertsService{public},
		Applications: &ApplicationsService{public},
		Commands:     &CommandsService{public},
		Devices:      &DevicesService{public},
		Files:        &FilesService{service: public, clientID: config.ClientID, clientSecret: config.ClientSecret},
		Maintenance:  &MaintenanceService{public},
		Policies:     &PoliciesService{public},
		Profiles:     &ProfilesService{public},
		Software:     &SoftwareService{public},

		Billing:           &BillingService{public},
		Certs:             &CertsService{public},
		Facts:             &FactsService{public},
		FileVault:         &FileVaultService{public},
		Integrations:      &IntegrationsService{public},
		ScreenConnect:     &ScreenConnectService{public},
		Users:             &UsersService{public},
		MdmPolicies:       mdm.NewPolicies(builder, mdm.NewGateway(httpClient, hosts), log),
		MdmConfigurations: mdm.NewConfigurations(httpClient, hosts),
	}, nil
}
