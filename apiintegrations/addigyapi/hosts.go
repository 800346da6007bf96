package addigyapi

import "strings"

// Hosts holds the base URLs of the Addigy hosts. Tests point every field at one httptest server.
type Hosts struct {
	API         string `json:"api" yaml:"api"`
	App         string `json:"app" yaml:"app"`
	AppProd     string `json:"app_prod" yaml:"app_prod"`
	FileManager string `json:"file_manager" yaml:"file_manager"`
}

// DefaultHosts returns the production hosts.
func DefaultHosts() Hosts {
	return Hosts{API: APIURL, App: AppURL, AppProd: AppProdURL, FileManager: FileManagerURL}
}

// WithDefaults fills empty fields with the production hosts and trims trailing slashes.
func (h Hosts) WithDefaults() Hosts {
	defaults := DefaultHosts()
	if h.API == "" {
		h.API = defaults.API
	}
	if h.App == "" {
		h.App = defaults.App
	}
	if h.AppProd == "" {
		h.AppProd = defaults.AppProd
	}
	if h.FileManager == "" {
		h.FileManager = defaults.FileManager
	}
	h.API = strings.TrimRight(h.API, "/")
	h.App = strings.TrimRight(h.App, "/")
	h.AppProd = strings.TrimRight(h.AppProd, "/")
	h.FileManager = strings.TrimRight(h.FileManager, "/")
	return h
}

// PublicAPIBaseURL returns the base URL of the public REST API on the API host.
func (h Hosts) PublicAPIBaseURL() string {
	return h.WithDefaults().API + "/api"
}
