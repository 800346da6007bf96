package addigyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostsWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultHosts(), Hosts{}.WithDefaults())

	hosts := Hosts{App: "http://127.0.0.1:9000/"}.WithDefaults()
	assert.Equal(t, APIURL, hosts.API)
	assert.Equal(t, "http://127.0.0.1:9000", hosts.App)
	assert.Equal(t, AppProdURL, hosts.AppProd)
	assert.Equal(t, FileManagerURL, hosts.FileManager)

	hosts = Hosts{FileManager: "http://127.0.0.1:9100/"}.WithDefaults()
	assert.Equal(t, "http://127.0.0.1:9100", hosts.FileManager)
}

func TestHostsPublicAPIBaseURL(t *testing.T) {
	assert.Equal(t, DefaultPublicAPIBaseURL, Hosts{}.PublicAPIBaseURL())
	assert.Equal(t, "http://127.0.0.1:9000/api", Hosts{API: "http://127.0.0.1:9000"}.PublicAPIBaseURL())
}
