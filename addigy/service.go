// addigy/service.go
package addigy

import (
	"strconv"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// service is embedded by every Addigy service.
type service struct {
	client *httpclient.Client
	hosts  addigyapi.Hosts
}

// session authenticates an internal API request with the caller's auth_token cookie and the
// app-prod origin.
func (s service) session(authObject auth.AuthObject, opts ...httpclient.RequestOption) []httpclient.RequestOption {
	return append([]httpclient.RequestOption{
		httpclient.WithSessionCookie(authObject.AuthToken),
		httpclient.WithOrigin(s.hosts.AppProd),
	}, opts...)
}

// accountHeaders carries the e-mail and organisation id some internal endpoints read from headers.
func accountHeaders(authObject auth.AuthObject) []httpclient.RequestOption {
	return []httpclient.RequestOption{
		httpclient.WithHeader("email", authObject.EmailAddress),
		httpclient.WithHeader("orgid", authObject.OrgID),
	}
}

// paging returns the page and per_page query options, substituting defaults for values below 1.
func paging(page, perPage int) []httpclient.RequestOption {
	if page < 1 {
		page = defaultPage
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return []httpclient.RequestOption{
		httpclient.WithQueryParam("page", strconv.Itoa(page)),
		httpclient.WithQueryParam("per_page", strconv.Itoa(perPage)),
	}
}
