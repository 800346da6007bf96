// auth/auth.go
/* Package auth signs in to Addigy's internal API. The internal endpoints are the ones the Addigy web
app uses; they authenticate with an auth_token session cookie rather than API client credentials,
so every internal call needs an AuthObject obtained here. */
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-addigy/apiintegrations/addigyapi"
	"github.com/deploymenttheory/go-api-sdk-addigy/cookiejar"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"go.uber.org/zap"
)

// AuthObject packages the session token with the organisation id and e-mail address that several
// internal endpoints also expect.
type AuthObject struct {
	OrgID        string `json:"org_id"`
	AuthToken    string `json:"auth_token"`
	EmailAddress string `json:"email_address"`
}

// ConfigurationError reports missing settings detected before any request is sent.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
}

// Service performs sign-in and impersonation against the internal API.
type Service struct {
	client   *httpclient.Client
	hosts    addigyapi.Hosts
	username string
	password string
}

// NewService returns a Service that signs in with the given admin credentials.
func NewService(client *httpclient.Client, hosts addigyapi.Hosts, username, password string) *Service {
	return &Service{
		client:   client,
		hosts:    hosts.WithDefaults(),
		username: username,
		password: password,
	}
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signinResponse struct {
	OrgID     string `json:"orgid"`
	AuthToken string `json:"authtoken"`
	Email     string `json:"email"`
}

// GetAuthObject signs in with the admin credentials and returns the session. A *ConfigurationError is
// returned, without contacting Addigy, when either credential is empty.
func (s *Service) GetAuthObject(ctx context.Context) (AuthObject, error) {
	var missing []string
	if s.username == "" {
		missing = append(missing, "admin username")
	}
	if s.password == "" {
		missing = append(missing, "admin password")
	}
	if len(missing) > 0 {
		return AuthObject{}, &ConfigurationError{Missing: missing}
	}

	var out signinResponse
	endpoint := s.hosts.API + "/signin"
	if _, err := s.client.DoRequest(ctx, http.MethodPost, endpoint, signinRequest{Username: s.username, Password: s.password}, &out); err != nil {
		return AuthObject{}, fmt.Errorf("sign-in failed: %w", err)
	}

	s.client.Logger.Info("Signed in to the Addigy internal API", zap.String("org_id", out.OrgID))

	return AuthObject{
		OrgID:        out.OrgID,
		AuthToken:    out.AuthToken,
		EmailAddress: out.Email,
	}, nil
}

type impersonationRequest struct {
	ParentOrgID string `json:"parent_orgid"`
	ChildOrgID  string `json:"child_orgid"`
	UserEmail   string `json:"user_email"`
}

// GetImpersonationAuthObject switches parent's session to the child organisation orgID. The new
// token is read from the prod_auth_token cookie set by the response; the returned AuthObject keeps
// the parent's e-mail address.
func (s *Service) GetImpersonationAuthObject(ctx context.Context, parent AuthObject, orgID string) (AuthObject, error) {
	body := impersonationRequest{
		ParentOrgID: parent.OrgID,
		ChildOrgID:  orgID,
		UserEmail:   parent.EmailAddress,
	}

	resp, err := s.client.DoRequest(ctx, http.MethodPost, s.hosts.App+"/api/impersonation", body, nil,
		httpclient.WithNamedSessionCookie(cookiejar.ParentSessionCookieName, parent.AuthToken),
		httpclient.WithOrigin(s.hosts.App),
	)
	if err != nil {
		return AuthObject{}, fmt.Errorf("impersonation of org %s failed: %w", orgID, err)
	}

	token, err := cookiejar.ExtractImpersonationToken(resp.Header.Values("Set-Cookie"))
	if err != nil {
		return AuthObject{}, fmt.Errorf("impersonation of org %s failed: %w", orgID, err)
	}

	s.client.Logger.Info("Impersonating organisation", zap.String("parent_org_id", parent.OrgID), zap.String("org_id", orgID))

	return AuthObject{
		OrgID:        orgID,
		AuthToken:    token,
		EmailAddress: parent.EmailAddress,
	}, nil
}
