// addigy/users.go
package addigy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-addigy/auth"
	"github.com/deploymenttheory/go-api-sdk-addigy/httpclient"
	"github.com/deploymenttheory/go-api-sdk-addigy/mdm"
)

// UserRole is the access level of an Addigy user.
type UserRole string

const (
	UserRolePower UserRole = "power"
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// User is an account member.
type User struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Role     UserRole `json:"role"`
	Policies []string `json:"policies,omitempty"`
}

// UserInput describes a user to create or update. Phone is only sent when set.
type UserInput struct {
	Email    string
	Name     string
	Policies []string
	Role     UserRole
	Phone    *string
}

type createUserRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Policies []string `json:"policies"`
	Role     UserRole `json:"role"`
	Phone    *string  `json:"phone,omitempty"`
}

// updateUserRequest must carry blank uid and addigy_role fields or the update is rejected.
type updateUserRequest struct {
	ID                   string   `json:"id"`
	UID                  string   `json:"uid"`
	Name                 string   `json:"name"`
	AuthanvilTFAUsername string   `json:"authanvil_tfa_username"`
	Email                string   `json:"email"`
	Phone                string   `json:"phone"`
	Role                 UserRole `json:"role"`
	AddigyRole           string   `json:"addigy_role"`
	Policies             []string `json:"policies"`
}

type accountResponse struct {
	Users []User `json:"users"`
}

// UsersService manages account users through the internal API.
type UsersService struct{ service }

// GetUsers returns the users of the account.
func (s *UsersService) GetUsers(ctx context.Context, authObject auth.AuthObject) ([]User, error) {
	var out accountResponse
	if _, err := s.client.DoRequest(ctx, http.MethodGet, s.hosts.AppProd+"/api/account", nil, &out, s.session(authObject)...); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateUser invites a new user.
func (s *UsersService) CreateUser(ctx context.Context, authObject auth.AuthObject, input UserInput) (*User, error) {
	body := createUserRequest{
		Name:     input.Name,
		Email:    input.Email,
		Policies: policiesOrEmpty(input.Policies),
		Role:     input.Role,
		Phone:    input.Phone,
	}

	var out User
	if _, err := s.client.DoRequest(ctx, http.MethodPost, s.hosts.AppProd+"/api/cloud/users/user", body, &out, s.session(authObject)...); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser replaces the details of the user with input.Email. The server answers "ok".
func (s *UsersService) UpdateUser(ctx context.Context, authObject auth.AuthObject, input UserInput) (string, error) {
	user, err := s.findUser(ctx, authObject, input.Email)
	if err != nil {
		return "", err
	}

	body := updateUserRequest{
		ID:       user.ID,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
		Policies: policiesOrEmpty(input.Policies),
	}
	if input.Phone != nil {
		body.Phone = *input.Phone
	}

	var out string
	_, err = s.client.DoRequest(ctx, http.MethodPut, s.userURL(user.ID), body, &out, s.session(authObject, httpclient.WithQueryParam("user_email", user.Email))...)
	return out, err
}

// DeleteUser removes the user with the given e-mail address. The server answers "ok".
func (s *UsersService) DeleteUser(ctx context.Context, authObject auth.AuthObject, email string) (string, error) {
	user, err := s.findUser(ctx, authObject, email)
	if err != nil {
		return "", err
	}

	var out string
	_, err = s.client.DoRequest(ctx, http.MethodDelete, s.userURL(user.ID), nil, &out, s.session(authObject, httpclient.WithQueryParam("user_email", email))...)
	return out, err
}

func (s *UsersService) findUser(ctx context.Context, authObject auth.AuthObject, email string) (*User, error) {
	users, err := s.GetUsers(ctx, authObject)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, &mdm.NotFoundError{Resource: "user", Key: email}
}

func (s *UsersService) userURL(id string) string {
	return s.hosts.AppProd + "/api/cloud/users/user/" + url.PathEscape(id)
}

func policiesOrEmpty(policies []string) []string {
	if policies == nil {
		return []string{}
	}
	return policies
}
