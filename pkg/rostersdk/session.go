package rostersdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session carries a bearer token and performs authenticated calls.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the bearer token this session sends.
func (s *Session) Token() string { return s.token }

// Me returns the user the token was issued to.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/users/me", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns the public view of every user.
func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	var out UsersResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/users", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// CreateCompany creates a company with the caller as its first member.
func (s *Session) CreateCompany(ctx context.Context, name string) (*CreateCompanyResponse, error) {
	var out CreateCompanyResponse
	req := CreateCompanyRequest{Name: name}
	if err := s.client.do(ctx, http.MethodPost, "/v1/companies", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCompanies returns the companies the caller belongs to.
func (s *Session) ListCompanies(ctx context.Context) ([]CompanyResponse, error) {
	var out []CompanyResponse
	if err := s.client.do(ctx, http.MethodGet, "/v1/companies", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// AddMember adds userID to companyID.
func (s *Session) AddMember(ctx context.Context, companyID, userID string) (*AddMemberResponse, error) {
	var out AddMemberResponse
	req := AddMemberRequest{CompanyID: companyID, UserID: userID}
	if err := s.client.do(ctx, http.MethodPost, "/v1/companies/members", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMembers returns the memberships of a company the caller belongs to.
func (s *Session) ListMembers(ctx context.Context, companyID string) ([]MembershipResponse, error) {
	var out MembersResponse
	path := "/v1/companies/" + url.PathEscape(companyID) + "/members"
	if err := s.client.do(ctx, http.MethodGet, path, s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Members, nil
}
