package rostersdk

import "time"

// ============================================================================
// Error Responses
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a machine readable code, see the ErrorCode constants
	Error string `json:"error"`

	// ErrorDescription is a human readable explanation
	ErrorDescription string `json:"error_description"`

	// Details maps request fields to the reason they were rejected
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// ============================================================================
// Users
// ============================================================================

// UserResponse is the public view of a user. The password hash is never
// part of any response.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UsersResponse is returned by GET /v1/users.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ============================================================================
// Companies & Memberships
// ============================================================================

// CreateCompanyRequest is the body of POST /v1/companies.
type CreateCompanyRequest struct {
	Name string `json:"name"`
}

// CompanySummary is the short company form returned on creation.
type CompanySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MembershipSummary is the short membership form returned on company creation.
type MembershipSummary struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	CompanyID string `json:"companyId"`
}

// CreateCompanyResponse is returned by POST /v1/companies.
type CreateCompanyResponse struct {
	Message    string            `json:"message"`
	Company    CompanySummary    `json:"company"`
	Membership MembershipSummary `json:"membership"`
}

// CompanyResponse is one element of GET /v1/companies.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddMemberRequest is the body of POST /v1/companies/members.
type AddMemberRequest struct {
	CompanyID string `json:"companyId"`
	UserID    string `json:"userId"`
}

// MembershipResponse is the full view of a membership.
type MembershipResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CompanyID string    `json:"companyId"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddMemberResponse is returned by POST /v1/companies/members.
type AddMemberResponse struct {
	Message    string             `json:"message"`
	Membership MembershipResponse `json:"membership"`
}

// MembersResponse is returned by GET /v1/companies/{id}/members.
type MembersResponse struct {
	Members []MembershipResponse `json:"members"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status string `json:"status"`
}
