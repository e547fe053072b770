package rostersdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/roster/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeDuplicateUser       = "duplicate_user"
	ErrorCodeDuplicateMembership = "duplicate_membership"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeUnauthenticated     = "unauthenticated"
	ErrorCodeNotFound            = "not_found"
	ErrorCodeServerError         = "server_error"
)

// APIError is the error type of the roster API. It is used by the server to
// write error responses and by the client to report them.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Code        string            `json:"error"`
	Description string            `json:"error_description"`
	Details     map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes e as the HTTP response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Details:          e.Details,
	})
}

// WithDetails returns a copy of e carrying per-field details.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}

var (
	// ErrInvalidRequest is returned for malformed bodies and failed validation.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	// ErrDuplicateUser is returned when the email or username is taken.
	ErrDuplicateUser = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateUser,
		Description: "user already exists",
	}

	// ErrDuplicateMembership is returned when the user already belongs to the company.
	ErrDuplicateMembership = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateMembership,
		Description: "user is already a member of this company",
	}

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password alike.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	// ErrUnauthenticated is returned for every bearer token failure.
	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthenticated,
		Description: "authentication required",
	}

	// ErrNotFound is returned when the company does not exist or is not
	// visible to the caller.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	// ErrServerError is returned when something went wrong on our side.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Details:     errResp.Details,
		}
	}

	// Fallback: create generic error from status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
