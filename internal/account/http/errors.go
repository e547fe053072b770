package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

var errBadBody = &rostersdk.APIError{
	StatusCode:  http.StatusBadRequest,
	Code:        rostersdk.ErrorCodeInvalidRequest,
	Description: "invalid JSON in request body",
}

// decodeBody reads the JSON request body into dst, writing a 400 and
// returning false when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(w, r, dst); err != nil {
		slogx.FromContext(r.Context()).Debug("rejected request body", slog.Any("error", err))
		errBadBody.WriteError(w)
		return false
	}
	return true
}

// writeServiceError maps a service error onto the API error it stands for.
// Anything unrecognised is logged and reported as a bare server_error.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		apiErr := rostersdk.ErrInvalidRequest.WithDetails(map[string]string{verr.Field: verr.Reason})
		apiErr.Description = verr.Field + " " + verr.Reason
		apiErr.WriteError(w)
	case errors.Is(err, service.ErrDuplicateUser):
		rostersdk.ErrDuplicateUser.WriteError(w)
	case errors.Is(err, service.ErrDuplicateMembership):
		rostersdk.ErrDuplicateMembership.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		rostersdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrMissingToken):
		httpx.WriteBearerChallenge(w, authRealm)
		rostersdk.ErrUnauthenticated.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		rostersdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		rostersdk.ErrServerError.WriteError(w)
	}
}
