package http

import (
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleMe handles GET /v1/users/me
//
//	@Summary		Current User
//	@Description	Returns the authenticated user.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rostersdk.UserResponse	"id, username, email"
//	@Failure		401	{object}	rostersdk.ErrorResponse	"unauthenticated"
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := service.PrincipalFromContext(r.Context())
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleList handles GET /v1/users
//
//	@Summary		List Users
//	@Description	Returns every registered user, oldest first.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	rostersdk.UsersResponse	"users"
//	@Failure		401	{object}	rostersdk.ErrorResponse	"unauthenticated"
//	@Failure		500	{object}	rostersdk.ErrorResponse	"server_error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := rostersdk.UsersResponse{Users: make([]rostersdk.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
