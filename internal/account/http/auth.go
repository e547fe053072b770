package http

import (
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

// AuthHandler serves registration and password login.
type AuthHandler struct {
	AccountService *service.AccountService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register
//	@Description	Creates a user account and returns a bearer token for it.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rostersdk.RegisterRequest	true	"username, email, password"
//	@Success		201		{object}	rostersdk.AuthResponse		"user and token"
//	@Failure		400		{object}	rostersdk.ErrorResponse		"invalid_request or duplicate_user"
//	@Failure		500		{object}	rostersdk.ErrorResponse		"server_error"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req rostersdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AccountService.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rostersdk.AuthResponse{
		User:  toUserResponse(res.User),
		Token: res.Token,
	})
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Login
//	@Description	Exchanges an email and password for a bearer token. An unknown email and a wrong password get the same response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		rostersdk.LoginRequest	true	"email, password"
//	@Success		200		{object}	rostersdk.AuthResponse	"user and token"
//	@Failure		400		{object}	rostersdk.ErrorResponse	"invalid_request or invalid_credentials"
//	@Failure		500		{object}	rostersdk.ErrorResponse	"server_error"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req rostersdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AccountService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, rostersdk.AuthResponse{
		User:  toUserResponse(res.User),
		Token: res.Token,
	})
}
