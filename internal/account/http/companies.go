package http

import (
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

// CompaniesHandler handles company and membership endpoints. Every route is
// mounted behind RequireAuth.
type CompaniesHandler struct {
	CompanyService *service.CompanyService
}

// HandleCreate handles POST /v1/companies
//
//	@Summary		Create Company
//	@Description	Creates a company and makes the caller its first member, atomically.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rostersdk.CreateCompanyRequest	true	"company name"
//	@Success		201		{object}	rostersdk.CreateCompanyResponse	"company and founding membership"
//	@Failure		400		{object}	rostersdk.ErrorResponse			"invalid_request"
//	@Failure		401		{object}	rostersdk.ErrorResponse			"unauthenticated"
//	@Failure		500		{object}	rostersdk.ErrorResponse			"server_error"
//	@Router			/v1/companies [post].
func (h *CompaniesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, _ := service.PrincipalFromContext(r.Context())

	var req rostersdk.CreateCompanyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.CompanyService.CreateCompany(r.Context(), user, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rostersdk.CreateCompanyResponse{
		Message: "Company created successfully",
		Company: rostersdk.CompanySummary{
			ID:   created.Company.ID,
			Name: created.Company.Name,
		},
		Membership: rostersdk.MembershipSummary{
			ID:        created.Membership.ID,
			UserID:    created.Membership.UserID,
			CompanyID: created.Membership.CompanyID,
		},
	})
}

// HandleList handles GET /v1/companies
//
//	@Summary		List Companies
//	@Description	Returns the companies the caller is a member of, oldest membership first.
//	@Tags			Companies
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		rostersdk.CompanyResponse	"companies"
//	@Failure		401	{object}	rostersdk.ErrorResponse		"unauthenticated"
//	@Failure		500	{object}	rostersdk.ErrorResponse		"server_error"
//	@Router			/v1/companies [get].
func (h *CompaniesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, _ := service.PrincipalFromContext(r.Context())

	companies, err := h.CompanyService.ListCompaniesForUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]rostersdk.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAddMember handles POST /v1/companies/members
//
//	@Summary		Add Member
//	@Description	Adds a user to a company.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		rostersdk.AddMemberRequest	true	"companyId, userId"
//	@Success		201		{object}	rostersdk.AddMemberResponse	"new membership"
//	@Failure		400		{object}	rostersdk.ErrorResponse		"invalid_request or duplicate_membership"
//	@Failure		401		{object}	rostersdk.ErrorResponse		"unauthenticated"
//	@Failure		404		{object}	rostersdk.ErrorResponse		"not_found"
//	@Failure		500		{object}	rostersdk.ErrorResponse		"server_error"
//	@Router			/v1/companies/members [post].
func (h *CompaniesHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	user, _ := service.PrincipalFromContext(r.Context())

	var req rostersdk.AddMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	m, err := h.CompanyService.AddMember(r.Context(), user, req.CompanyID, req.UserID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, rostersdk.AddMemberResponse{
		Message:    "Member added successfully",
		Membership: toMembershipResponse(m),
	})
}

// HandleListMembers handles GET /v1/companies/{id}/members
//
//	@Summary		List Members
//	@Description	Returns the memberships of a company the caller belongs to.
//	@Tags			Companies
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string						true	"company id"
//	@Success		200	{object}	rostersdk.MembersResponse	"members"
//	@Failure		401	{object}	rostersdk.ErrorResponse		"unauthenticated"
//	@Failure		404	{object}	rostersdk.ErrorResponse		"not_found"
//	@Failure		500	{object}	rostersdk.ErrorResponse		"server_error"
//	@Router			/v1/companies/{id}/members [get].
func (h *CompaniesHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	user, _ := service.PrincipalFromContext(r.Context())

	members, err := h.CompanyService.ListMembers(r.Context(), user, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := rostersdk.MembersResponse{Members: make([]rostersdk.MembershipResponse, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMembershipResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
