package http

import (
	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
)

func toUserResponse(u domain.User) rostersdk.UserResponse {
	return rostersdk.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func toCompanyResponse(c domain.Company) rostersdk.CompanyResponse {
	return rostersdk.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMembershipResponse(m domain.Membership) rostersdk.MembershipResponse {
	return rostersdk.MembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
	}
}
