package domain

import "time"

type Company struct {
	ID        string
	Name      string
	CreatedBy string // user id, fixed at creation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Membership links a user to a company. There is at most one per
// (UserID, CompanyID) pair.
type Membership struct {
	ID        string
	UserID    string
	CompanyID string
	CreatedBy string
	CreatedAt time.Time
}

// CompanyWithMembership is a new company together with its founding
// membership. Both are written in the same transaction.
type CompanyWithMembership struct {
	Company    Company
	Membership Membership
}
