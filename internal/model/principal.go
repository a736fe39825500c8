package model

import "github.com/google/uuid"

// Principal is the verified identity attached to a request by the auth
// middleware.
type Principal struct {
	UserID   uuid.UUID
	Email    string
	Name     string
	Username string
	Role     UserRole
}

func (p Principal) IsAdmin() bool {
	return p.Role == UserRoleAdmin
}

func (p Principal) IsAdvisor() bool {
	return p.Role == UserRoleAdvisor
}

func (p Principal) IsTechnician() bool {
	return p.Role == UserRoleTechnician
}

func (p Principal) IsQC() bool {
	return p.Role == UserRoleQC
}
