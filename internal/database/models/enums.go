package models

// UserRole defines the roles a user can hold in the operations app
type UserRole string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleSupervisor UserRole = "supervisor"
	UserRoleGuard      UserRole = "guard"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleSupervisor, UserRoleGuard:
		return true
	}
	return false
}
