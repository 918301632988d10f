// Package policy holds the pure authorization rules of the help desk. The
// store and the HTTP layer compose these predicates with their own queries.
package policy

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

// CanViewUser reports whether a caller with role caller may see a directory
// entry with role target. Masters see everyone but other masters, admins see
// staff only, everyone else sees nobody.
func CanViewUser(caller, target models.Role) bool {
	switch caller {
	case models.RoleMaster:
		return target != models.RoleMaster
	case models.RoleAdmin:
		return target == models.RoleStaff
	}
	return false
}

// CanManageUser reports whether caller may create, edit or delete a user with
// role target. Management follows visibility.
func CanManageUser(caller, target models.Role) bool {
	return CanViewUser(caller, target)
}

// CanBeAssigned reports whether a user with the given role can be assigned a report.
func CanBeAssigned(role models.Role) bool {
	return role == models.RoleStaff || role == models.RoleAdmin
}

// RoleAllowed is the route guard check.
func RoleAllowed(role models.Role, allowed ...models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
