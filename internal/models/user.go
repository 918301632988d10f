package models

// Role determines which pages and actions a user is allowed.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleMaster Role = "master"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleMaster:
		return true
	}
	return false
}

// User is a help-desk account. The directory holds one record per user.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
}

// UserPatch carries a partial update. Nil fields are left untouched.
type UserPatch struct {
	Name    *string
	Email   *string
	Role    *Role
	Avatar  *string
	Address *string
}

// Apply merges the set fields of p into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
}
