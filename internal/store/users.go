package store

import (
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/policy"
)

const (
	unassignedName   = "Unassigned"
	userNotFoundName = "User not found"
)

// Users returns the directory entries matching filter, in directory order.
// A nil filter returns everyone.
func (s *Store) Users(filter func(models.User) bool) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usersLocked(filter)
}

func (s *Store) usersLocked(filter func(models.User) bool) []models.User {
	out := make([]models.User, 0, len(s.state.AllUsers))
	for _, u := range s.state.AllUsers {
		if filter == nil || filter(u) {
			out = append(out, u)
		}
	}
	return out
}

// VisibleUsers returns the users a caller with the given role may see.
func (s *Store) VisibleUsers(caller models.Role) []models.User {
	return s.Users(func(u models.User) bool {
		return policy.CanViewUser(caller, u.Role)
	})
}

// GetAllUsers returns the directory as seen by the signed-in user. Without a
// session the list is empty.
func (s *Store) GetAllUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return []models.User{}
	}
	caller := s.state.User.Role
	return s.usersLocked(func(u models.User) bool {
		return policy.CanViewUser(caller, u.Role)
	})
}

// AssignableUsers returns the staff and admins that reports can be assigned to.
func (s *Store) AssignableUsers() []models.User {
	return s.Users(func(u models.User) bool {
		return policy.CanBeAssigned(u.Role)
	})
}

func (s *Store) FindUser(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.userIndexLocked(id); i >= 0 {
		return s.state.AllUsers[i], true
	}
	return models.User{}, false
}

// UserName resolves a user id for display. Reports may point at deleted users.
func (s *Store) UserName(id string) string {
	if id == "" {
		return unassignedName
	}
	if u, ok := s.FindUser(id); ok {
		return u.Name
	}
	return userNotFoundName
}

// AddUser appends u under a fresh id. Emails are not checked for uniqueness.
func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.newID()
	s.state.AllUsers = append(s.state.AllUsers, u)
	s.persistLocked()
	return u
}

// UpdateUser merges patch into the user with the given id.
func (s *Store) UpdateUser(id string, patch models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndexLocked(id)
	if i < 0 {
		return models.User{}, false
	}
	patch.Apply(&s.state.AllUsers[i])
	s.persistLocked()
	return s.state.AllUsers[i], true
}

// DeleteUser removes the user. Reports that reference it are left alone.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.userIndexLocked(id)
	if i < 0 {
		return false
	}
	users := make([]models.User, 0, len(s.state.AllUsers)-1)
	users = append(users, s.state.AllUsers[:i]...)
	s.state.AllUsers = append(users, s.state.AllUsers[i+1:]...)
	s.persistLocked()
	return true
}

func (s *Store) userIndexLocked(id string) int {
	for i, u := range s.state.AllUsers {
		if u.ID == id {
			return i
		}
	}
	return -1
}
