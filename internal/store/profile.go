package store

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

// UpdateProfile merges patch into the signed-in user and into that user's
// directory entry, so both copies stay equal. It returns false without a session.
func (s *Store) UpdateProfile(patch models.UserPatch) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return models.User{}, false
	}
	patch.Apply(s.state.User)
	if i := s.userIndexLocked(s.state.User.ID); i >= 0 {
		patch.Apply(&s.state.AllUsers[i])
	}
	s.persistLocked()
	return *s.state.User, true
}
