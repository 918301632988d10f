package store

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

// AddNotification puts n in front of the list under a fresh id.
func (s *Store) AddNotification(n models.Notification) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n = s.addNotificationLocked(n)
	s.persistLocked()
	return n
}

func (s *Store) addNotificationLocked(n models.Notification) models.Notification {
	n.ID = s.newID()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.now()
	}
	s.state.Notifications = append([]models.Notification{n}, s.state.Notifications...)
	return n
}

func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Notifications {
		if s.state.Notifications[i].ID == id {
			s.state.Notifications[i].Read = true
			s.persistLocked()
			return true
		}
	}
	return false
}

// Notifications returns the notifications, most recent first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification{}, s.state.Notifications...)
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, note := range s.state.Notifications {
		if !note.Read {
			n++
		}
	}
	return n
}
