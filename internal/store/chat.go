package store

import "github.com/ahmetcoskunkizilkaya/helpdesk-backend/internal/models"

// AddChatMessage appends m to the global room, stamping id and timestamp.
func (s *Store) AddChatMessage(m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.newID()
	m.Timestamp = s.now()
	s.state.ChatMessages = append(s.state.ChatMessages, m)
	s.persistLocked()
	return m
}

// GetChatMessages returns the room in append order, which is also timestamp order.
func (s *Store) GetChatMessages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage{}, s.state.ChatMessages...)
}
