package store

import (
	"strings"

	"github.com/opositest/backend/internal/domain/history"
)

// CurrentUser returns the active user name.
func (s *Store) CurrentUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// SetCurrentUser switches the active user. Unknown names implicitly create
// the user; its history key appears on the first answer.
func (s *Store) SetCurrentUser(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyUserName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = name
	s.persist(currentUserKey, name)
	return nil
}

// APIKey returns the stored explanation-service credential, empty when not
// configured.
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// SetAPIKey stores the user-supplied credential. An empty key disables
// explanations.
func (s *Store) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = strings.TrimSpace(key)
	s.persist(apiKeyKey, s.apiKey)
}

// ClearAll wipes questions and every user's history. Preferences survive.
func (s *Store) ClearAll() {
	users := s.ListUsers()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = nil
	s.persist(questionsKey, s.questions)

	for _, user := range users {
		if err := s.backend.Delete(historyKeyPrefix + user); err != nil {
			s.logger.Error("failed to delete history key", "user", user, "error", err)
		}
	}
	s.histories = make(map[string][]history.Entry)
}
