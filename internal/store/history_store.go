package store

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/opositest/backend/internal/domain/history"
	"github.com/opositest/backend/internal/storage"
)

// History returns a copy of the user's answer log, oldest first.
func (s *Store) History(user string) []history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.loadHistoryLocked(user)
	out := make([]history.Entry, len(entries))
	copy(out, entries)
	return out
}

// AppendHistory adds one entry to its user's log. The log is append-only:
// entries are never edited or removed individually.
func (s *Store) AppendHistory(entry history.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append(s.loadHistoryLocked(entry.User), entry)
	s.histories[entry.User] = entries
	s.persist(historyKeyPrefix+entry.User, entries)
}

// StatisticsFor summarizes the user's lifetime accuracy.
func (s *Store) StatisticsFor(user string) history.Statistics {
	return history.Compute(s.History(user))
}

// TopicPercentage is the sliding-window accuracy for one topic of the
// user's log.
func (s *Store) TopicPercentage(user, topic string) int {
	return history.TopicPercentage(s.History(user), topic)
}

// WrongCountsFor builds the repaso weighting for a user.
func (s *Store) WrongCountsFor(user string) map[string]int {
	return history.WrongCounts(s.History(user))
}

// ClearHistory irreversibly deletes one user's log. Refused for the active
// user; the caller must switch users first.
func (s *Store) ClearHistory(user string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == s.currentUser {
		return ErrActiveUser
	}

	known := false
	if _, ok := s.histories[user]; ok {
		known = true
	}
	err := s.backend.Delete(historyKeyPrefix + user)
	if err == nil {
		known = true
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.logger.Error("failed to delete history key", "user", user, "error", err)
		known = true // in-memory deletion still applies
	}
	delete(s.histories, user)

	if !known {
		return ErrUnknownUser
	}
	return nil
}

// ListUsers derives the known users by scanning persisted history keys.
// There is no separate registry: a user exists once it has a history key,
// even an empty one. The list is derived, not authoritative.
func (s *Store) ListUsers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	if keys, err := s.backend.Keys(); err == nil {
		for _, key := range keys {
			if user, ok := strings.CutPrefix(key, historyKeyPrefix); ok {
				seen[user] = true
			}
		}
	} else {
		s.logger.Error("failed to scan storage keys", "error", err)
	}
	for user := range s.histories {
		seen[user] = true
	}

	users := make([]string, 0, len(seen))
	for user := range seen {
		users = append(users, user)
	}
	sort.Strings(users)
	return users
}

// loadHistoryLocked returns the cached log for user, reading it from the
// backend on first access. Corrupt keys degrade to an empty log. Users
// without a persisted key are not cached: a read-only stats query must not
// make a name appear in ListUsers.
func (s *Store) loadHistoryLocked(user string) []history.Entry {
	if entries, ok := s.histories[user]; ok {
		return entries
	}

	data, err := s.backend.Load(historyKeyPrefix + user)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Error("failed to load history", "user", user, "error", err)
		}
		return nil
	}

	var entries []history.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Error("corrupt history key, starting empty", "user", user, "error", err)
		entries = nil
	}
	s.histories[user] = entries
	return entries
}
