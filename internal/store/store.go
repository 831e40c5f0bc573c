// Package store holds the application state: the authoritative question
// list, per-user answer history and preferences. State lives in memory and
// is persisted to the backend on every mutation; persistence failures are
// logged but never roll back the in-memory change.
package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/opositest/backend/internal/domain/history"
	"github.com/opositest/backend/internal/domain/question"
	"github.com/opositest/backend/internal/storage"
)

// Storage keys. History uses one key per user.
const (
	questionsKey     = "questions"
	historyKeyPrefix = "history-"
	currentUserKey   = "current-user"
	apiKeyKey        = "groq-api-key"
)

// DefaultUser is the implicit user before anyone picks a name.
const DefaultUser = "Usuario"

var (
	ErrActiveUser    = errors.New("cannot delete the active user")
	ErrUnknownUser   = errors.New("user has no history")
	ErrOutOfRange    = errors.New("question index out of range")
	ErrEmptyUserName = errors.New("user name cannot be empty")
)

// Store is safe for concurrent use by HTTP handlers.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger

	mu          sync.RWMutex
	questions   []question.Question
	histories   map[string][]history.Entry // user → log, loaded lazily
	currentUser string
	apiKey      string
}

// New loads persisted state from the backend. Unreadable or corrupt keys
// degrade to empty defaults.
func New(backend storage.Backend, logger *slog.Logger) *Store {
	s := &Store{
		backend:     backend,
		logger:      logger,
		histories:   make(map[string][]history.Entry),
		currentUser: DefaultUser,
	}

	if data, err := backend.Load(questionsKey); err == nil {
		if err := json.Unmarshal(data, &s.questions); err != nil {
			logger.Error("corrupt questions key, starting empty", "error", err)
			s.questions = nil
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		logger.Error("failed to load questions", "error", err)
	}

	if data, err := backend.Load(currentUserKey); err == nil {
		var user string
		if json.Unmarshal(data, &user) == nil && user != "" {
			s.currentUser = user
		}
	}

	if data, err := backend.Load(apiKeyKey); err == nil {
		var key string
		if json.Unmarshal(data, &key) == nil {
			s.apiKey = key
		}
	}

	return s
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// persist writes one key fire-and-forget. Callers hold the write lock; the
// in-memory mutation has already happened and stands regardless.
func (s *Store) persist(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal for persistence", "key", key, "error", err)
		return
	}
	if err := s.backend.Save(key, data); err != nil {
		s.logger.Error("failed to persist", "key", key, "error", err)
	}
}
