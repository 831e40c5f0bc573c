// Package service coordinates quiz sessions: it owns the in-memory session
// registry, feeds answers into the history log and dispatches asynchronous
// answer explanations.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/opositest/backend/internal/domain/history"
	"github.com/opositest/backend/internal/domain/question"
	"github.com/opositest/backend/internal/domain/testsession"
	"github.com/opositest/backend/internal/explainer"
	"github.com/opositest/backend/internal/store"
)

// AllTopics is the client-facing sentinel for "no topic filter".
const AllTopics = "Todos los temas"

var ErrSessionNotFound = errors.New("session not found")

// AnswerOutcome is what the caller learns immediately after answering. The
// explanation for a wrong answer arrives later through the session snapshot.
type AnswerOutcome struct {
	Recorded      bool
	Correct       bool
	CorrectAnswer question.Letter
	Index         int
}

// SessionService manages running quiz sessions. Sessions live only in
// memory; a restart forgets them, the answer history does not.
// It owns the per-session WaitGroups so the store stays a pure persistence
// layer.
type SessionService struct {
	store     *store.Store
	explainer explainer.Explainer
	logger    *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*testsession.Session
	pending  map[string]*sync.WaitGroup // sessionID → in-flight explanations
}

// NewSessionService creates a SessionService.
func NewSessionService(s *store.Store, e explainer.Explainer, logger *slog.Logger) *SessionService {
	return &SessionService{
		store:     s,
		explainer: e,
		logger:    logger,
		sessions:  make(map[string]*testsession.Session),
		pending:   make(map[string]*sync.WaitGroup),
	}
}

// Start draws questions for the requested mode and registers a new session.
// The question order is fixed at start; later question edits don't reach
// running sessions.
func (ss *SessionService) Start(mode testsession.Mode, topic string) (testsession.Session, error) {
	if topic == AllTopics {
		topic = ""
	}

	user := ss.store.CurrentUser()
	pool := ss.store.QuestionsByTopic(topic)

	var wrongCounts map[string]int
	if mode == testsession.ModeRepaso {
		wrongCounts = ss.store.WrongCountsFor(user)
	}

	sess, err := testsession.New(mode, topic, user, pool, wrongCounts)
	if err != nil {
		return testsession.Session{}, err
	}

	ss.mu.Lock()
	ss.sessions[sess.ID] = sess
	ss.pending[sess.ID] = &sync.WaitGroup{}
	ss.mu.Unlock()

	ss.logger.Info("session started",
		"session_id", sess.ID,
		"mode", mode,
		"user", user,
		"questions", len(sess.Questions),
	)
	return snapshot(sess), nil
}

// Get returns a point-in-time copy of the session.
func (ss *SessionService) Get(id string) (testsession.Session, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	sess, ok := ss.sessions[id]
	if !ok {
		return testsession.Session{}, ErrSessionNotFound
	}
	return snapshot(sess), nil
}

// Answer records the user's answer for the session's current question. A
// recorded answer goes straight into the history log; a recorded wrong
// answer additionally triggers an asynchronous explanation when an API key
// is configured. Without a key the explanation slot stays empty.
func (ss *SessionService) Answer(id string, letter question.Letter) (AnswerOutcome, error) {
	ss.mu.Lock()
	sess, ok := ss.sessions[id]
	if !ok {
		ss.mu.Unlock()
		return AnswerOutcome{}, ErrSessionNotFound
	}

	index := sess.Current
	q := sess.CurrentQuestion()
	user := sess.User
	recorded, correct := sess.Answer(letter)
	wg := ss.pending[id]
	ss.mu.Unlock()

	outcome := AnswerOutcome{
		Recorded:      recorded,
		Correct:       correct,
		CorrectAnswer: q.Answer,
		Index:         index,
	}
	if !recorded {
		return outcome, nil
	}

	ss.store.AppendHistory(history.NewEntry(q, correct, user))

	if !correct && ss.store.APIKey() != "" {
		ss.submitExplanation(id, index, q, letter, wg)
	}
	return outcome, nil
}

// Advance moves the session cursor by delta and returns the updated
// snapshot.
func (ss *SessionService) Advance(id string, delta int) (testsession.Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sess, ok := ss.sessions[id]
	if !ok {
		return testsession.Session{}, ErrSessionNotFound
	}
	sess.Advance(delta)
	return snapshot(sess), nil
}

// Finish freezes the session and returns the final score. The session stays
// in the registry so the user can review questions and late explanations
// until End.
func (ss *SessionService) Finish(id string) (testsession.Result, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	sess, ok := ss.sessions[id]
	if !ok {
		return testsession.Result{}, ErrSessionNotFound
	}
	result := sess.Finish()
	ss.logger.Info("session finished",
		"session_id", id,
		"score", result.Score,
		"passed", result.Passed,
	)
	return result, nil
}

// End discards the session. In-flight explanations for it are dropped on
// arrival.
func (ss *SessionService) End(id string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if _, ok := ss.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(ss.sessions, id)
	delete(ss.pending, id)
	return nil
}

// WaitForExplanations blocks until every explanation dispatched for the
// session has finished.
func (ss *SessionService) WaitForExplanations(id string) {
	ss.mu.RLock()
	wg, ok := ss.pending[id]
	ss.mu.RUnlock()
	if ok {
		wg.Wait()
	}
}

// submitExplanation asks the explainer in the background and attaches the
// result to the session. Explanations are best-effort: failures become a
// user-facing message in the same slot, never an error for the answer call.
func (ss *SessionService) submitExplanation(sessionID string, index int, q question.Question, userAnswer question.Letter, wg *sync.WaitGroup) {
	apiKey := ss.store.APIKey()

	if wg != nil {
		wg.Add(1)
	}
	go func() {
		if wg != nil {
			defer wg.Done()
		}

		// context.Background because the explanation outlives the answer
		// request that triggered it.
		text, err := ss.explainer.Explain(context.Background(), q, userAnswer, apiKey)
		if err != nil {
			ss.logger.Warn("explanation failed",
				"session_id", sessionID,
				"question_id", q.ID,
				"error", err,
			)
			text = explanationMessage(err)
		}

		ss.mu.Lock()
		defer ss.mu.Unlock()
		// The session may have been ended while the call was in flight.
		sess, ok := ss.sessions[sessionID]
		if !ok {
			return
		}
		sess.Explanations[index] = text
	}()
}

// explanationMessage turns an explainer failure into the text shown in the
// explanation slot.
func explanationMessage(err error) string {
	switch {
	case errors.Is(err, explainer.ErrNoAPIKey):
		return "⚠️ No hay API key configurada. Ve a Configuración para añadir tu clave de Groq."
	case errors.Is(err, explainer.ErrInvalidKey):
		return "❌ API key inválida. Verifica tu clave en Configuración."
	case errors.Is(err, explainer.ErrRateLimit):
		return "⏰ Límite de peticiones excedido. Espera un momento e inténtalo de nuevo."
	case errors.Is(err, explainer.ErrBadRequest):
		return "❌ Error en el formato de la petición."
	default:
		return "❌ Error desconocido al conectar con Groq."
	}
}

// snapshot deep-copies the session's mutable maps so callers can read it
// without holding the service lock.
func snapshot(sess *testsession.Session) testsession.Session {
	out := *sess
	out.Questions = make([]question.Question, len(sess.Questions))
	copy(out.Questions, sess.Questions)
	out.Answers = make(map[int]question.Letter, len(sess.Answers))
	for k, v := range sess.Answers {
		out.Answers[k] = v
	}
	out.Explanations = make(map[int]string, len(sess.Explanations))
	for k, v := range sess.Explanations {
		out.Explanations[k] = v
	}
	return out
}
