package api

import (
	"errors"
	"net/http"

	"github.com/opositest/backend/internal/domain/question"
	"github.com/opositest/backend/internal/domain/testsession"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	Mode  string `json:"modo"`
	Topic string `json:"tema"`
}

func (r *StartSessionRequest) Validate() error {
	if !testsession.Mode(r.Mode).Valid() {
		return errors.New("modo must be one of examen, largo, corto, repaso")
	}
	return nil
}

// SessionQuestion is the question under the cursor, without the correct
// answer. The answer is revealed only through the answer endpoint.
type SessionQuestion struct {
	Index    int      `json:"index"`
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Topic    string   `json:"tema"`
	Answered bool     `json:"answered"`
	Answer   string   `json:"answer,omitempty"` // the user's recorded choice
}

type SessionResponse struct {
	ID       string          `json:"id"`
	Mode     string          `json:"modo"`
	Topic    string          `json:"tema,omitempty"`
	User     string          `json:"usuario"`
	Total    int             `json:"total"`
	Answered int             `json:"answered"`
	Finished bool            `json:"finished"`
	Question SessionQuestion `json:"current"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

func (r *AnswerRequest) Validate() error {
	if !question.Letter(r.Answer).Valid() {
		return errors.New("answer must be one of A, B, C, D")
	}
	return nil
}

type AnswerResponse struct {
	Recorded      bool   `json:"recorded"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Index         int    `json:"index"`
}

type AdvanceRequest struct {
	Delta int `json:"delta"`
}

func sessionResponse(sess testsession.Session) SessionResponse {
	q := sess.Questions[sess.Current]
	userAnswer, answered := sess.Answers[sess.Current]
	return SessionResponse{
		ID:       sess.ID,
		Mode:     string(sess.Mode),
		Topic:    sess.Topic,
		User:     sess.User,
		Total:    len(sess.Questions),
		Answered: len(sess.Answers),
		Finished: sess.Finished,
		Question: SessionQuestion{
			Index:    sess.Current,
			ID:       q.ID,
			Question: q.Text,
			Options:  q.Options,
			Topic:    q.Topic,
			Answered: answered,
			Answer:   string(userAnswer),
		},
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession starts a quiz session for the active user.
// @Summary      Start a session
// @Description  Draws questions for the requested mode and topic and starts a session.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Mode and optional topic"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string  "unknown mode or empty question pool"
// @Router       /sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sess, err := h.sessions.Start(testsession.Mode(req.Mode), req.Topic)
	if err != nil {
		if errors.Is(err, testsession.ErrEmptyPool) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.handleStoreError(w, err, "session")
		return
	}
	respondJSON(w, http.StatusCreated, sessionResponse(sess))
}

// getSession returns the session's current state.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(sess))
}

// answerQuestion records an answer for the current question.
// @Summary      Answer the current question
// @Description  Records the answer, reveals the correct letter and logs the attempt. The first answer per question wins.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string         true  "Session ID"
// @Param        body       body      AnswerRequest  true  "Chosen letter"
// @Success      200  {object}  AnswerResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.sessions.Answer(r.PathValue("sessionID"), question.Letter(req.Answer))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, AnswerResponse{
		Recorded:      out.Recorded,
		Correct:       out.Correct,
		CorrectAnswer: string(out.CorrectAnswer),
		Index:         out.Index,
	})
}

// advanceSession moves the cursor forward or back.
// @Summary      Move the session cursor
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string          true  "Session ID"
// @Param        body       body      AdvanceRequest  true  "Cursor delta, may be negative"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	var req AdvanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sess, err := h.sessions.Advance(r.PathValue("sessionID"), req.Delta)
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse(sess))
}

// finishSession freezes the session and returns the final score.
// @Summary      Finish a session
// @Description  Freezes the session and computes the final 0-10 score.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200  {object}  testsession.Result
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID}/finish [post]
func (h *Handler) finishSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessions.Finish(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// endSession discards the session.
// @Summary      End a session
// @Description  Removes the session. Pending explanations for it are dropped.
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.sessions.End(r.PathValue("sessionID")), "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionExplanations returns the explanations gathered so far, keyed by
// question index. Slots still in flight are simply absent.
// @Summary      Get answer explanations
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200  {object}  map[int]string
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID}/explanations [get]
func (h *Handler) sessionExplanations(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sessions.Get(r.PathValue("sessionID"))
	if h.handleStoreError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, sess.Explanations)
}
