package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/opositest/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddQuestionRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
	Topic    string   `json:"tema"`
}

func (r *AddQuestionRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	if len(r.Options) != 4 {
		return errors.New("exactly 4 options are required")
	}
	if !question.Letter(r.Answer).Valid() {
		return errors.New("answer must be one of A, B, C, D")
	}
	if r.Topic == "" {
		return errors.New("tema is required")
	}
	return nil
}

type QuestionListResponse struct {
	Questions []question.Question `json:"questions"`
	Total     int                 `json:"total"`
}

type RecoverResponse struct {
	Recovered int                 `json:"recovered"`
	Questions []question.Question `json:"questions"`
}

type SyncPushResponse struct {
	Pushed int `json:"pushed"`
	Failed int `json:"failed"`
}

type SyncPullResponse struct {
	Fetched  int  `json:"fetched"`
	Replaced bool `json:"replaced"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// addQuestion adds one question by hand.
// @Summary      Add a question
// @Description  Add a single multiple-choice question to the local list.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      AddQuestionRequest  true  "Question to add"
// @Success      201   {object}  question.Question
// @Failure      400   {object}  map[string]string
// @Router       /questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	var req AddQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := question.New(req.Question, req.Options, question.Letter(req.Answer), req.Topic)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.store.AddQuestion(q)
	respondJSON(w, http.StatusCreated, q)
}

// listQuestions lists the stored questions.
// @Summary      List questions
// @Description  Returns the stored questions, optionally filtered by topic.
// @Tags         Questions
// @Produce      json
// @Param        tema  query     string  false  "Topic filter"
// @Success      200   {object}  QuestionListResponse
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	qs := h.store.QuestionsByTopic(r.URL.Query().Get("tema"))
	respondJSON(w, http.StatusOK, QuestionListResponse{
		Questions: qs,
		Total:     len(qs),
	})
}

// deleteQuestion removes the question at a list position. Deletion is
// irreversible, so the confirm flag is mandatory.
// @Summary      Delete a question
// @Description  Deletes the question at the given index. Requires confirm=true.
// @Tags         Questions
// @Produce      json
// @Param        index    path   int     true  "Question index"
// @Param        confirm  query  string  true  "Must be \"true\""
// @Success      200  {object}  question.Question
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /questions/{index} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		respondError(w, http.StatusBadRequest, "deletion requires confirm=true")
		return
	}

	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "index must be a number")
		return
	}

	removed, err := h.store.RemoveQuestion(index)
	if h.handleStoreError(w, err, "question") {
		return
	}
	respondJSON(w, http.StatusOK, removed)
}

// listTopics lists the distinct topics.
// @Summary      List topics
// @Tags         Questions
// @Produce      json
// @Success      200  {array}  string
// @Router       /topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Topics())
}

// recoverQuestions merges the persisted question cache back into the live
// list after an accidental overwrite.
// @Summary      Recover cached questions
// @Description  Re-adds persisted questions missing from the live list.
// @Tags         Questions
// @Produce      json
// @Success      200  {object}  RecoverResponse
// @Router       /questions/recover [post]
func (h *Handler) recoverQuestions(w http.ResponseWriter, r *http.Request) {
	added := h.store.MergeNew(h.store.CachedQuestions())
	h.logger.Info("recovered questions from cache", "count", len(added))
	respondJSON(w, http.StatusOK, RecoverResponse{
		Recovered: len(added),
		Questions: added,
	})
}

// pushQuestions uploads the local questions to the shared collection.
// @Summary      Push questions to the shared store
// @Description  Uploads every local question. Failures are counted, not fatal.
// @Tags         Sync
// @Produce      json
// @Success      200  {object}  SyncPushResponse
// @Failure      502  {object}  map[string]string  "remote sync not configured or unreachable"
// @Router       /sync/push [post]
func (h *Handler) pushQuestions(w http.ResponseWriter, r *http.Request) {
	if !h.remote.Enabled() {
		respondError(w, http.StatusBadGateway, "remote sync is not configured")
		return
	}

	var resp SyncPushResponse
	for _, q := range h.store.Questions() {
		if err := h.remote.AddQuestion(r.Context(), q); err != nil {
			h.logger.Warn("failed to push question", "question_id", q.ID, "error", err)
			resp.Failed++
			continue
		}
		resp.Pushed++
	}
	respondJSON(w, http.StatusOK, resp)
}

// pullQuestions downloads the shared collection and overwrites the local
// list with it. An empty collection is ignored rather than applied, and
// local-only questions lost to an overwrite can be brought back through
// the recover endpoint.
// @Summary      Pull questions from the shared store
// @Description  Fetches the shared collection and replaces the local list with server truth. Empty fetches are ignored.
// @Tags         Sync
// @Produce      json
// @Success      200  {object}  SyncPullResponse
// @Failure      502  {object}  map[string]string  "remote sync not configured or unreachable"
// @Router       /sync/pull [post]
func (h *Handler) pullQuestions(w http.ResponseWriter, r *http.Request) {
	if !h.remote.Enabled() {
		respondError(w, http.StatusBadGateway, "remote sync is not configured")
		return
	}

	qs, err := h.remote.ListQuestions(r.Context())
	if err != nil {
		h.logger.Error("failed to pull questions", "error", err)
		respondError(w, http.StatusBadGateway, "remote fetch failed")
		return
	}

	resp := SyncPullResponse{Fetched: len(qs)}
	if len(qs) > 0 {
		h.store.ReplaceAll(qs)
		resp.Replaced = true
	}
	respondJSON(w, http.StatusOK, resp)
}
