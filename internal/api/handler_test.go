package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opositest/backend/internal/domain/question"
	"github.com/opositest/backend/internal/remote"
	"github.com/opositest/backend/internal/service"
	"github.com/opositest/backend/internal/storage"
	"github.com/opositest/backend/internal/store"
)

type cannedExplainer struct{}

func (cannedExplainer) Explain(ctx context.Context, q question.Question, userAnswer question.Letter, apiKey string) (string, error) {
	return "porque sí", nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *store.Store, *service.SessionService) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(storage.NewMemory(), logger)
	sessions := service.NewSessionService(st, cannedExplainer{}, logger)
	h := NewHandler(st, sessions, remote.NewClient(""), logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return mux, st, sessions
}

func seedQuestions(t *testing.T, st *store.Store, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		q, err := question.New(fmt.Sprintf("Q%d", i), []string{"1", "2", "3", "4"}, question.LetterA, "T1")
		if err != nil {
			t.Fatalf("failed to build question: %v", err)
		}
		st.AddQuestion(q)
	}
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAddAndListQuestions(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/questions",
		`{"question":"¿X?","options":["1","2","3","4"],"answer":"B","tema":"T1"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, mux, http.MethodGet, "/questions", "")
	var list QuestionListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if list.Total != 1 || list.Questions[0].Text != "¿X?" {
		t.Errorf("unexpected list: %+v", list)
	}
}

func TestAddQuestion_Invalid(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/questions",
		`{"question":"¿X?","options":["1","2"],"answer":"Z","tema":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteQuestion_RequiresConfirm(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 1)

	rec := doJSON(t, mux, http.MethodDelete, "/questions/0", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without confirm, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/questions/0?confirm=true", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with confirm, got %d", rec.Code)
	}
	if st.CountQuestions() != 0 {
		t.Error("question must be removed")
	}

	rec = doJSON(t, mux, http.MethodDelete, "/questions/7?confirm=true", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a bad index, got %d", rec.Code)
	}
}

func TestImportPreviewAndConfirm(t *testing.T) {
	mux, st, _ := newTestMux(t)

	content := "Pregunta: ¿Capital de España?\\na) Lisboa\\n*b) Madrid\\nc) París\\nd) Roma"
	rec := doJSON(t, mux, http.MethodPost, "/import/preview",
		`{"content":"`+content+`","tema":"Geografía"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var preview ImportPreviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &preview); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if preview.Total != 1 || preview.Drafts[0].Answer != question.LetterB {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	drafts, _ := json.Marshal(preview.Drafts)
	rec = doJSON(t, mux, http.MethodPost, "/import/confirm", `{"drafts":`+string(drafts)+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	if st.CountQuestions() != 1 {
		t.Error("confirmed draft must be stored")
	}
}

func TestSessionFlow(t *testing.T) {
	mux, _, sessions := newTestMux(t)
	seed := newTestSeed(t, mux)

	rec := doJSON(t, mux, http.MethodPost, "/sessions", `{"modo":"corto","tema":"Todos los temas"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var sess SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if sess.Total != seed {
		t.Errorf("expected %d questions, got %d", seed, sess.Total)
	}
	if sess.Question.Answer != "" {
		t.Error("unanswered question must not carry an answer")
	}

	// Answer the current question; every seed question's answer is A.
	rec = doJSON(t, mux, http.MethodPost, "/sessions/"+sess.ID+"/answers", `{"answer":"A"}`)
	var answer AnswerResponse
	json.Unmarshal(rec.Body.Bytes(), &answer)
	if !answer.Recorded || !answer.Correct || answer.CorrectAnswer != "A" {
		t.Errorf("unexpected answer response: %+v", answer)
	}

	rec = doJSON(t, mux, http.MethodPost, "/sessions/"+sess.ID+"/advance", `{"delta":1}`)
	var advanced SessionResponse
	json.Unmarshal(rec.Body.Bytes(), &advanced)
	if advanced.Question.Index != 1 {
		t.Errorf("expected cursor at 1, got %d", advanced.Question.Index)
	}

	rec = doJSON(t, mux, http.MethodPost, "/sessions/"+sess.ID+"/finish", "")
	var result map[string]any
	json.Unmarshal(rec.Body.Bytes(), &result)
	if result["correct"].(float64) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	sessions.WaitForExplanations(sess.ID)
	rec = doJSON(t, mux, http.MethodDelete, "/sessions/"+sess.ID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/sessions/"+sess.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after ending, got %d", rec.Code)
	}
}

// newTestSeed stores a handful of questions through the API and returns the
// count.
func newTestSeed(t *testing.T, mux *http.ServeMux) int {
	t.Helper()
	const n = 3
	for i := 0; i < n; i++ {
		body := fmt.Sprintf(`{"question":"Q%d","options":["1","2","3","4"],"answer":"A","tema":"T1"}`, i)
		if rec := doJSON(t, mux, http.MethodPost, "/questions", body); rec.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", rec.Code, rec.Body)
		}
	}
	return n
}

func TestStartSession_EmptyPool(t *testing.T) {
	mux, _, _ := newTestMux(t)
	rec := doJSON(t, mux, http.MethodPost, "/sessions", `{"modo":"examen"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an empty pool, got %d", rec.Code)
	}
}

func TestStartSession_UnknownMode(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 1)
	rec := doJSON(t, mux, http.MethodPost, "/sessions", `{"modo":"turbo"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for an unknown mode, got %d", rec.Code)
	}
}

func TestUserEndpoints(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 1)

	rec := doJSON(t, mux, http.MethodGet, "/users/current", "")
	var current CurrentUserResponse
	json.Unmarshal(rec.Body.Bytes(), &current)
	if current.User != store.DefaultUser {
		t.Errorf("expected the default user, got %q", current.User)
	}

	rec = doJSON(t, mux, http.MethodPut, "/users/current", `{"usuario":"ana"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPut, "/users/current", `{"usuario":"luis"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/users/luis", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 deleting the active user, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/users/nadie", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown user, got %d", rec.Code)
	}
}

func TestUserStats(t *testing.T) {
	mux, st, sessions := newTestMux(t)
	seedQuestions(t, st, 2)

	sess, err := sessions.Start("corto", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sessions.Answer(sess.ID, question.LetterA)
	sessions.WaitForExplanations(sess.ID)

	rec := doJSON(t, mux, http.MethodGet, "/users/"+store.DefaultUser+"/stats", "")
	var stats UserStatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.Total != 1 || stats.Correct != 1 || stats.Percentage != 100 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.Topics["T1"] != 100 {
		t.Errorf("unexpected topic accuracy: %+v", stats.Topics)
	}
}

func TestAPIKeyEndpoints(t *testing.T) {
	mux, _, _ := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/settings/api-key", "")
	var status APIKeyResponse
	json.Unmarshal(rec.Body.Bytes(), &status)
	if status.Configured {
		t.Error("no key must be configured initially")
	}

	doJSON(t, mux, http.MethodPut, "/settings/api-key", `{"key":"gsk_abcd1234"}`)
	rec = doJSON(t, mux, http.MethodGet, "/settings/api-key", "")
	json.Unmarshal(rec.Body.Bytes(), &status)
	if !status.Configured || status.Hint != "…1234" {
		t.Errorf("unexpected key status: %+v", status)
	}
}

func TestClearAllData_RequiresConfirm(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 2)

	rec := doJSON(t, mux, http.MethodDelete, "/data", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without confirm, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/data?confirm=true", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if st.CountQuestions() != 0 {
		t.Error("questions must be wiped")
	}
}

func TestSyncDisabled(t *testing.T) {
	mux, _, _ := newTestMux(t)
	for _, path := range []string{"/sync/push", "/sync/pull"} {
		rec := doJSON(t, mux, http.MethodPost, path, "")
		if rec.Code != http.StatusBadGateway {
			t.Errorf("%s: expected 502 without a remote, got %d", path, rec.Code)
		}
	}
}

func TestSyncPull_ReplacesLocalList(t *testing.T) {
	remoteServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"doc1","question":"¿Remota?","options":["1","2","3","4"],"answer":"C","tema":"T9"}]`))
	}))
	defer remoteServer.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	st := store.New(storage.NewMemory(), logger)
	sessions := service.NewSessionService(st, cannedExplainer{}, logger)
	h := NewHandler(st, sessions, remote.NewClient(remoteServer.URL), logger)
	mux := http.NewServeMux()
	RegisterRoutes(mux, h)

	seedQuestions(t, st, 2)

	rec := doJSON(t, mux, http.MethodPost, "/sync/pull", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var pull SyncPullResponse
	json.Unmarshal(rec.Body.Bytes(), &pull)
	if pull.Fetched != 1 || !pull.Replaced {
		t.Errorf("unexpected pull response: %+v", pull)
	}

	qs := st.Questions()
	if len(qs) != 1 || qs[0].Text != "¿Remota?" {
		t.Errorf("expected the remote list to replace local state, got %+v", qs)
	}
}

func TestExportBackup(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 1)

	rec := doJSON(t, mux, http.MethodGet, "/export/backup", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment; filename=opositest-backup-") {
		t.Errorf("unexpected disposition: %q", got)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("failed to decode backup: %v", err)
	}
	for _, key := range []string{"preguntas", "historial", "exportDate"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("backup missing key %q", key)
		}
	}
}

func TestExportQuestionsText(t *testing.T) {
	mux, st, _ := newTestMux(t)
	seedQuestions(t, st, 1)

	rec := doJSON(t, mux, http.MethodGet, "/export/questions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "## Pregunta 1") {
		t.Errorf("unexpected dump:\n%s", rec.Body)
	}
}
