package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/opositest/backend/internal/domain/history"
	"github.com/opositest/backend/internal/domain/question"
)

func mkQuestion(t *testing.T, text, topic string) question.Question {
	t.Helper()
	q, err := question.New(text, []string{"uno", "dos", "tres", "cuatro"}, question.LetterB, topic)
	if err != nil {
		t.Fatalf("failed to build question: %v", err)
	}
	return q
}

func TestQuestionsText(t *testing.T) {
	qs := []question.Question{
		mkQuestion(t, "¿Primera?", "Tema 1"),
		mkQuestion(t, "¿Segunda?", "Tema 2"),
	}
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	got := QuestionsText(qs, now)

	for _, want := range []string{
		"# Exportado el: 28/08/2026 10:30",
		"# Total de preguntas: 2",
		"## Pregunta 1",
		"## Pregunta 2",
		"**Tema:** Tema 1",
		"**Pregunta:** ¿Primera?",
		"A) uno",
		"D) cuatro",
		"**Respuesta correcta:** B",
		"\n---\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("dump missing %q:\n%s", want, got)
		}
	}
}

func TestQuestionsText_Empty(t *testing.T) {
	got := QuestionsText(nil, time.Now())
	if !strings.Contains(got, "# Total de preguntas: 0") {
		t.Errorf("empty dump must still carry the header:\n%s", got)
	}
}

func TestBackupJSONKeys(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	q := mkQuestion(t, "¿X?", "T1")
	backup := NewBackup([]question.Question{q}, []history.Entry{history.NewEntry(q, true, "ana")}, now)

	data, err := json.Marshal(backup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{"preguntas", "historial", "exportDate"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("backup missing key %q", key)
		}
	}
}

func TestBackupFileName(t *testing.T) {
	now := time.Date(2026, 8, 28, 23, 59, 0, 0, time.UTC)
	if got := BackupFileName(now); got != "opositest-backup-2026-08-28.json" {
		t.Errorf("unexpected file name: %q", got)
	}
}
