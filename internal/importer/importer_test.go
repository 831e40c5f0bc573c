package importer_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/opositest/backend/internal/domain/question"
	"github.com/opositest/backend/internal/importer"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse_SingleBlock(t *testing.T) {
	content := "Pregunta: X\na) 1\n*b) 2\nc) 3\nd) 4"
	drafts := importer.Parse(content, "Tema 1", discard())

	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	d := drafts[0]
	if d.Text != "X" {
		t.Errorf("expected question %q, got %q", "X", d.Text)
	}
	want := []string{"1", "2", "3", "4"}
	for i := range want {
		if d.Options[i] != want[i] {
			t.Errorf("option %d: expected %q, got %q", i, want[i], d.Options[i])
		}
	}
	if d.Answer != question.LetterB {
		t.Errorf("expected answer B, got %q", d.Answer)
	}
	if d.Topic != "Tema 1" {
		t.Errorf("expected default topic, got %q", d.Topic)
	}
}

func TestParse_ColonDelimiter(t *testing.T) {
	content := "Pregunta: ¿Capital de España?\na: Madrid\n*b: París\nc: Londres\nd: Roma"
	drafts := importer.Parse(content, "T", discard())
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Options[0] != "Madrid" {
		t.Errorf("expected %q, got %q", "Madrid", drafts[0].Options[0])
	}
	if drafts[0].Answer != question.LetterB {
		t.Errorf("expected answer B, got %q", drafts[0].Answer)
	}
}

func TestParse_FirstLineWithoutPrefix(t *testing.T) {
	content := "¿Cuánto es 2+2?\na) 3\nb) 5\n*c) 4\nd) 22"
	drafts := importer.Parse(content, "T", discard())
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Text != "¿Cuánto es 2+2?" {
		t.Errorf("unexpected question text %q", drafts[0].Text)
	}
	if drafts[0].Answer != question.LetterC {
		t.Errorf("expected answer C, got %q", drafts[0].Answer)
	}
}

func TestParse_ThreeOptionsDropped(t *testing.T) {
	content := "Pregunta: incompleta\na) 1\n*b) 2\nc) 3"
	if drafts := importer.Parse(content, "T", discard()); len(drafts) != 0 {
		t.Errorf("expected malformed block to be dropped, got %d drafts", len(drafts))
	}
}

func TestParse_NoStarDropped(t *testing.T) {
	content := "Pregunta: sin respuesta\na) 1\nb) 2\nc) 3\nd) 4"
	if drafts := importer.Parse(content, "T", discard()); len(drafts) != 0 {
		t.Errorf("expected block without correct marker to be dropped, got %d drafts", len(drafts))
	}
}

func TestParse_BadBlockDoesNotAbortBatch(t *testing.T) {
	content := "Pregunta: rota\na) 1\nb) 2\n\n" +
		"Pregunta: válida\na) 1\n*b) 2\nc) 3\nd) 4"
	drafts := importer.Parse(content, "T", discard())
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft from the valid block, got %d", len(drafts))
	}
	if drafts[0].Text != "válida" {
		t.Errorf("unexpected draft %q", drafts[0].Text)
	}
}

func TestParse_MultipleBlankLineSeparators(t *testing.T) {
	content := "Pregunta: uno\na) 1\n*b) 2\nc) 3\nd) 4\n\n\n\nPregunta: dos\n*a) 1\nb) 2\nc) 3\nd) 4"
	drafts := importer.Parse(content, "T", discard())
	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}
}

func TestParse_StarredLetterIsCapturedVerbatim(t *testing.T) {
	// The correct letter is taken from the starred line even when the
	// letters are out of order; option position is not reconciled.
	content := "Pregunta: X\nd) 1\n*a) 2\nb) 3\nc) 4"
	drafts := importer.Parse(content, "T", discard())
	if len(drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(drafts))
	}
	if drafts[0].Answer != question.LetterA {
		t.Errorf("expected captured letter A, got %q", drafts[0].Answer)
	}
	if drafts[0].Options[0] != "1" || drafts[0].Options[1] != "2" {
		t.Error("expected options to keep encounter order")
	}
}

func TestParse_Empty(t *testing.T) {
	if drafts := importer.Parse("", "T", discard()); len(drafts) != 0 {
		t.Errorf("expected no drafts from empty input, got %d", len(drafts))
	}
	if drafts := importer.Parse("solo una línea suelta", "T", discard()); len(drafts) != 0 {
		t.Errorf("expected no drafts, got %d", len(drafts))
	}
}

func TestCommit(t *testing.T) {
	drafts := []importer.Draft{
		{Text: "X", Options: []string{"1", "2", "3", "4"}, Answer: question.LetterB, Topic: "T1"},
		{Text: "", Options: []string{"1", "2", "3", "4"}, Answer: question.LetterA, Topic: "T1"},
	}
	questions := importer.Commit(drafts, discard())
	if len(questions) != 1 {
		t.Fatalf("expected 1 committed question, got %d", len(questions))
	}
	if questions[0].ID == "" {
		t.Error("expected committed question to get an ID")
	}
	if questions[0].Topic != "T1" {
		t.Errorf("expected topic T1, got %q", questions[0].Topic)
	}
}
