// Package export renders the question list and answer history into
// shareable files: a plain-text dump for passing questions around and a
// JSON backup of everything.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/opositest/backend/internal/domain/history"
	"github.com/opositest/backend/internal/domain/question"
)

// Backup is the full-state snapshot a user downloads before reinstalling or
// migrating. Field names stay Spanish so older backups remain importable.
type Backup struct {
	Questions  []question.Question `json:"preguntas"`
	History    []history.Entry     `json:"historial"`
	ExportDate time.Time           `json:"exportDate"`
}

// NewBackup snapshots the given state.
func NewBackup(qs []question.Question, entries []history.Entry, now time.Time) Backup {
	return Backup{
		Questions:  qs,
		History:    entries,
		ExportDate: now,
	}
}

// BackupFileName dates the download so successive backups don't clobber each
// other.
func BackupFileName(now time.Time) string {
	return fmt.Sprintf("opositest-backup-%s.json", now.Format("2006-01-02"))
}

// QuestionsText renders the question list as a human-readable dump for
// sharing. The per-question blocks round-trip through the text importer.
func QuestionsText(qs []question.Question, now time.Time) string {
	var b strings.Builder

	b.WriteString("# Preguntas para Compartir\n")
	fmt.Fprintf(&b, "# Exportado el: %s\n", now.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "# Total de preguntas: %d\n\n", len(qs))

	for i, q := range qs {
		fmt.Fprintf(&b, "## Pregunta %d\n", i+1)
		fmt.Fprintf(&b, "**Tema:** %s\n", q.Topic)
		fmt.Fprintf(&b, "**Pregunta:** %s\n", q.Text)
		b.WriteString("**Opciones:**\n")
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "%s) %s\n", question.Letters[j], opt)
		}
		fmt.Fprintf(&b, "**Respuesta correcta:** %s\n", q.Answer)
		b.WriteString("\n---\n\n")
	}

	return b.String()
}
