package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/opositest/backend/internal/export"
)

// ── Handlers ────────────────────────────────────────────────────────────────

// exportQuestions downloads the question list as shareable plain text.
// @Summary      Export questions as text
// @Description  Renders the question list into the shareable text format.
// @Tags         Export
// @Produce      plain
// @Success      200  {string}  string
// @Router       /export/questions [get]
func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	content := export.QuestionsText(h.store.Questions(), time.Now())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=preguntas_compartir.txt")
	w.Write([]byte(content))
}

// exportBackup downloads a JSON snapshot of the questions and the active
// user's history.
// @Summary      Export a backup
// @Description  Full JSON snapshot: questions, the active user's history and the export date.
// @Tags         Export
// @Produce      json
// @Success      200  {object}  export.Backup
// @Router       /export/backup [get]
func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	backup := export.NewBackup(
		h.store.Questions(),
		h.store.History(h.store.CurrentUser()),
		now,
	)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+export.BackupFileName(now))
	json.NewEncoder(w).Encode(backup)
}
