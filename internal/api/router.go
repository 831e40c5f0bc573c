// internal/api/router.go
package api

import "net/http"

// RegisterRoutes wires every handler onto the mux using method patterns.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions
	mux.HandleFunc("POST /questions", h.addQuestion)
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("DELETE /questions/{index}", h.deleteQuestion)
	mux.HandleFunc("POST /questions/recover", h.recoverQuestions)
	mux.HandleFunc("GET /topics", h.listTopics)

	// Import
	mux.HandleFunc("POST /import/preview", h.previewImport)
	mux.HandleFunc("POST /import/confirm", h.confirmImport)

	// Sessions
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.answerQuestion)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advanceSession)
	mux.HandleFunc("POST /sessions/{sessionID}/finish", h.finishSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.endSession)
	mux.HandleFunc("GET /sessions/{sessionID}/explanations", h.sessionExplanations)

	// Users
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("GET /users/current", h.currentUser)
	mux.HandleFunc("PUT /users/current", h.switchUser)
	mux.HandleFunc("DELETE /users/{user}", h.deleteUser)
	mux.HandleFunc("GET /users/{user}/stats", h.userStats)

	// Remote sync
	mux.HandleFunc("POST /sync/push", h.pushQuestions)
	mux.HandleFunc("POST /sync/pull", h.pullQuestions)

	// Export
	mux.HandleFunc("GET /export/questions", h.exportQuestions)
	mux.HandleFunc("GET /export/backup", h.exportBackup)

	// Settings
	mux.HandleFunc("GET /settings/api-key", h.getAPIKey)
	mux.HandleFunc("PUT /settings/api-key", h.setAPIKey)
	mux.HandleFunc("DELETE /data", h.clearAllData)
}
