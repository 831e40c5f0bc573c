package api

import (
	"net/http"
	"strings"
)

// ── Request / Response types ────────────────────────────────────────────────

type APIKeyRequest struct {
	Key string `json:"key"`
}

type APIKeyResponse struct {
	Configured bool   `json:"configured"`
	Hint       string `json:"hint,omitempty"` // last 4 characters
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getAPIKey reports whether an explanation key is configured. The key
// itself never leaves the server.
// @Summary      Get API key status
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  APIKeyResponse
// @Router       /settings/api-key [get]
func (h *Handler) getAPIKey(w http.ResponseWriter, r *http.Request) {
	key := h.store.APIKey()
	resp := APIKeyResponse{Configured: key != ""}
	if len(key) > 4 {
		resp.Hint = "…" + key[len(key)-4:]
	}
	respondJSON(w, http.StatusOK, resp)
}

// setAPIKey stores the explanation-service key. An empty key disables
// explanations.
// @Summary      Set the API key
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        body  body      APIKeyRequest  true  "Key, empty to disable explanations"
// @Success      200   {object}  APIKeyResponse
// @Router       /settings/api-key [put]
func (h *Handler) setAPIKey(w http.ResponseWriter, r *http.Request) {
	var req APIKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.store.SetAPIKey(req.Key)
	respondJSON(w, http.StatusOK, APIKeyResponse{Configured: strings.TrimSpace(req.Key) != ""})
}

// clearAllData wipes questions and all histories. Preferences survive.
// Deletion is irreversible, so the confirm flag is mandatory.
// @Summary      Delete all data
// @Description  Wipes the question list and every user's history. Requires confirm=true.
// @Tags         Settings
// @Param        confirm  query  string  true  "Must be \"true\""
// @Success      204
// @Failure      400  {object}  map[string]string
// @Router       /data [delete]
func (h *Handler) clearAllData(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		respondError(w, http.StatusBadRequest, "deletion requires confirm=true")
		return
	}
	h.store.ClearAll()
	h.logger.Info("all data cleared")
	w.WriteHeader(http.StatusNoContent)
}
