package api

import (
	"errors"
	"net/http"

	"github.com/opositest/backend/internal/domain/history"
)

// ── Request / Response types ────────────────────────────────────────────────

type CurrentUserResponse struct {
	User string `json:"usuario"`
}

type SwitchUserRequest struct {
	User string `json:"usuario"`
}

func (r *SwitchUserRequest) Validate() error {
	if r.User == "" {
		return errors.New("usuario is required")
	}
	return nil
}

type UserStatsResponse struct {
	User       string         `json:"usuario"`
	Total      int            `json:"total"`
	Correct    int            `json:"correct"`
	Percentage int            `json:"percentage"`
	Topics     map[string]int `json:"topics"` // recent accuracy per topic
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listUsers lists every user that has an answer history.
// @Summary      List users
// @Tags         Users
// @Produce      json
// @Success      200  {array}  string
// @Router       /users [get]
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.ListUsers())
}

// currentUser returns the active user.
// @Summary      Get the active user
// @Tags         Users
// @Produce      json
// @Success      200  {object}  CurrentUserResponse
// @Router       /users/current [get]
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CurrentUserResponse{User: h.store.CurrentUser()})
}

// switchUser changes the active user. Unknown names implicitly create the
// user.
// @Summary      Switch the active user
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        body  body      SwitchUserRequest  true  "User name"
// @Success      200   {object}  CurrentUserResponse
// @Failure      400   {object}  map[string]string
// @Router       /users/current [put]
func (h *Handler) switchUser(w http.ResponseWriter, r *http.Request) {
	var req SwitchUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if h.handleStoreError(w, h.store.SetCurrentUser(req.User), "user") {
		return
	}
	respondJSON(w, http.StatusOK, CurrentUserResponse{User: h.store.CurrentUser()})
}

// deleteUser irreversibly deletes a user's history. The active user cannot
// be deleted; switch users first.
// @Summary      Delete a user's history
// @Tags         Users
// @Param        user  path  string  true  "User name"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string  "user is active"
// @Router       /users/{user} [delete]
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.ClearHistory(r.PathValue("user")), "user") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// userStats summarizes a user's accuracy, lifetime and per topic.
// @Summary      Get user statistics
// @Description  Lifetime accuracy plus recent per-topic accuracy over the last answers.
// @Tags         Users
// @Produce      json
// @Param        user  path      string  true  "User name"
// @Success      200   {object}  UserStatsResponse
// @Router       /users/{user}/stats [get]
func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	user := r.PathValue("user")
	stats := h.store.StatisticsFor(user)

	entries := h.store.History(user)
	topics := make(map[string]int)
	for _, topic := range h.store.Topics() {
		topics[topic] = history.TopicPercentage(entries, topic)
	}

	respondJSON(w, http.StatusOK, UserStatsResponse{
		User:       user,
		Total:      stats.Total,
		Correct:    stats.Correct,
		Percentage: stats.Percentage,
		Topics:     topics,
	})
}
