package api

import (
	"errors"
	"net/http"

	"github.com/opositest/backend/internal/importer"
)

// ── Request / Response types ────────────────────────────────────────────────

type ImportPreviewRequest struct {
	Content string `json:"content"`
	Topic   string `json:"tema"`
}

func (r *ImportPreviewRequest) Validate() error {
	if r.Content == "" {
		return errors.New("content is required")
	}
	if r.Topic == "" {
		return errors.New("tema is required")
	}
	return nil
}

type ImportPreviewResponse struct {
	Drafts []importer.Draft `json:"drafts"`
	Total  int              `json:"total"`
}

type ImportConfirmRequest struct {
	Drafts []importer.Draft `json:"drafts"`
}

func (r *ImportConfirmRequest) Validate() error {
	if len(r.Drafts) == 0 {
		return errors.New("drafts are required")
	}
	return nil
}

type ImportConfirmResponse struct {
	Added int `json:"added"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// previewImport parses raw text into question drafts without storing them.
// @Summary      Preview a text import
// @Description  Parses delimited question text into drafts. Malformed blocks are dropped silently; the caller compares counts.
// @Tags         Import
// @Accept       json
// @Produce      json
// @Param        body  body      ImportPreviewRequest  true  "Raw text and default topic"
// @Success      200   {object}  ImportPreviewResponse
// @Failure      400   {object}  map[string]string
// @Router       /import/preview [post]
func (h *Handler) previewImport(w http.ResponseWriter, r *http.Request) {
	var req ImportPreviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	drafts := importer.Parse(req.Content, req.Topic, h.logger)
	respondJSON(w, http.StatusOK, ImportPreviewResponse{
		Drafts: drafts,
		Total:  len(drafts),
	})
}

// confirmImport stores previously previewed drafts. The client may have
// edited topics per draft between preview and confirm.
// @Summary      Confirm a text import
// @Description  Converts confirmed drafts into stored questions.
// @Tags         Import
// @Accept       json
// @Produce      json
// @Param        body  body      ImportConfirmRequest  true  "Drafts to store"
// @Success      201   {object}  ImportConfirmResponse
// @Failure      400   {object}  map[string]string
// @Router       /import/confirm [post]
func (h *Handler) confirmImport(w http.ResponseWriter, r *http.Request) {
	var req ImportConfirmRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	qs := importer.Commit(req.Drafts, h.logger)
	if len(qs) == 0 {
		respondError(w, http.StatusBadRequest, "no valid questions in drafts")
		return
	}

	h.store.AddQuestions(qs)
	respondJSON(w, http.StatusCreated, ImportConfirmResponse{Added: len(qs)})
}
