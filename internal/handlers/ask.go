package handlers

import (
	"net/http"

	"github.com/electoscope/electoscope/internal/models"
)

// AskRequest is the question-panel request body
type AskRequest struct {
	Question string              `json:"question"`
	History  []models.AskMessage `json:"history,omitempty"`
}

// handleAsk answers one question against the loaded dataset
func (h *Handlers) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	answer, err := h.Ask.Ask(r.Context(), req.Question, req.History)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, answer)
}
