package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/electoscope/electoscope/internal/services"
)

// handleOverview returns the headline totals and insights
func (h *Handlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Stats.Overview()
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, overview)
}

// handleParties returns the seat aggregate, optionally limited
func (h *Handlers) handleParties(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	parties, err := h.Stats.Parties(limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, parties)
}

// handleVoteShare returns the vote-share ranking, optionally limited
func (h *Handlers) handleVoteShare(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}

	shares, err := h.Stats.VoteShare(limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, shares)
}

// handleStates returns the per-state winner aggregate
func (h *Handlers) handleStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.Stats.States()
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, states)
}

// handleState returns one state's breakdown
func (h *Handlers) handleState(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "state")
	if name == "" {
		respondError(w, BadRequest("Missing state parameter"))
		return
	}

	detail, err := h.Stats.State(name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, detail)
}

// handleConstituencies returns the constituency table with filters
func (h *Handlers) handleConstituencies(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimitQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}
	closest, err := parseBoolQuery(r, "closest")
	if err != nil {
		respondError(w, err)
		return
	}
	largest, err := parseBoolQuery(r, "largest")
	if err != nil {
		respondError(w, err)
		return
	}
	if closest && largest {
		respondError(w, BadRequest("closest and largest are mutually exclusive"))
		return
	}

	rows, err := h.Stats.Constituencies(services.ConstituencyQuery{
		Query:   r.URL.Query().Get("q"),
		Closest: closest,
		Largest: largest,
		Limit:   limit,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, rows)
}

// handleCompareParties returns the party-vs-party comparison bundle
func (h *Handlers) handleCompareParties(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		respondError(w, BadRequest("Both a and b parameters are required"))
		return
	}

	cmp, err := h.Stats.CompareParties(a, b)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, cmp)
}

// handleCompareStates returns the state-vs-state comparison bundle
func (h *Handlers) handleCompareStates(w http.ResponseWriter, r *http.Request) {
	a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
	if a == "" || b == "" {
		respondError(w, BadRequest("Both a and b parameters are required"))
		return
	}

	cmp, err := h.Stats.CompareStates(a, b)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, cmp)
}
