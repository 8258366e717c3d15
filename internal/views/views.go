// Package views builds read-only projections over already-computed
// aggregates: leaderboards, margin rankings, text filters, and comparison
// bundles. Accessors copy before sorting and never mutate their inputs.
package views

import (
	"sort"
	"strings"

	"github.com/electoscope/electoscope/internal/models"
)

// TopParties returns the first n entries of a party leaderboard. The input
// is already ranked by the aggregation engine; fewer than n entries returns
// all of them.
func TopParties(stats []models.PartyStats, n int) []models.PartyStats {
	if n <= 0 || n > len(stats) {
		n = len(stats)
	}
	out := make([]models.PartyStats, n)
	copy(out, stats[:n])
	return out
}

// ClosestContests returns up to n constituencies ordered by ascending
// margin. Ties keep input order.
func ClosestContests(constituencies []models.ConstituencyResult, n int) []models.ConstituencyResult {
	return rankByMargin(constituencies, n, func(a, b int) bool { return a < b })
}

// LargestMargins returns up to n constituencies ordered by descending
// margin. Ties keep input order.
func LargestMargins(constituencies []models.ConstituencyResult, n int) []models.ConstituencyResult {
	return rankByMargin(constituencies, n, func(a, b int) bool { return a > b })
}

func rankByMargin(constituencies []models.ConstituencyResult, n int, less func(a, b int) bool) []models.ConstituencyResult {
	out := make([]models.ConstituencyResult, len(constituencies))
	copy(out, constituencies)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i].Margin, out[j].Margin)
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// FilterConstituencies returns rows whose constituency, candidate, or
// party fields contain the query, case-insensitively. An empty query
// returns a copy of the input unchanged.
func FilterConstituencies(constituencies []models.ConstituencyResult, query string) []models.ConstituencyResult {
	if query == "" {
		out := make([]models.ConstituencyResult, len(constituencies))
		copy(out, constituencies)
		return out
	}

	q := strings.ToLower(query)
	out := make([]models.ConstituencyResult, 0)
	for _, c := range constituencies {
		if containsFold(q, c.Constituency, c.LeadingCandidate, c.TrailingCandidate, c.LeadingParty, c.TrailingParty) {
			out = append(out, c)
		}
	}
	return out
}

// FilterDetailed returns detailed rows whose constituency, candidate, or
// party fields contain the query, case-insensitively. An empty query
// returns a copy of the input unchanged.
func FilterDetailed(detailed []models.DetailedResult, query string) []models.DetailedResult {
	if query == "" {
		out := make([]models.DetailedResult, len(detailed))
		copy(out, detailed)
		return out
	}

	q := strings.ToLower(query)
	out := make([]models.DetailedResult, 0)
	for _, d := range detailed {
		if containsFold(q, d.PCName, d.Candidate, d.Party, d.State) {
			out = append(out, d)
		}
	}
	return out
}

// containsFold reports whether any field contains the already-lowercased
// query.
func containsFold(lowerQuery string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), lowerQuery) {
			return true
		}
	}
	return false
}

// StateBreakdown returns the party-seat distribution for one state from
// precomputed state stats. The returned map is a copy.
func StateBreakdown(stats []models.StateStats, state string) (models.StateStats, bool) {
	for _, s := range stats {
		if s.State == state {
			parties := make(map[string]int, len(s.Parties))
			for k, v := range s.Parties {
				parties[k] = v
			}
			s.Parties = parties
			return s, true
		}
	}
	return models.StateStats{}, false
}
