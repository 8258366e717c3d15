// Package analytics computes derived election statistics from parsed
// record snapshots. Every function is pure: inputs are never mutated and
// each call returns a freshly built result, so calls are safe to repeat
// and to run from independent call sites.
package analytics

import (
	"sort"

	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/reference"
)

// Engine computes aggregates, enriching them from the injected reference
// tables.
type Engine struct {
	tables *reference.Tables
}

// New creates an Engine backed by the given enrichment tables.
func New(tables *reference.Tables) *Engine {
	return &Engine{tables: tables}
}

// Tables returns the enrichment tables the engine was built with.
func (e *Engine) Tables() *reference.Tables {
	return e.tables
}

// PartyStats groups constituency results by leading party. Seats is the
// group size and Percentage the seat share. MarginVotes is the summed
// victory margin of the group, not a true vote total; the source data
// carries this proxy and views depend on its semantics, so it is kept
// under a name that says what it is.
//
// Output is sorted by seats descending; ties keep first-encounter order.
func (e *Engine) PartyStats(constituencies []models.ConstituencyResult) []models.PartyStats {
	type tally struct {
		seats   int
		margins int
	}
	tallies := make(map[string]*tally)
	order := make([]string, 0)

	for _, c := range constituencies {
		t, ok := tallies[c.LeadingParty]
		if !ok {
			t = &tally{}
			tallies[c.LeadingParty] = t
			order = append(order, c.LeadingParty)
		}
		t.seats++
		t.margins += c.Margin
	}

	totalSeats := len(constituencies)
	stats := make([]models.PartyStats, 0, len(order))
	for _, party := range order {
		t := tallies[party]
		stats = append(stats, models.PartyStats{
			Party:       party,
			Seats:       t.seats,
			MarginVotes: t.margins,
			Percentage:  float64(t.seats) / float64(totalSeats) * 100,
			Color:       e.tables.Color(party),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Seats > stats[j].Seats
	})
	return stats
}

// StateStats reduces detailed rows to one winner per (state, constituency)
// key, then groups winners by state. Winner selection is a stable max on
// TotalVotes: the first-encountered row wins a tie.
//
// Output is sorted by total seats descending; ties keep first-encounter
// order of the states.
func (e *Engine) StateStats(detailed []models.DetailedResult) []models.StateStats {
	type seatKey struct {
		state  string
		pcName string
	}
	type winner struct {
		party string
		votes int
	}

	winners := make(map[seatKey]winner)
	seatOrder := make([]seatKey, 0)
	for _, d := range detailed {
		key := seatKey{d.State, d.PCName}
		w, ok := winners[key]
		if !ok {
			seatOrder = append(seatOrder, key)
		}
		if !ok || d.TotalVotes > w.votes {
			winners[key] = winner{party: d.Party, votes: d.TotalVotes}
		}
	}

	states := make(map[string]*models.StateStats)
	stateOrder := make([]string, 0)
	for _, key := range seatOrder {
		w := winners[key]
		s, ok := states[key.state]
		if !ok {
			s = &models.StateStats{State: key.state, Parties: make(map[string]int)}
			states[key.state] = s
			stateOrder = append(stateOrder, key.state)
		}
		s.TotalSeats++
		s.Parties[w.party]++
		s.TotalVotes += w.votes
	}

	stats := make([]models.StateStats, 0, len(stateOrder))
	for _, state := range stateOrder {
		stats = append(stats, *states[state])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSeats > stats[j].TotalSeats
	})
	return stats
}

// VoteShare sums total votes per party across every candidate row, not
// just winners. NOTA ballots are excluded from both the per-party sums and
// the grand-total denominator. Output is sorted by votes descending; ties
// keep first-encounter order.
func (e *Engine) VoteShare(detailed []models.DetailedResult) []models.PartyStats {
	votes := make(map[string]int)
	order := make([]string, 0)
	grandTotal := 0

	for _, d := range detailed {
		if d.Party == reference.NOTAParty {
			continue
		}
		if _, ok := votes[d.Party]; !ok {
			order = append(order, d.Party)
		}
		votes[d.Party] += d.TotalVotes
		grandTotal += d.TotalVotes
	}

	stats := make([]models.PartyStats, 0, len(order))
	for _, party := range order {
		v := votes[party]
		pct := 0.0
		if grandTotal > 0 {
			pct = float64(v) / float64(grandTotal) * 100
		}
		stats = append(stats, models.PartyStats{
			Party:       party,
			MarginVotes: v,
			Percentage:  pct,
			Color:       e.tables.Color(party),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].MarginVotes > stats[j].MarginVotes
	})
	return stats
}
