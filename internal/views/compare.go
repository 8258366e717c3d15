package views

import (
	"errors"

	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/reference"
)

// ErrNoComparison is returned when either side of a comparison is missing
// from the aggregates. Callers get this sentinel instead of a bundle with
// half its fields zeroed.
var ErrNoComparison = errors.New("no comparison available")

// PartySide is one side of a party-vs-party comparison bundle.
type PartySide struct {
	Name           string  `json:"name"`
	ShortName      string  `json:"short_name"`
	Color          string  `json:"color"`
	Seats          int     `json:"seats"`
	PriorSeats     int     `json:"prior_seats"`
	SeatChange     int     `json:"seat_change"`
	Percentage     float64 `json:"percentage"`
	TotalVotes     int     `json:"total_votes"`
	VoteShare      float64 `json:"vote_share"`
	PriorVoteShare float64 `json:"prior_vote_share"`
	AvgMargin      float64 `json:"avg_margin"`
	MaxMargin      int     `json:"max_margin"`
}

// PartyComparison is the two-party comparison bundle.
type PartyComparison struct {
	A PartySide `json:"a"`
	B PartySide `json:"b"`
}

// CompareParties builds a head-to-head bundle for two parties. Both sides
// must exist in the seat aggregate or ErrNoComparison is returned.
func CompareParties(
	tables *reference.Tables,
	stats []models.PartyStats,
	constituencies []models.ConstituencyResult,
	detailed []models.DetailedResult,
	partyA, partyB string,
) (*PartyComparison, error) {
	a, okA := findParty(stats, partyA)
	b, okB := findParty(stats, partyB)
	if !okA || !okB {
		return nil, ErrNoComparison
	}

	return &PartyComparison{
		A: buildPartySide(tables, a, constituencies, detailed),
		B: buildPartySide(tables, b, constituencies, detailed),
	}, nil
}

func findParty(stats []models.PartyStats, party string) (models.PartyStats, bool) {
	for _, s := range stats {
		if s.Party == party {
			return s, true
		}
	}
	return models.PartyStats{}, false
}

func buildPartySide(
	tables *reference.Tables,
	stat models.PartyStats,
	constituencies []models.ConstituencyResult,
	detailed []models.DetailedResult,
) PartySide {
	won := 0
	marginSum := 0
	maxMargin := 0
	for _, c := range constituencies {
		if c.LeadingParty != stat.Party {
			continue
		}
		won++
		marginSum += c.Margin
		if c.Margin > maxMargin {
			maxMargin = c.Margin
		}
	}
	avgMargin := 0.0
	if won > 0 {
		avgMargin = float64(marginSum) / float64(won)
	}

	partyVotes := 0
	grandTotal := 0
	for _, d := range detailed {
		grandTotal += d.TotalVotes
		if d.Party == stat.Party {
			partyVotes += d.TotalVotes
		}
	}
	voteShare := 0.0
	if grandTotal > 0 {
		voteShare = float64(partyVotes) / float64(grandTotal) * 100
	}

	return PartySide{
		Name:           stat.Party,
		ShortName:      tables.ShortName(stat.Party),
		Color:          tables.Color(stat.Party),
		Seats:          stat.Seats,
		PriorSeats:     tables.PriorSeats(stat.Party),
		SeatChange:     stat.Seats - tables.PriorSeats(stat.Party),
		Percentage:     stat.Percentage,
		TotalVotes:     partyVotes,
		VoteShare:      voteShare,
		PriorVoteShare: tables.PriorVoteShare(stat.Party),
		AvgMargin:      avgMargin,
		MaxMargin:      maxMargin,
	}
}

// StateSide is one side of a state-vs-state comparison bundle.
type StateSide struct {
	Name       string         `json:"name"`
	TotalSeats int            `json:"total_seats"`
	Parties    map[string]int `json:"parties"`
	TotalVotes int            `json:"total_votes"`
	Candidates int            `json:"candidates"`
	PriorSeats int            `json:"prior_seats,omitempty"`
}

// StateComparison is the two-state comparison bundle.
type StateComparison struct {
	A StateSide `json:"a"`
	B StateSide `json:"b"`
}

// CompareStates builds a head-to-head bundle for two states. Both sides
// must exist in the state aggregate or ErrNoComparison is returned.
func CompareStates(
	tables *reference.Tables,
	stats []models.StateStats,
	detailed []models.DetailedResult,
	stateA, stateB string,
) (*StateComparison, error) {
	a, okA := StateBreakdown(stats, stateA)
	b, okB := StateBreakdown(stats, stateB)
	if !okA || !okB {
		return nil, ErrNoComparison
	}

	return &StateComparison{
		A: buildStateSide(tables, a, detailed),
		B: buildStateSide(tables, b, detailed),
	}, nil
}

func buildStateSide(tables *reference.Tables, stat models.StateStats, detailed []models.DetailedResult) StateSide {
	candidates := make(map[string]struct{})
	for _, d := range detailed {
		if d.State == stat.State {
			candidates[d.Candidate] = struct{}{}
		}
	}

	side := StateSide{
		Name:       stat.State,
		TotalSeats: stat.TotalSeats,
		Parties:    stat.Parties,
		TotalVotes: stat.TotalVotes,
		Candidates: len(candidates),
	}
	if prior, ok := tables.PriorState(stat.State); ok {
		side.PriorSeats = prior.TotalSeats
	}
	return side
}
