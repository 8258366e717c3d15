package services

import (
	stderrors "errors"

	"github.com/electoscope/electoscope/internal/analytics"
	"github.com/electoscope/electoscope/internal/errors"
	"github.com/electoscope/electoscope/internal/logger"
	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/views"
)

// Overview is the dashboard headline bundle.
type Overview struct {
	TotalConstituencies int              `json:"total_constituencies"`
	TotalCandidates     int              `json:"total_candidates"`
	TotalVotes          int              `json:"total_votes"`
	TotalStates         int              `json:"total_states"`
	LeadingParty        string           `json:"leading_party"`
	LeadingPartySeats   int              `json:"leading_party_seats"`
	Insights            []models.Insight `json:"insights"`
}

// StateDetail is one state's breakdown plus its share of the national total.
type StateDetail struct {
	models.StateStats
	SeatShare float64 `json:"seat_share"`
}

// StatsService orchestrates the aggregation engine and view accessors over
// the current dataset snapshot.
type StatsService struct {
	log      logger.Logger
	datasets *DatasetService
	engine   *analytics.Engine
}

// NewStatsService creates a stats service over the dataset service.
func NewStatsService(log logger.Logger, datasets *DatasetService, engine *analytics.Engine) *StatsService {
	return &StatsService{log: log, datasets: datasets, engine: engine}
}

// Overview builds the headline totals and the insight list.
func (s *StatsService) Overview() (*Overview, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	totalVotes := 0
	for _, d := range snap.Detailed {
		totalVotes += d.TotalVotes
	}

	ov := &Overview{
		TotalConstituencies: len(snap.Constituencies),
		TotalCandidates:     len(snap.Candidates),
		TotalVotes:          totalVotes,
		TotalStates:         len(snap.States),
		Insights:            s.engine.Insights(snap.Constituencies, snap.Detailed),
	}
	if stats := s.engine.PartyStats(snap.Constituencies); len(stats) > 0 {
		ov.LeadingParty = stats[0].Party
		ov.LeadingPartySeats = stats[0].Seats
	}
	return ov, nil
}

// Parties returns the seat aggregate, limited to the top N when limit > 0.
func (s *StatsService) Parties(limit int) ([]models.PartyStats, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return views.TopParties(s.engine.PartyStats(snap.Constituencies), limit), nil
}

// VoteShare returns the vote-share ranking, limited to the top N when
// limit > 0.
func (s *StatsService) VoteShare(limit int) ([]models.PartyStats, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return views.TopParties(s.engine.VoteShare(snap.Detailed), limit), nil
}

// States returns the per-state winner aggregate.
func (s *StatsService) States() ([]models.StateStats, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.engine.StateStats(snap.Detailed), nil
}

// State returns one state's breakdown with its national seat share.
func (s *StatsService) State(name string) (*StateDetail, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	stats := s.engine.StateStats(snap.Detailed)
	stat, ok := views.StateBreakdown(stats, name)
	if !ok {
		return nil, errors.NotFoundf("state %q not in dataset", name)
	}

	totalSeats := 0
	for _, st := range stats {
		totalSeats += st.TotalSeats
	}
	detail := &StateDetail{StateStats: stat}
	if totalSeats > 0 {
		detail.SeatShare = float64(stat.TotalSeats) / float64(totalSeats) * 100
	}
	return detail, nil
}

// ConstituencyQuery selects and orders constituency rows. Query filters
// first; at most one of Closest/Largest applies; Limit caps the result
// when > 0.
type ConstituencyQuery struct {
	Query   string
	Closest bool
	Largest bool
	Limit   int
}

// Constituencies returns filtered, optionally margin-ranked constituency
// rows.
func (s *StatsService) Constituencies(q ConstituencyQuery) ([]models.ConstituencyResult, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	rows := views.FilterConstituencies(snap.Constituencies, q.Query)
	switch {
	case q.Closest:
		rows = views.ClosestContests(rows, q.Limit)
	case q.Largest:
		rows = views.LargestMargins(rows, q.Limit)
	case q.Limit > 0 && q.Limit < len(rows):
		rows = rows[:q.Limit]
	}
	return rows, nil
}

// CompareParties builds the party-vs-party bundle. An unknown party on
// either side is a not-found error.
func (s *StatsService) CompareParties(a, b string) (*views.PartyComparison, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	stats := s.engine.PartyStats(snap.Constituencies)
	cmp, err := views.CompareParties(s.engine.Tables(), stats, snap.Constituencies, snap.Detailed, a, b)
	if err != nil {
		if stderrors.Is(err, views.ErrNoComparison) {
			return nil, errors.NotFoundf("no results for %q vs %q", a, b)
		}
		return nil, errors.Internal(err)
	}
	return cmp, nil
}

// CompareStates builds the state-vs-state bundle. An unknown state on
// either side is a not-found error.
func (s *StatsService) CompareStates(a, b string) (*views.StateComparison, error) {
	snap, err := s.datasets.Snapshot()
	if err != nil {
		return nil, err
	}

	stats := s.engine.StateStats(snap.Detailed)
	cmp, err := views.CompareStates(s.engine.Tables(), stats, snap.Detailed, a, b)
	if err != nil {
		if stderrors.Is(err, views.ErrNoComparison) {
			return nil, errors.NotFoundf("no results for %q vs %q", a, b)
		}
		return nil, errors.Internal(err)
	}
	return cmp, nil
}
