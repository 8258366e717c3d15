package analytics

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/electoscope/electoscope/internal/models"
	"github.com/electoscope/electoscope/internal/reference"
)

// Insights derives the narrative facts shown on the overview panel, in
// fixed order: leading party, closest contest, largest margin, the
// BJP-vs-INC seat delta, and the distinct candidate count. It is a short
// explicit list, not a rule engine; the set does not grow dynamically.
// Empty inputs produce a shorter list rather than an error.
func (e *Engine) Insights(constituencies []models.ConstituencyResult, detailed []models.DetailedResult) []models.Insight {
	insights := make([]models.Insight, 0, 5)
	partyStats := e.PartyStats(constituencies)

	if len(partyStats) > 0 {
		top := partyStats[0]
		insights = append(insights, models.Insight{
			Type:  models.InsightHighlight,
			Title: "Leading Party",
			Description: fmt.Sprintf("%s leads with %d seats (%.1f%% of total)",
				e.tables.ShortName(top.Party), top.Seats, top.Percentage),
			Value: top.Seats,
		})
	}

	if closest := minMargin(constituencies); closest != nil {
		insights = append(insights, models.Insight{
			Type:  models.InsightWarning,
			Title: "Closest Contest",
			Description: fmt.Sprintf("%s: %s won by just %s votes",
				closest.Constituency, closest.LeadingCandidate, humanize.Comma(int64(closest.Margin))),
			Value: closest.Margin,
		})
	}

	if largest := maxMargin(constituencies); largest != nil {
		insights = append(insights, models.Insight{
			Type:  models.InsightHighlight,
			Title: "Biggest Victory Margin",
			Description: fmt.Sprintf("%s: %s won by %s votes",
				largest.Constituency, largest.LeadingCandidate, humanize.Comma(int64(largest.Margin))),
			Value: largest.Margin,
		})
	}

	if len(constituencies) > 0 {
		bjp := seatsFor(partyStats, reference.PartyBJP)
		inc := seatsFor(partyStats, reference.PartyINC)
		change := 0.0
		if inc > 0 {
			change = float64(bjp-inc) / float64(inc) * 100
		}
		insights = append(insights, models.Insight{
			Type:  models.InsightComparison,
			Title: "BJP vs INC",
			Description: fmt.Sprintf("BJP leads with %d seats compared to INC's %d seats",
				bjp, inc),
			Value:  bjp - inc,
			Change: change,
		})
	}

	if len(detailed) > 0 {
		count := distinctCandidates(detailed)
		insights = append(insights, models.Insight{
			Type:  models.InsightTrend,
			Title: "Total Candidates",
			Description: fmt.Sprintf("%s candidates contested across all constituencies",
				humanize.Comma(int64(count))),
			Value: count,
		})
	}

	return insights
}

// minMargin returns the constituency with the smallest margin, first
// encountered winning ties. Strict comparison keeps zero-margin rows valid.
func minMargin(constituencies []models.ConstituencyResult) *models.ConstituencyResult {
	var best *models.ConstituencyResult
	for i := range constituencies {
		if best == nil || constituencies[i].Margin < best.Margin {
			best = &constituencies[i]
		}
	}
	return best
}

func maxMargin(constituencies []models.ConstituencyResult) *models.ConstituencyResult {
	var best *models.ConstituencyResult
	for i := range constituencies {
		if best == nil || constituencies[i].Margin > best.Margin {
			best = &constituencies[i]
		}
	}
	return best
}

func seatsFor(stats []models.PartyStats, party string) int {
	for _, s := range stats {
		if s.Party == party {
			return s.Seats
		}
	}
	return 0
}

func distinctCandidates(detailed []models.DetailedResult) int {
	seen := make(map[string]struct{}, len(detailed))
	for _, d := range detailed {
		seen[d.Candidate] = struct{}{}
	}
	return len(seen)
}
