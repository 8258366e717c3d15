package parser

import (
	"github.com/electoscope/electoscope/internal/models"
)

// Field tables for the three published export shapes. The matchers mirror
// the headers the Election Commission exports have used across vintages;
// substring matching absorbs the punctuation drift between them.

var constituencyFields = []field{
	{"constituency", equals("Constituency")},
	{"const_no", contains("Const. No")},
	{"leading_candidate", contains("Leading Candidate")},
	{"leading_party", contains("Leading Party")},
	{"trailing_candidate", contains("Trailing Candidate")},
	{"trailing_party", contains("Trailing Party")},
	{"margin", contains("Margin")},
	{"status", contains("Status")},
}

var candidateFields = []field{
	{"sn", contains("S.N")},
	{"candidate", equals("Candidate")},
	{"party", contains("Party")},
	{"evm_votes", contains("EVM Votes")},
	{"postal_votes", contains("Postal Votes")},
	{"total_votes", contains("Total Votes")},
	{"vote_percentage", contains("% of Votes")},
	{"state", contains("State")},
	{"constituency", contains("Constituency")},
}

var detailedFields = []field{
	{"state", contains("State")},
	{"pc_no", contains("PC No")},
	{"pc_name", contains("PC Name")},
	{"sl_no", contains("Sl no")},
	{"candidate", contains("Candidate")},
	{"party", contains("Party")},
	{"evm_votes", contains("EVM Votes")},
	{"postal_votes", contains("Postal Votes")},
	{"total_votes", contains("Total Votes")},
	{"vote_share", contains("Vote Share")},
}

// Constituencies parses the constituency summary export. Rows without a
// constituency name are dropped; input order is preserved.
func Constituencies(text string) ([]models.ConstituencyResult, error) {
	headers, rows, err := readRows(text)
	if err != nil {
		return nil, err
	}
	cols := resolve(headers, constituencyFields)

	results := make([]models.ConstituencyResult, 0, len(rows))
	for _, row := range rows {
		name := cols.get(row, "constituency")
		if name == "" {
			continue
		}
		results = append(results, models.ConstituencyResult{
			Constituency:      name,
			ConstNo:           cols.get(row, "const_no"),
			LeadingCandidate:  cols.get(row, "leading_candidate"),
			LeadingParty:      cols.get(row, "leading_party"),
			TrailingCandidate: cols.get(row, "trailing_candidate"),
			TrailingParty:     cols.get(row, "trailing_party"),
			Margin:            parseInt(cols.get(row, "margin")),
			Status:            cols.get(row, "status"),
		})
	}
	return results, nil
}

// Candidates parses the flat candidate export. Rows without a candidate
// name are dropped.
func Candidates(text string) ([]models.CandidateResult, error) {
	headers, rows, err := readRows(text)
	if err != nil {
		return nil, err
	}
	cols := resolve(headers, candidateFields)

	results := make([]models.CandidateResult, 0, len(rows))
	for _, row := range rows {
		name := cols.get(row, "candidate")
		if name == "" {
			continue
		}
		results = append(results, models.CandidateResult{
			SN:             parseInt(cols.get(row, "sn")),
			Candidate:      name,
			Party:          cols.get(row, "party"),
			EVMVotes:       parseInt(cols.get(row, "evm_votes")),
			PostalVotes:    parseInt(cols.get(row, "postal_votes")),
			TotalVotes:     parseInt(cols.get(row, "total_votes")),
			VotePercentage: parseFloat(cols.get(row, "vote_percentage")),
			State:          cols.get(row, "state"),
			Constituency:   cols.get(row, "constituency"),
		})
	}
	return results, nil
}

// Detailed parses the per-constituency-per-candidate export. Rows without
// a candidate name are dropped.
func Detailed(text string) ([]models.DetailedResult, error) {
	headers, rows, err := readRows(text)
	if err != nil {
		return nil, err
	}
	cols := resolve(headers, detailedFields)

	results := make([]models.DetailedResult, 0, len(rows))
	for _, row := range rows {
		name := cols.get(row, "candidate")
		if name == "" {
			continue
		}
		results = append(results, models.DetailedResult{
			State:       cols.get(row, "state"),
			PCNo:        parseInt(cols.get(row, "pc_no")),
			PCName:      cols.get(row, "pc_name"),
			SlNo:        parseInt(cols.get(row, "sl_no")),
			Candidate:   name,
			Party:       cols.get(row, "party"),
			EVMVotes:    parseInt(cols.get(row, "evm_votes")),
			PostalVotes: parseInt(cols.get(row, "postal_votes")),
			TotalVotes:  parseInt(cols.get(row, "total_votes")),
			VoteShare:   parseFloat(cols.get(row, "vote_share")),
		})
	}
	return results, nil
}
