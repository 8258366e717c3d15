package models

// ConstituencyResult is one row of the constituency summary dataset:
// the winning and runner-up candidate for a single seat.
type ConstituencyResult struct {
	Constituency      string `json:"constituency"`
	ConstNo           string `json:"const_no"`
	LeadingCandidate  string `json:"leading_candidate"`
	LeadingParty      string `json:"leading_party"`
	TrailingCandidate string `json:"trailing_candidate"`
	TrailingParty     string `json:"trailing_party"`
	Margin            int    `json:"margin"`
	Status            string `json:"status"`
}

// CandidateResult is one row of the flat candidate dataset, keyed by a
// contest-wide serial number rather than a per-constituency rank.
type CandidateResult struct {
	SN             int     `json:"sn"`
	Candidate      string  `json:"candidate"`
	Party          string  `json:"party"`
	EVMVotes       int     `json:"evm_votes"`
	PostalVotes    int     `json:"postal_votes"`
	TotalVotes     int     `json:"total_votes"`
	VotePercentage float64 `json:"vote_percentage"`
	State          string  `json:"state"`
	Constituency   string  `json:"constituency"`
}

// DetailedResult is one row per (constituency, candidate) pair, including
// every candidate, not just the top two. SlNo 1 is the constituency winner.
type DetailedResult struct {
	State       string  `json:"state"`
	PCNo        int     `json:"pc_no"`
	PCName      string  `json:"pc_name"`
	SlNo        int     `json:"sl_no"`
	Candidate   string  `json:"candidate"`
	Party       string  `json:"party"`
	EVMVotes    int     `json:"evm_votes"`
	PostalVotes int     `json:"postal_votes"`
	TotalVotes  int     `json:"total_votes"`
	VoteShare   float64 `json:"vote_share"`
}

// PartyStats is a derived per-party aggregate. Depending on which
// aggregation produced it, MarginVotes holds either summed victory margins
// (seat aggregate) or summed total votes (vote-share aggregate); see the
// analytics package for the distinction.
type PartyStats struct {
	Party       string  `json:"party"`
	Seats       int     `json:"seats"`
	MarginVotes int     `json:"votes"`
	Percentage  float64 `json:"percentage"`
	Color       string  `json:"color"`
}

// StateStats is a derived per-state aggregate over constituency winners.
type StateStats struct {
	State      string         `json:"state"`
	TotalSeats int            `json:"total_seats"`
	Parties    map[string]int `json:"parties"`
	TotalVotes int            `json:"total_votes"`
}

// Insight categories.
const (
	InsightHighlight  = "highlight"
	InsightWarning    = "warning"
	InsightTrend      = "trend"
	InsightComparison = "comparison"
)

// Insight is one narrative fact derived from the loaded dataset.
type Insight struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Value       int     `json:"value"`
	Change      float64 `json:"change,omitempty"`
}

// AskMessage is one turn of an ask-panel conversation.
type AskMessage struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}
