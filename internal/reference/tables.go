// Package reference holds static enrichment tables: party display metadata
// and prior-election results used by comparison views.
//
// Lookups are exact-match only. Source exports spell the same party several
// ways across vintages (double spaces, shifted punctuation), and those
// spellings are deliberately kept as distinct keys; correctness elsewhere
// depends on the exact strings. Misses degrade to generated fallbacks.
package reference

import "strings"

// DefaultColor is returned for parties without a registered color.
const DefaultColor = "hsl(220, 10%, 50%)"

// maxAbbrevLen caps generated party abbreviations.
const maxAbbrevLen = 5

// PriorResult is one party's result in the prior election.
type PriorResult struct {
	Seats     int
	VoteShare float64
}

// PriorStateResult is one state's seat distribution in the prior election.
type PriorStateResult struct {
	State      string         `json:"state"`
	TotalSeats int            `json:"total_seats"`
	Parties    map[string]int `json:"parties"`
}

// Tables is an immutable set of enrichment lookups, built once and injected
// wherever aggregates are enriched. Swap in a custom instance per test.
type Tables struct {
	shortNames map[string]string
	colors     map[string]string
	prior      map[string]PriorResult
	priorState map[string]PriorStateResult
}

// New builds a Tables from the given maps. The maps are copied so later
// mutation by the caller cannot leak in.
func New(shortNames, colors map[string]string, prior map[string]PriorResult, priorState map[string]PriorStateResult) *Tables {
	return &Tables{
		shortNames: copyMap(shortNames),
		colors:     copyMap(colors),
		prior:      copyMap(prior),
		priorState: copyMap(priorState),
	}
}

// Default returns the built-in tables for the 2024 general election with
// 2019 as the prior election.
func Default() *Tables {
	return New(partyShortNames, partyColors, prior2019, state2019)
}

// ShortName returns the registered display abbreviation for a party, or a
// generated one (first letter of each word, capped) on a miss.
func (t *Tables) ShortName(party string) string {
	if short, ok := t.shortNames[party]; ok {
		return short
	}
	return Abbreviate(party)
}

// Color returns the registered display color for a party, or DefaultColor.
func (t *Tables) Color(party string) string {
	if color, ok := t.colors[party]; ok {
		return color
	}
	return DefaultColor
}

// PriorSeats returns a party's seat count in the prior election, 0 on miss.
func (t *Tables) PriorSeats(party string) int {
	return t.prior[party].Seats
}

// PriorVoteShare returns a party's vote share in the prior election,
// 0 on miss.
func (t *Tables) PriorVoteShare(party string) float64 {
	return t.prior[party].VoteShare
}

// PriorState returns a state's prior-election seat distribution. The map
// in the returned value is a copy.
func (t *Tables) PriorState(state string) (PriorStateResult, bool) {
	r, ok := t.priorState[state]
	if !ok {
		return PriorStateResult{}, false
	}
	r.Parties = copyMap(r.Parties)
	return r, true
}

// Abbreviate builds a deterministic fallback abbreviation: the first letter
// of each whitespace-delimited word, truncated to maxAbbrevLen runes.
func Abbreviate(party string) string {
	var b strings.Builder
	for _, word := range strings.Fields(party) {
		r := []rune(word)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
		if b.Len() >= maxAbbrevLen {
			break
		}
	}
	abbrev := []rune(b.String())
	if len(abbrev) > maxAbbrevLen {
		abbrev = abbrev[:maxAbbrevLen]
	}
	return string(abbrev)
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
