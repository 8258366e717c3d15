package reference

import "testing"

func TestShortName_Registered(t *testing.T) {
	tables := Default()

	tests := []struct {
		party string
		want  string
	}{
		{"Bharatiya Janata Party", "BJP"},
		{"Indian National Congress", "INC"},
		{"Nationalist Congress Party – Sharadchandra Pawar", "NCP-SP"},
	}

	for _, tt := range tests {
		if got := tables.ShortName(tt.party); got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.party, got, tt.want)
		}
	}
}

func TestShortName_FallbackAbbreviation(t *testing.T) {
	tables := Default()

	tests := []struct {
		party string
		want  string
	}{
		{"Some Brand New Party", "SBNP"},
		{"One Two Three Four Five Six Seven", "OTTFF"}, // capped at 5
		{"Single", "S"},
	}

	for _, tt := range tests {
		got := tables.ShortName(tt.party)
		if got != tt.want {
			t.Errorf("ShortName(%q) = %q, want %q", tt.party, got, tt.want)
		}
		if got == "" {
			t.Errorf("ShortName(%q) returned empty abbreviation", tt.party)
		}
	}
}

func TestColor_DefaultOnMiss(t *testing.T) {
	tables := Default()

	if got := tables.Color("Bharatiya Janata Party"); got != "hsl(24, 95%, 53%)" {
		t.Errorf("unexpected BJP color: %q", got)
	}
	if got := tables.Color("Unknown Party"); got != DefaultColor {
		t.Errorf("expected default color on miss, got %q", got)
	}
}

func TestPriorLookups_ExactMatchOnly(t *testing.T) {
	tables := Default()

	// The double-spaced key is the real one; the single-spaced variant is a
	// different string and must miss. No fuzzy matching.
	if got := tables.PriorSeats("Janata Dal  (United)"); got != 16 {
		t.Errorf("expected 16 seats for double-spaced key, got %d", got)
	}
	if got := tables.PriorSeats("Janata Dal (United)"); got != 0 {
		t.Errorf("expected single-spaced variant to miss, got %d", got)
	}
	if got := tables.PriorVoteShare("Bharatiya Janata Party"); got != 37.36 {
		t.Errorf("expected 37.36 vote share, got %v", got)
	}
	if got := tables.PriorVoteShare("No Such Party"); got != 0 {
		t.Errorf("expected 0 on miss, got %v", got)
	}
}

func TestPriorState(t *testing.T) {
	tables := Default()

	r, ok := tables.PriorState("Uttar Pradesh")
	if !ok {
		t.Fatal("expected Uttar Pradesh to be present")
	}
	if r.TotalSeats != 80 {
		t.Errorf("expected 80 seats, got %d", r.TotalSeats)
	}

	// Returned map is a copy; mutating it must not leak into the tables
	r.Parties["BJP"] = 0
	r2, _ := tables.PriorState("Uttar Pradesh")
	if r2.Parties["BJP"] != 62 {
		t.Errorf("tables mutated through returned map: got %d", r2.Parties["BJP"])
	}

	if _, ok := tables.PriorState("Atlantis"); ok {
		t.Error("expected unknown state to miss")
	}
}

func TestNew_CopiesInputMaps(t *testing.T) {
	shorts := map[string]string{"Party A": "PA"}
	tables := New(shorts, nil, nil, nil)

	shorts["Party A"] = "XX"
	if got := tables.ShortName("Party A"); got != "PA" {
		t.Errorf("tables mutated through input map: got %q", got)
	}
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Aam Aadmi Party", "AAP"},
		{"Janata Dal  (United)", "JD("}, // double space collapses via Fields
		{"", ""},
	}

	for _, tt := range tests {
		if got := Abbreviate(tt.in); got != tt.want {
			t.Errorf("Abbreviate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
