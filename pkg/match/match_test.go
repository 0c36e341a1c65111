package match

import (
	"fmt"
	"testing"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input       string
		expected    string
		description string
	}{
		{"", "", "Empty input"},
		{"hello", "HELLO", "Plain word uppercased"},
		{"Scoil Bhríde Primary School", "SCOILBHRÍDEPRIMARYSCHOOL", "Accented letter preserved, spaces stripped"},
		{"foo-bar_baz.qux", "FOOBARBAZQUX", "Punctuation and underscore stripped"},
		{"café !!", "CAFÉ", "Accents kept, symbols dropped"},
		{"user42", "USER42", "Digits kept"},
		{"   ", "", "Whitespace only"},
		{"!@#$%", "", "Symbols only"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := CleanText(tc.input, nil)
			if got != tc.expected {
				t.Errorf("CleanText(%q): expected %q, got %q", tc.input, tc.expected, got)
			}
		})
	}
}

// normalization must be a fixpoint: cleaning a cleaned string changes nothing
func TestCleanTextIdempotent(t *testing.T) {
	inputs := []string{
		"Scoil Bhríde Primary School",
		"Wallenberg High",
		"foo_bar-42!",
		"",
	}
	for _, input := range inputs {
		once := CleanText(input, nil)
		twice := CleanText(once, nil)
		if once != twice {
			t.Errorf("CleanText not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestCleanTextRuleOrder(t *testing.T) {
	// second rule must see the first rule's output
	rules := []Rule{
		MustRule("PH", "F"),
		MustRule("F", "V"),
	}
	got := CleanText("Phone", rules)
	if got != "VONE" {
		t.Errorf("Expected ordered rules to yield 'VONE', got %q", got)
	}
}

func TestCleanTextRuleReplacesAll(t *testing.T) {
	rules := []Rule{MustRule("S", "Z")}
	got := CleanText("sassafras", rules)
	if got != "ZAZZAFRAZ" {
		t.Errorf("Expected every match replaced, got %q", got)
	}
}

func TestNewRuleRejectsBadPattern(t *testing.T) {
	if _, err := NewRule("[unclosed", "X"); err == nil {
		t.Error("Expected an error for a malformed pattern")
	}
}

func TestTypeaheadSimilarity(t *testing.T) {
	testCases := []struct {
		a           string
		b           string
		expected    float64
		description string
	}{
		{"", "ANYTHING", 0, "Empty first argument"},
		{"ANYTHING", "", 0, "Empty second argument"},
		{"WALLENBERG", "WABERG", 6, "Subsequence credit without the extra letters"},
		{"WABERG", "WALLENBERG", 6, "Swap keeps the same score"},
		{"WALLENBERG HIGH", "WALLENBERG", 10 + 1.0/15.0, "Substring bonus beats the plain score"},
		{"ABC", "XYZ", 0, "No common runes"},
		{"SAME", "SAME", 4 + 1.0/4.0, "Identical strings hit the substring branch"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := TypeaheadSimilarity(tc.a, tc.b)
			if got != tc.expected {
				t.Errorf("TypeaheadSimilarity(%q, %q): expected %v, got %v", tc.a, tc.b, tc.expected, got)
			}
		})
	}
}

func TestTypeaheadSimilaritySymmetry(t *testing.T) {
	// symmetric whenever neither side contains the other
	pairs := [][2]string{
		{"WALLENBERG", "WABERG"},
		{"KITTEN", "SITTING"},
		{"ORANGE", "ORNGEA"},
	}
	for _, p := range pairs {
		ab := TypeaheadSimilarity(p[0], p[1])
		ba := TypeaheadSimilarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity not symmetric for %q/%q: %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestSubstringBonusPrefersShorterCandidate(t *testing.T) {
	query := "WALLENBERG"
	short := TypeaheadSimilarity("WALLENBERG HIGH", query)
	long := TypeaheadSimilarity("WALLENBERG HIGH SCHOOL", query)

	if short <= float64(len(query)) {
		t.Errorf("Substring score %v should exceed plain score %d", short, len(query))
	}
	if long >= short {
		t.Errorf("Longer candidate scored %v, should rank below shorter candidate %v", long, short)
	}
	if short >= float64(len(query))+1 {
		t.Errorf("Bonus crossed into the next score band: %v", short)
	}
}

func TestDistance(t *testing.T) {
	testCases := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"book", "back", 2},
		{"book", "books", 1},
		{"hello", "hallo", 1},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s→%s", tc.a, tc.b), func(t *testing.T) {
			dist := Distance(tc.a, tc.b)
			if dist != tc.expected {
				t.Errorf("Expected distance %d, got %d", tc.expected, dist)
			}
		})
	}
}

func TestDistanceProperties(t *testing.T) {
	words := []string{"", "a", "typeahead", "Bhríde"}
	for _, w := range words {
		if d := Distance(w, w); d != 0 {
			t.Errorf("Distance(%q, %q) = %d, expected 0", w, w, d)
		}
	}
	if Distance("kitten", "sitting") != Distance("sitting", "kitten") {
		t.Error("Distance should be symmetric")
	}
}

func TestFilterOptionsEmptyFilter(t *testing.T) {
	opts := []Option{
		{Label: "Foo", Value: 1},
		{Label: "", Value: 2},
		{Label: "Bar", Value: nil},
	}
	got := FilterOptions(opts, "", nil)
	if len(got) != len(opts) {
		t.Fatalf("Empty filter should return all %d options, got %d", len(opts), len(got))
	}
	for i := range opts {
		if got[i] != opts[i] {
			t.Errorf("Option %d reordered or changed: %+v", i, got[i])
		}
	}
}

func TestFilterOptionsDropsMalformed(t *testing.T) {
	opts := []Option{
		{Label: "Foo", Value: 1},
		{Label: "", Value: 2},
		{Label: "Foo", Value: nil},
	}
	got := FilterOptions(opts, "Foo", nil)
	if len(got) != 1 {
		t.Fatalf("Expected 1 option, got %d", len(got))
	}
	if got[0].Value != 1 {
		t.Errorf("Expected the well-formed option back, got %+v", got[0])
	}
}

func TestFilterOptionsRanking(t *testing.T) {
	opts := []Option{
		{Label: "Wallenberg High School", Value: "whs"},
		{Label: "Waberg High School", Value: "wab"},
		{Label: "Wallenberg", Value: "wal"},
	}
	got := FilterOptions(opts, "wallenberg", nil)

	// threshold is 8; Waberg's subsequence credit of 6 falls short
	if len(got) != 2 {
		t.Fatalf("Expected 2 options, got %d: %+v", len(got), got)
	}
	if got[0].Value != "wal" || got[1].Value != "whs" {
		t.Errorf("Expected shorter substring match first, got %+v", got)
	}
}

func TestFilterOptionsThresholdTolerance(t *testing.T) {
	opts := []Option{{Label: "Wallenberg", Value: 1}}
	// WABERG scores 6 against WALLENBERG, threshold is 6-2=4
	got := FilterOptions(opts, "waberg", nil)
	if len(got) != 1 {
		t.Errorf("Expected a two-rune shortfall to pass the threshold, got %d options", len(got))
	}
}

// a filter that normalizes away entirely drives the threshold negative and
// lets every well-formed option through
func TestFilterOptionsPermissiveShortFilter(t *testing.T) {
	opts := []Option{
		{Label: "Alpha", Value: 1},
		{Label: "Beta", Value: 2},
		{Label: "", Value: 3},
	}
	got := FilterOptions(opts, "!!", nil)
	if len(got) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(got))
	}
}

func TestFilterOptionsAppliesRulesToBothSides(t *testing.T) {
	rules := []Rule{MustRule("PH", "F")}
	opts := []Option{{Label: "Foto", Value: 1}}
	got := FilterOptions(opts, "photo", rules)
	if len(got) != 1 {
		t.Errorf("Expected rule-normalized filter to match, got %d options", len(got))
	}
}

func BenchmarkTypeaheadSimilarity(b *testing.B) {
	pairs := [][2]string{
		{"WALLENBERG HIGH SCHOOL", "WALENBuerg"},
		{"SCOILBHRÍDEPRIMARYSCHOOL", "SCOILBRIDE"},
		{"INTERNATIONAL", "INTRNATIONAL"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pairs[i%len(pairs)]
		TypeaheadSimilarity(p[0], p[1])
	}
}

func BenchmarkFilterOptions(b *testing.B) {
	opts := make([]Option, 1000)
	for i := range opts {
		opts[i] = Option{Label: fmt.Sprintf("School District %d", i), Value: i}
	}
	queries := []string{"school", "district 42", "shcool", "dstrct"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FilterOptions(opts, queries[i%len(queries)], nil)
	}
}
