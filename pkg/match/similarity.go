package match

import "strings"

// TypeaheadSimilarity scores how well the shorter of a and b reads as a
// subsequence of the longer one. Higher is more similar; zero means no
// overlap or an empty argument.
//
// An exact substring hit short-circuits the table fill and returns
// len(short) + 1/len(long). That lands above any plain subsequence score
// for the same query, and among substring hits the shorter candidate wins.
// The fractional part never reaches 1, so it cannot cross into the next
// integer score band.
//
// Comparison is rune-exact; callers are expected to CleanText both sides
// first.
func TypeaheadSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	longer, shorter := []rune(a), []rune(b)
	if len(longer) < len(shorter) {
		longer, shorter = shorter, longer
	}
	if strings.Contains(string(longer), string(shorter)) {
		return float64(len(shorter)) + 1/float64(len(longer))
	}
	return float64(subsequenceLength(longer, shorter))
}

// subsequenceLength fills the standard longest-common-subsequence table.
// Row 0 and column 0 stay zero; a matching rune pair extends the diagonal,
// anything else carries the better neighbor forward.
func subsequenceLength(a, b []rune) int {
	table := make([][]int, len(a)+1)
	for x := range table {
		table[x] = make([]int, len(b)+1)
	}
	for x := 1; x <= len(a); x++ {
		for y := 1; y <= len(b); y++ {
			if a[x-1] == b[y-1] {
				table[x][y] = table[x-1][y-1] + 1
			} else {
				table[x][y] = max(table[x][y-1], table[x-1][y])
			}
		}
	}
	return table[len(a)][len(b)]
}
