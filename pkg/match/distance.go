package match

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// turning one into the other. Lower means more similar.
//
// Shares the table shape with TypeaheadSimilarity but is a standalone
// utility; the filter pipeline never calls it.
func Distance(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	table := make([][]int, len(ar)+1)
	for x := range table {
		table[x] = make([]int, len(br)+1)
		table[x][0] = x
	}
	for y := 0; y <= len(br); y++ {
		table[0][y] = y
	}

	for x := 1; x <= len(ar); x++ {
		for y := 1; y <= len(br); y++ {
			if ar[x-1] == br[y-1] {
				table[x][y] = table[x-1][y-1]
			} else {
				table[x][y] = 1 + min(table[x][y-1], table[x-1][y], table[x-1][y-1])
			}
		}
	}
	return table[len(ar)][len(br)]
}
