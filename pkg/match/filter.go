package match

import "sort"

// Option is a labeled record offered to the user. Label is the text matched
// against the query; Value is an opaque identifier the pipeline never
// inspects beyond a nil check.
type Option struct {
	Label string
	Value any
}

// scoredOption pairs an option with its similarity score inside the
// pipeline. Never leaves this package.
type scoredOption struct {
	option Option
	score  float64
}

// FilterOptions returns the options whose labels read similar to filter,
// best match first. The original records come back, not normalized copies.
//
// An empty filter returns opts untouched: same slice, same order, malformed
// entries included. Otherwise options missing a label or value are dropped
// silently, every surviving label is normalized with the same rules as the
// filter and scored with TypeaheadSimilarity.
//
// The cutoff is len(cleanFilter)-2: up to two runes of subsequence
// shortfall pass, and any substring hit always does. The threshold is
// deliberately not clamped at zero, so a filter that normalizes to almost
// nothing accepts almost everything.
func FilterOptions(opts []Option, filter string, rules []Rule) []Option {
	if filter == "" {
		return opts
	}

	cleanFilter := CleanText(filter, rules)
	threshold := float64(len([]rune(cleanFilter)) - 2)

	scored := make([]scoredOption, 0, len(opts))
	for _, opt := range opts {
		if opt.Label == "" || opt.Value == nil {
			continue
		}
		score := TypeaheadSimilarity(CleanText(opt.Label, rules), cleanFilter)
		if score < threshold {
			continue
		}
		scored = append(scored, scoredOption{option: opt, score: score})
	}

	// Stable keeps input order among equal scores; callers should not
	// lean on that, the contract only promises score order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]Option, len(scored))
	for i, s := range scored {
		result[i] = s.option
	}
	return result
}
