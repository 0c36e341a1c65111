// Package index keeps option sets behind a patricia trie holding every
// suffix of every normalized label, so substring lookups can skip the full
// scoring pass when they already fill the request.
package index

import (
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/bastiangx/typesift/pkg/match"
	"github.com/charmbracelet/log"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Index stores options alongside a suffix trie over their normalized
// labels. Safe for concurrent reads; writes take the exclusive lock.
//
// Indexing suffixes instead of whole labels keeps the trie walk complete:
// a query contained anywhere in a label is a prefix of one of that label's
// suffixes. Suffix storage is quadratic in label length, which is fine for
// the short labels a picker shows.
type Index struct {
	mu        sync.RWMutex
	trie      *patricia.Trie
	options   []match.Option
	cleanLens []int // rune length of each option's normalized label
	rules     []match.Rule
}

// New creates an empty index using rules for label and query normalization.
func New(rules []match.Rule) *Index {
	return &Index{
		trie:  patricia.NewTrie(),
		rules: rules,
	}
}

// Add registers an option. Malformed options (empty label or nil value) are
// stored so an empty query still returns the set untouched, but they are
// never indexed.
func (ix *Index) Add(opt match.Option) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	pos := len(ix.options)
	ix.options = append(ix.options, opt)
	ix.cleanLens = append(ix.cleanLens, 0)

	if opt.Label == "" || opt.Value == nil {
		return
	}
	clean := match.CleanText(opt.Label, ix.rules)
	if clean == "" {
		return
	}
	ix.cleanLens[pos] = utf8.RuneCountInString(clean)

	runes := []rune(clean)
	for i := range runes {
		key := patricia.Prefix(string(runes[i:]))
		if item := ix.trie.Get(key); item != nil {
			ix.trie.Set(key, append(item.([]int), pos))
		} else {
			ix.trie.Insert(key, []int{pos})
		}
	}
}

// AddAll registers every option in opts.
func (ix *Index) AddAll(opts []match.Option) {
	for _, opt := range opts {
		ix.Add(opt)
	}
}

// Len returns the number of registered options.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.options)
}

// RuleCount returns the number of normalization rules in use.
func (ix *Index) RuleCount() int {
	return len(ix.rules)
}

// Options returns a copy of the registered options in insertion order.
func (ix *Index) Options() []match.Option {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]match.Option, len(ix.options))
	copy(out, ix.options)
	return out
}

// Filter returns the options matching query, best first, at most limit
// (limit <= 0 means no cap). An empty query returns the set in insertion
// order, matching the core pipeline's identity contract.
//
// When the suffix walk under the normalized query already yields limit or
// more options, those are returned without running the scorer. That is
// sound, not just fast: every option found this way contains the query and
// scores len(query)+1/len(label), above anything the table fill can
// produce, so the walk's hits ordered by label length and insertion
// position are exactly the pipeline's leading results. Anything less falls
// back to the full fuzzy pipeline.
func (ix *Index) Filter(query string, limit int) []match.Option {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if query == "" {
		out := make([]match.Option, len(ix.options))
		copy(out, ix.options)
		return capped(out, limit)
	}

	clean := match.CleanText(query, ix.rules)
	if clean != "" && limit > 0 {
		if hits := ix.substringHits(clean); len(hits) >= limit {
			return hits[:limit]
		}
	}

	return capped(match.FilterOptions(ix.options, query, ix.rules), limit)
}

// substringHits walks the subtree under clean and collects every option
// whose normalized label contains it. A label containing the query more
// than once is reached through several suffixes, so hits are deduped by
// option position before ranking.
func (ix *Index) substringHits(clean string) []match.Option {
	seen := make(map[int]bool)

	err := ix.trie.VisitSubtree(patricia.Prefix(clean), func(p patricia.Prefix, item patricia.Item) error {
		positions, ok := item.([]int)
		if !ok {
			log.Errorf("Unknown item type: %T for key %s", item, p)
			return nil
		}
		for _, pos := range positions {
			seen[pos] = true
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	found := make([]int, 0, len(seen))
	for pos := range seen {
		found = append(found, pos)
	}
	// shorter labels score higher; equal lengths tie and keep insertion
	// order, as the stable sort in the pipeline would
	sort.Slice(found, func(i, j int) bool {
		if ix.cleanLens[found[i]] != ix.cleanLens[found[j]] {
			return ix.cleanLens[found[i]] < ix.cleanLens[found[j]]
		}
		return found[i] < found[j]
	})

	out := make([]match.Option, len(found))
	for i, pos := range found {
		out[i] = ix.options[pos]
	}
	return out
}

func capped(opts []match.Option, limit int) []match.Option {
	if limit > 0 && len(opts) > limit {
		return opts[:limit]
	}
	return opts
}
