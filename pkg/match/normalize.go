package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is a single substitution step in normalization: a compiled pattern
// and the literal text that replaces every match. Rules are applied in
// order, each one over the output of the one before it.
type Rule struct {
	re      *regexp.Regexp
	replace string
}

// NewRule compiles pattern into a substitution rule.
// A malformed pattern is a configuration error and is returned to the caller.
func NewRule(pattern, replacement string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("compiling rule pattern %q: %w", pattern, err)
	}
	return Rule{re: re, replace: replacement}, nil
}

// MustRule is like NewRule but panics on a malformed pattern.
// Meant for rules written as literals in code.
func MustRule(pattern, replacement string) Rule {
	rule, err := NewRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return rule
}

// Pattern returns the rule's pattern source.
func (r Rule) Pattern() string {
	return r.re.String()
}

// Replacement returns the rule's literal replacement text.
func (r Rule) Replacement() string {
	return r.replace
}

func (r Rule) apply(s string) string {
	return r.re.ReplaceAllLiteralString(s, r.replace)
}

// keepRune reports whether a rune survives normalization once the input is
// uppercased. The 'À'..'Ü' range keeps Latin-1 accented letters that the
// alphanumeric check would otherwise strip. Underscore falls through.
func keepRune(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z') || (r >= 'À' && r <= 'Ü')
}

// CleanText uppercases input, strips every rune that keepRune rejects, then
// applies each rule in turn against the running result. Empty input is
// returned as is.
func CleanText(input string, rules []Rule) string {
	if input == "" {
		return ""
	}
	upper := strings.ToUpper(input)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if keepRune(r) {
			b.WriteRune(r)
		}
	}
	text := b.String()
	for _, rule := range rules {
		text = rule.apply(text)
	}
	return text
}
