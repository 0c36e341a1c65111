// Package match is the core, providing the text normalization, scoring and ranking used to sift option labels against a typed query.
package match

// IFilter defines the interface for option filtering engines
type IFilter interface {
	// Filter returns the options matching query, best first, at most limit
	Filter(query string, limit int) []Option

	// Add registers an option with the engine
	Add(opt Option)

	// Len returns the number of registered options
	Len() int
}
