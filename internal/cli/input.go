// Package cli handles cmd line input and ranked matches for DBG and testing various features
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/typesift/pkg/match"
	"github.com/charmbracelet/log"
)

// InputHandler processes user queries from stdin, printing the ranked
// matches for each one. It accepts flags controlling minimum and maximum
// query length, the result limit, and score display.
type InputHandler struct {
	filter         match.IFilter
	rules          []match.Rule
	minQueryLength int
	maxQueryLength int
	matchLimit     int
	showScores     bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(filter match.IFilter, rules []match.Rule, minLength, maxLength, limit int, showScores bool) *InputHandler {
	return &InputHandler{
		filter:         filter,
		rules:          rules,
		minQueryLength: minLength,
		maxQueryLength: maxLength,
		matchLimit:     limit,
		showScores:     showScores,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed query to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	log.Print("typesift CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a query and press Enter to see the ranked options (Ctrl+C to exit):")

	for {
		log.Print("> ")
		query, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		h.handleInput(query)
	}
}

// handleInput runs a single query through the filter.
// It validates the query's length, asks the engine for matches and prints
// the results to the log.
func (h *InputHandler) handleInput(query string) {
	queryLen := utf8.RuneCountInString(query)
	if queryLen < h.minQueryLength {
		log.Errorf("Query too short: %s", query)
		return
	}
	if queryLen > h.maxQueryLength {
		log.Errorf("Query too long: %s", query)
		return
	}

	start := time.Now()
	log.Debug("Processing request for", "query", query)

	matches := h.filter.Filter(query, h.matchLimit)

	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for query '%s'", elapsed, query)

	if len(matches) == 0 {
		log.Warnf("No matches found for query: '%s'", query)
		return
	}

	log.Printf("Found %d matches for query '%s':", len(matches), query)
	cleanQuery := match.CleanText(query, h.rules)
	for i, opt := range matches {
		clLabel := fmt.Sprintf("\033[38;5;75m%s\033[0m", opt.Label)
		if h.showScores {
			score := match.TypeaheadSimilarity(match.CleanText(opt.Label, h.rules), cleanQuery)
			log.Printf("%2d. %-40s (score: %6.3f)", i+1, clLabel, score)
		} else {
			log.Printf("%2d. %-40s (value: %v)", i+1, clLabel, opt.Value)
		}
	}
}
