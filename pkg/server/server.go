package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/typesift/pkg/config"
	"github.com/bastiangx/typesift/pkg/index"
	"github.com/charmbracelet/log"

	"github.com/vmihailenco/msgpack/v5"
)

// request is the decode envelope for every incoming message; dispatch looks
// at which fields are set.
type request struct {
	ID       string `msgpack:"id"`
	Query    string `msgpack:"q"`
	Limit    int    `msgpack:"l"`
	Action   string `msgpack:"action"`
	MaxLimit *int   `msgpack:"max_limit"`
	MinQuery *int   `msgpack:"min_query"`
	MaxQuery *int   `msgpack:"max_query"`
}

// Server handles the IPC for option filtering
type Server struct {
	index      *index.Index
	config     *config.Config
	configPath string
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
}

// NewServer creates a filtering server using stdin/stdout for IPC
func NewServer(ix *index.Index, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(ix, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams, mainly for tests
func NewServerWithIO(ix *index.Index, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		index:      ix,
		config:     cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var req request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Reading from stdin: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches a decoded message
func (s *Server) handleRequest(req request) {
	if req.Action != "" {
		s.handleControl(req)
		return
	}
	s.handleFilter(req)
}

// handleFilter validates the query, runs the index and sends the ranked
// matches with microsecond timing
func (s *Server) handleFilter(req request) {
	query := req.Query
	queryLen := utf8.RuneCountInString(query)

	if queryLen < s.config.Server.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("Query must be at least %d characters", s.config.Server.MinQuery), 400)
		log.Debug("Query too short in request")
		return
	}
	if queryLen > s.config.Server.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		log.Debug("Query too long in request")
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.config.CLI.DefaultLimit
	}
	if limit > s.config.Server.MaxLimit {
		limit = s.config.Server.MaxLimit
	}

	start := time.Now()
	matched := s.index.Filter(query, limit)
	elapsed := time.Since(start)

	matches := make([]FilterMatch, len(matched))
	for i, opt := range matched {
		matches[i] = FilterMatch{
			Label: opt.Label,
			Value: opt.Value,
			// ranks are 1-based display positions, capped well below
			// uint16 range by MaxLimit
			Rank: uint16(i + 1),
		}
	}

	s.send(FilterResponse{
		ID:        req.ID,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleControl processes management actions
func (s *Server) handleControl(req request) {
	switch req.Action {
	case "get_info":
		s.send(ControlResponse{
			ID:          req.ID,
			Status:      "ok",
			OptionCount: s.index.Len(),
			RuleCount:   s.index.RuleCount(),
		})
	case "set_limits":
		if err := s.config.Update(s.configPath, req.MaxLimit, req.MinQuery, req.MaxQuery); err != nil {
			log.Errorf("Updating config: %v", err)
			s.send(ControlResponse{ID: req.ID, Status: "error", Error: err.Error()})
			return
		}
		s.send(ControlResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown action: %s", req.Action), 400)
	}
}

// send encodes one response object onto the stream
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(FilterError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
