package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ferrisbain/puzzlekit/pkg/solver"
)

// Server handles the IPC for one solver instance at a time.
type Server struct {
	vocab  []string
	oracle solver.FrequencyOracle
	solver *solver.Solver
	dec    *msgpack.Decoder
	enc    *msgpack.Encoder
}

// NewServer creates a solver server using stdin/stdout for IPC.
func NewServer(vocab []string, oracle solver.FrequencyOracle) (*Server, error) {
	return NewServerWithIO(vocab, oracle, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a solver server over the given streams.
func NewServerWithIO(vocab []string, oracle solver.FrequencyOracle, in io.Reader, out io.Writer) (*Server, error) {
	s, err := solver.New(vocab, oracle)
	if err != nil {
		return nil, err
	}
	return &Server{
		vocab:  vocab,
		oracle: oracle,
		solver: s,
		dec:    msgpack.NewDecoder(in),
		enc:    msgpack.NewEncoder(out),
	}, nil
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting solver server.")

	s.sendResponse(Response{Status: "ready", Remaining: s.solver.Remaining()})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a single decoded request.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "guess":
		s.handleGuess(request)
	case "feedback":
		s.handleFeedback(request)
	case "recommend":
		s.handleRecommend(request)
	case "state":
		s.sendState(request.ID, 0)
	case "reset":
		s.handleReset(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

func (s *Server) handleGuess(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}
	s.solver.SubmitGuess(request.Word)
	s.sendState(request.ID, 0)
}

func (s *Server) handleFeedback(request Request) {
	fb, err := solver.ParseFeedback(request.Key)
	if err != nil {
		s.sendError(request.ID, err.Error(), 400)
		log.Debugf("Bad feedback key %q: %v", request.Key, err)
		return
	}

	start := time.Now()
	err = s.solver.ApplyFeedback(fb)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			s.sendError(request.ID, "no candidates remaining", 404)
		} else {
			s.sendError(request.ID, err.Error(), 400)
		}
		return
	}
	s.sendState(request.ID, elapsed.Microseconds())
}

func (s *Server) handleRecommend(request Request) {
	limit := request.Limit
	if limit < 1 {
		limit = 1
	}

	start := time.Now()
	ranked, err := s.solver.TopRecommendations(limit)
	elapsed := time.Since(start)

	if err != nil {
		s.sendError(request.ID, "no candidates remaining", 404)
		return
	}

	recs := make([]Recommendation, len(ranked))
	for i, r := range ranked {
		recs[i] = Recommendation{Word: r.Word, Score: r.Score}
	}
	s.sendResponse(Response{
		ID:              request.ID,
		Status:          "ok",
		Recommendations: recs,
		Remaining:       s.solver.Remaining(),
		Guesses:         s.solver.Guesses(),
		TimeTaken:       elapsed.Microseconds(),
	})
}

func (s *Server) handleReset(request Request) {
	fresh, err := solver.New(s.vocab, s.oracle)
	if err != nil {
		s.sendError(request.ID, err.Error(), 500)
		return
	}
	s.solver = fresh
	s.sendState(request.ID, 0)
}

func (s *Server) sendState(id string, took int64) {
	s.sendResponse(Response{
		ID:        id,
		Status:    "ok",
		Remaining: s.solver.Remaining(),
		Guesses:   s.solver.Guesses(),
		TimeTaken: took,
	})
}

// sendResponse encodes a response onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error payload.
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
