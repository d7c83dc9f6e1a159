// package oraclemock implements an in-process oracle REST service for testing purposes.
package oraclemock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/IntersectLabs/supra-oracle-pull/types"
)

// ProofPath is the path the oracle serves proofs on.
const ProofPath = "/get_proof"

// Reply is the canned answer of the mock oracle.
type Reply struct {
	StatusCode int
	Body       string
}

// Server is a mock oracle. It answers every `/get_proof` call with the reply registered for
// the requested chain type, or the default reply.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	replies  map[types.ChainType]Reply
	fallback Reply
	requests []types.PullRequest
	rawBody  [][]byte
}

// NewServer starts a mock oracle which is closed when the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		replies:  map[types.ChainType]Reply{},
		fallback: Reply{StatusCode: http.StatusNotFound, Body: `{"error":"no reply registered"}`},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)

	return s
}

// Reply registers the answer for a chain type.
func (s *Server) Reply(chainType types.ChainType, statusCode int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replies[chainType] = Reply{StatusCode: statusCode, Body: body}

	return s
}

// ReplyAll registers the answer used for chain types without a registered reply.
func (s *Server) ReplyAll(statusCode int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fallback = Reply{StatusCode: statusCode, Body: body}

	return s
}

// Requests returns the decoded requests received so far.
func (s *Server) Requests() []types.PullRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.PullRequest, len(s.requests))
	copy(out, s.requests)

	return out
}

// RawBodies returns the request bodies received so far, undecoded.
func (s *Server) RawBodies() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([][]byte, len(s.rawBody))
	copy(out, s.rawBody)

	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != ProofPath || r.Method != http.MethodPost {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req types.PullRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.rawBody = append(s.rawBody, body)
	reply, ok := s.replies[req.ChainType]
	if !ok {
		reply = s.fallback
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.StatusCode)
	_, _ = io.WriteString(w, reply.Body)
}
