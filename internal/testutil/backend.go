// Package testutil provides a stand-in rewards backend for handler and
// client tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Response is what the fake backend answers on one path.
type Response struct {
	Status int
	Body   string
}

// Backend serves canned JSON per path and counts hits.
type Backend struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	hits      map[string]int
}

// NewBackend starts a fake backend that is closed when the test ends. Paths
// without a canned response answer 404.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		responses: make(map[string]Response),
		hits:      make(map[string]int),
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)
	return b
}

func (b *Backend) Respond(path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[path] = Response{Status: status, Body: body}
}

func (b *Backend) JSON(path, body string) {
	b.Respond(path, http.StatusOK, body)
}

func (b *Backend) Hits(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[path]
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.hits[r.URL.Path]++
	resp, ok := b.responses[r.URL.Path]
	b.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	w.Write([]byte(resp.Body))
}
