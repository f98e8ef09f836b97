package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest captures what the client sent for later assertions.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	Body          []byte
}

// MockAPI is a stub JustBidIt backend. Tests register canned responses per
// "METHOD /path" and inspect the recorded requests afterwards.
type MockAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	responses map[string]mockResponse
	requests  []RecordedRequest
}

type mockResponse struct {
	status int
	body   string
}

// NewMockAPI starts a stub backend; it is shut down with the test.
func NewMockAPI(t *testing.T) *MockAPI {
	t.Helper()
	m := &MockAPI{responses: make(map[string]mockResponse)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Server.Close)
	return m
}

// URL returns the base URL of the stub backend.
func (m *MockAPI) URL() string {
	return m.Server.URL
}

// Respond registers a canned response for "METHOD /path".
func (m *MockAPI) Respond(route string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[route] = mockResponse{status: status, body: body}
}

// Requests returns every request seen so far.
func (m *MockAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest returns the most recent request, or nil when none was made.
func (m *MockAPI) LastRequest() *RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	r := m.requests[len(m.requests)-1]
	return &r
}

func (m *MockAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          body,
	})
	resp, ok := m.responses[r.Method+" "+r.URL.Path]
	m.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"no stub for ` + r.Method + " " + r.URL.Path + `"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}
