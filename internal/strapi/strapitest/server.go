// Package strapitest runs an in-process fake of the Strapi REST endpoints
// the site uses. It understands populate, $eq filters and pagination[limit],
// records every request and can be told to fail or stall per resource.
package strapitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
)

// Token is the bearer token the fake expects.
const Token = "test-token"

// Request is a recorded call.
type Request struct {
	Method   string
	Resource string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

// Server is the fake CMS.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	singles     map[string]map[string]any
	failures    map[string]int
	delays      map[string]time.Duration
	requests    []Request
	submissions []map[string]any
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		collections: map[string][]map[string]any{},
		singles:     map[string]map[string]any{},
		failures:    map[string]int{},
		delays:      map[string]time.Duration{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Config returns CMS settings pointing at the fake.
func (s *Server) Config() runtimeconfig.CMSConfig {
	return runtimeconfig.CMSConfig{
		BaseURL:     s.URL,
		Token:       Token,
		Timeout:     2 * time.Second,
		UploadsPath: "/uploads",
	}
}

// SetCollection replaces the records served for resource. Items are any
// JSON-encodable value; content types and plain maps both work.
func (s *Server) SetCollection(resource string, items ...any) {
	encoded := make([]map[string]any, 0, len(items))
	for _, item := range items {
		encoded = append(encoded, toMap(item))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[resource] = encoded
}

// SetSingle sets the record served for a single type.
func (s *Server) SetSingle(resource string, item any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.singles[resource] = toMap(item)
}

// Fail makes resource answer with status until cleared with status 0.
func (s *Server) Fail(resource string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.failures, resource)
		return
	}
	s.failures[resource] = status
}

// Delay stalls responses for resource, honouring request cancellation.
func (s *Server) Delay(resource string, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[resource] = d
}

// Requests returns a copy of the recorded requests.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsFor filters Requests by resource.
func (s *Server) RequestsFor(resource string) []Request {
	var out []Request
	for _, req := range s.Requests() {
		if req.Resource == resource {
			out = append(out, req)
		}
	}
	return out
}

// Submissions returns the data objects posted to form-submissions.
func (s *Server) Submissions() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.submissions...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	resource := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:   r.Method,
		Resource: resource,
		Query:    r.URL.Query(),
		Header:   r.Header.Clone(),
		Body:     body,
	})
	status := s.failures[resource]
	delay := s.delays[resource]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	if r.Header.Get("Authorization") != "Bearer "+Token {
		writeError(w, http.StatusUnauthorized, "Missing or invalid credentials")
		return
	}
	if status != 0 {
		writeError(w, status, "Injected failure")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.serveRead(w, r, resource)
	case http.MethodPost:
		s.serveWrite(w, resource, body)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) serveRead(w http.ResponseWriter, r *http.Request, resource string) {
	s.mu.Lock()
	items, isCollection := s.collections[resource]
	single, isSingle := s.singles[resource]
	s.mu.Unlock()

	switch {
	case isCollection:
		matched := filter(items, r.URL.Query())
		total := len(matched)
		if limit, err := strconv.Atoi(r.URL.Query().Get("pagination[limit]")); err == nil && limit >= 0 && limit < len(matched) {
			matched = matched[:limit]
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"data": matched,
			"meta": map[string]any{"pagination": map[string]any{"total": total}},
		})
	case isSingle:
		writeJSON(w, http.StatusOK, map[string]any{"data": single, "meta": map[string]any{}})
	default:
		writeError(w, http.StatusNotFound, "Not Found")
	}
}

func (s *Server) serveWrite(w http.ResponseWriter, resource string, body []byte) {
	if resource != "form-submissions" {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	var payload struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Data == nil {
		writeError(w, http.StatusBadRequest, "Missing \"data\" payload in the request body")
		return
	}

	s.mu.Lock()
	s.submissions = append(s.submissions, payload.Data)
	id := len(s.submissions)
	s.mu.Unlock()

	record := map[string]any{"id": id, "documentId": fmt.Sprintf("sub-%d", id)}
	for key, value := range payload.Data {
		record[key] = value
	}
	writeJSON(w, http.StatusCreated, map[string]any{"data": record, "meta": map[string]any{}})
}

var filterKey = regexp.MustCompile(`^filters\[([^\]]+)\]\[\$eq\]$`)

func filter(items []map[string]any, query url.Values) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if matches(item, query) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item map[string]any, query url.Values) bool {
	for key, values := range query {
		found := filterKey.FindStringSubmatch(key)
		if found == nil {
			continue
		}
		value, ok := item[found[1]]
		if !ok || fmt.Sprint(value) != values[0] {
			return false
		}
	}
	return true
}

func toMap(item any) map[string]any {
	if m, ok := item.(map[string]any); ok {
		return m
	}
	raw, err := json.Marshal(item)
	if err != nil {
		panic(fmt.Sprintf("strapitest: encode fixture: %v", err))
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(fmt.Sprintf("strapitest: fixture must encode to an object: %v", err))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"data": nil,
		"error": map[string]any{
			"status":  status,
			"name":    http.StatusText(status),
			"message": message,
		},
	})
}
