package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
)

// SampleBooks returns the four-book fixture used across query tests: years
// 1925, 1960, 1949, 2008 and genres Fiction, Fiction, Dystopian, Programming.
func SampleBooks() []book.CreateParams {
	rating := func(v float64) *float64 { return &v }
	return []book.CreateParams{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "9780743273565", PublishedYear: 1925, Genre: "Fiction", Rating: rating(4.5)},
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780061120084", PublishedYear: 1960, Genre: "Fiction", Rating: rating(4.8)},
		{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", PublishedYear: 1949, Genre: "Dystopian"},
		{Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", PublishedYear: 2008, Genre: "Programming", Rating: rating(4.2)},
	}
}

// NewAuthService builds a capability gate with known test credentials.
func NewAuthService(t *testing.T) *auth.Service {
	t.Helper()
	svc, err := auth.NewService("test-secret", "admin-pass-123", "user-pass-123")
	if err != nil {
		t.Fatalf("cannot build auth service: %v", err)
	}
	return svc
}

// LoginAs logs the seeded account in and returns a live session token.
func LoginAs(t *testing.T, svc *auth.Service, username string) string {
	t.Helper()
	password := "user-pass-123"
	if username == "admin" {
		password = "admin-pass-123"
	}
	token, _, err := svc.Login(username, password)
	if err != nil {
		t.Fatalf("cannot log in as %s: %v", username, err)
	}
	return token
}

// NewRequest creates an HTTP request with an optional JSON body.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates an HTTP request carrying a bearer token.
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordedResponse is a decoded test response.
type RecordedResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse decodes the recorder's body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordedResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		_ = json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordedResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
