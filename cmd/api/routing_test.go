package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
	"libraryapi/internal/testutil"
)

func newTestRouter(t *testing.T) (http.Handler, *auth.Service) {
	t.Helper()

	authService := testutil.NewAuthService(t)
	catalogService := book.NewService(book.NewMemoryRepository())

	return routes(book.NewHandler(catalogService), auth.NewHandler(authService), authService), authService
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestManageRequiresAdmin(t *testing.T) {
	router, authService := newTestRouter(t)

	body := map[string]interface{}{
		"title":          "1984",
		"author":         "George Orwell",
		"isbn":           "9780451524935",
		"published_year": 1949,
		"genre":          "Dystopian",
	}

	// No token: not logged in.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/books", body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Regular user: authenticated but not allowed to manage.
	userToken := testutil.LoginAs(t, authService, "user1")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books", body, userToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin: allowed.
	adminToken := testutil.LoginAs(t, authService, "admin")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books", body, adminToken))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBorrowFlow(t *testing.T) {
	router, authService := newTestRouter(t)

	adminToken := testutil.LoginAs(t, authService, "admin")
	userToken := testutil.LoginAs(t, authService, "user1")

	// Admin creates a book.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books", map[string]interface{}{
		"title":          "The Great Gatsby",
		"author":         "F. Scott Fitzgerald",
		"isbn":           "9780743273565",
		"published_year": 1925,
		"genre":          "Fiction",
	}, adminToken))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)
	bookID := resp.Body["data"].(map[string]interface{})["id"].(string)

	// Anonymous borrow is rejected and the catalog stays untouched.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/books/"+bookID+"/borrow", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A logged-in user borrows it.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books/"+bookID+"/borrow", nil, userToken))
	resp = testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	data := resp.Body["data"].(map[string]interface{})
	assert.Equal(t, false, data["available"])

	// Borrowing again conflicts.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books/"+bookID+"/borrow", nil, adminToken))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Return it.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books/"+bookID+"/return", nil, userToken))
	assert.Equal(t, http.StatusOK, w.Code)

	// After logout the token no longer works.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/auth/logout", nil, userToken))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/v1/books/"+bookID+"/borrow", nil, userToken))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOpenReadEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []string{
		"/v1/books",
		"/v1/catalog/stats",
		"/v1/catalog/genres",
		"/v1/catalog/authors",
		"/v1/catalog/popular",
		"/v1/catalog/recent",
		"/v1/catalog/available",
		"/v1/catalog/borrowed",
		"/v1/catalog/overdue",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestAuthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	// Bad credentials.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	}))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Good credentials.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/v1/auth/login", map[string]string{
		"username": "admin",
		"password": "admin-pass-123",
	}))
	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	token := resp.Body["data"].(map[string]interface{})["token"].(string)

	// The token identifies the admin.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/v1/auth/me", nil, token))
	resp = testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "admin", resp.Body["data"].(map[string]interface{})["username"])

	// User administration is admin-gated.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/v1/auth/users", nil, token))
	assert.Equal(t, http.StatusOK, w.Code)
}
