package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
	"libraryapi/internal/httpx"
)

// routes wires every endpoint onto the router. Capability gating follows the
// two-role model: borrow/return/rate need any authenticated user, catalog
// management needs an admin, reads are open.
func routes(bookHandler *book.Handler, authHandler *auth.Handler, authService *auth.Service) http.Handler {
	router := httprouter.New()

	requireAuth := httpx.AuthMiddleware(authService)
	requireAdmin := func(next http.Handler) http.Handler {
		return requireAuth(httpx.RequireRoleMiddleware(string(auth.RoleAdmin))(next))
	}

	router.HandlerFunc(http.MethodGet, "/v1/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandlerFunc(http.MethodPost, "/v1/auth/login", authHandler.Login)
	router.HandlerFunc(http.MethodPost, "/v1/auth/logout", authHandler.Logout)
	router.HandlerFunc(http.MethodGet, "/v1/auth/me", authHandler.Me)
	router.Handler(http.MethodPost, "/v1/auth/users", requireAdmin(http.HandlerFunc(authHandler.CreateUser)))
	router.Handler(http.MethodGet, "/v1/auth/users", requireAdmin(http.HandlerFunc(authHandler.ListUsers)))

	router.HandlerFunc(http.MethodGet, "/v1/books", bookHandler.Search)
	router.Handler(http.MethodPost, "/v1/books", requireAdmin(http.HandlerFunc(bookHandler.Create)))
	router.HandlerFunc(http.MethodGet, "/v1/books/:id", bookHandler.GetByID)
	router.Handler(http.MethodPatch, "/v1/books/:id", requireAdmin(http.HandlerFunc(bookHandler.Update)))
	router.Handler(http.MethodDelete, "/v1/books/:id", requireAdmin(http.HandlerFunc(bookHandler.Delete)))

	router.Handler(http.MethodPost, "/v1/books/:id/borrow", requireAuth(http.HandlerFunc(bookHandler.Borrow)))
	router.Handler(http.MethodPost, "/v1/books/:id/return", requireAuth(http.HandlerFunc(bookHandler.Return)))
	router.Handler(http.MethodPost, "/v1/books/:id/rating", requireAuth(http.HandlerFunc(bookHandler.Rate)))

	router.HandlerFunc(http.MethodGet, "/v1/catalog/stats", bookHandler.Stats)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/genres", bookHandler.Genres)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/authors", bookHandler.Authors)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/popular", bookHandler.Popular)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/recent", bookHandler.Recent)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/available", bookHandler.Available)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/borrowed", bookHandler.Borrowed)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/overdue", bookHandler.Overdue)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/by-title", bookHandler.ByTitle)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/by-author", bookHandler.ByAuthor)
	router.HandlerFunc(http.MethodGet, "/v1/catalog/by-genre", bookHandler.ByGenre)

	return router
}
