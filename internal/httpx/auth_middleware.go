package httpx

import (
	"net/http"
	"strings"
)

// SessionVerifier resolves a bearer token to an authenticated user. A token
// is only valid while its session is live (login creates it, logout ends it).
type SessionVerifier interface {
	Verify(token string) (userID, role string, err error)
}

// AuthMiddleware rejects requests without a live session and stores the
// caller's identity in the request context.
func AuthMiddleware(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, role, err := verifier.Verify(token)
			if err != nil {
				JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in", nil)
				return
			}

			ctx := ContextWithUser(r.Context(), userID, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoleMiddleware gates a handler on the role stored in the context.
// Chain it after AuthMiddleware.
func RequireRoleMiddleware(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFrom(r) != role {
				JSONError(r, w, http.StatusForbidden, "FORBIDDEN", "Access denied. Admin privileges required.", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
