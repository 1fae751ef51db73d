package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"libraryapi/internal/httpx"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New()
)

// Handler exposes login/logout and account administration over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler creates the auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// Login handles POST /v1/auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "username and password are required", nil)
		return
	}

	token, user, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
		return
	}
	httpx.JSONSuccess(r, w, loginResponse{Token: token, User: user})
}

// Logout handles POST /v1/auth/logout. It ends the session behind the bearer
// token.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in", nil)
		return
	}
	if err := h.svc.Logout(token); err != nil {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in", nil)
		return
	}
	httpx.JSONSuccess(r, w, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /v1/auth/me.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CurrentUser(bearerToken(r))
	if err != nil {
		httpx.JSONError(r, w, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in", nil)
		return
	}
	httpx.JSONSuccess(r, w, user)
}

// CreateUser handles POST /v1/auth/users (admin only).
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid user fields", nil)
		return
	}

	role := Role(req.Role)
	if role == "" {
		role = RoleUser
	}

	user, err := h.svc.CreateUser(req.Username, req.Email, req.Password, role)
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			httpx.JSONError(r, w, http.StatusConflict, "CONFLICT", "Username already taken", nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred", nil)
		return
	}
	httpx.JSONSuccessCreated(r, w, user)
}

// ListUsers handles GET /v1/auth/users (admin only).
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(r, w, h.svc.Users())
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
