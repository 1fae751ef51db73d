package auth

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

type session struct {
	userID    string
	role      Role
	expiresAt time.Time
}

// Service is the capability gate: it owns the user registry and the live
// sessions. Session state is explicit rather than a process-global "current
// user": login creates an entry keyed by the token's session ID and logout
// removes it.
type Service struct {
	secret string

	mu       sync.Mutex
	users    []*User
	sessions map[string]session
}

// NewService creates a capability gate with the given signing secret and two
// seeded accounts: admin (manage capability) and user1 (borrow capability).
func NewService(secret, adminPassword, userPassword string) (*Service, error) {
	s := &Service{
		secret:   secret,
		sessions: make(map[string]session),
	}
	if _, err := s.addUser("admin", "admin@library.com", adminPassword, RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := s.addUser("user1", "user1@library.com", userPassword, RoleUser); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) addUser(username, email, password string, role Role) (User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return User{}, err
	}
	u := &User{
		ID:           strconv.Itoa(len(s.users) + 1),
		Username:     username,
		Email:        email,
		Role:         role,
		CreatedAt:    time.Now(),
		passwordHash: hash,
	}
	s.users = append(s.users, u)
	return *u, nil
}

func (s *Service) findUser(username string) *User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

// Login verifies the credentials, opens a session, and returns a token bound
// to it.
func (s *Service) Login(username, password string) (string, User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.findUser(username)
	if u == nil || !VerifyPassword(u.passwordHash, password) {
		return "", User{}, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, err := GenerateToken(s.secret, u.ID, string(u.Role), sessionID, tokenTTL)
	if err != nil {
		return "", User{}, err
	}

	s.sessions[sessionID] = session{
		userID:    u.ID,
		role:      u.Role,
		expiresAt: time.Now().Add(tokenTTL),
	}
	return token, *u, nil
}

// Logout ends the session bound to the token. Logging out twice is an error
// the second time, since the session no longer exists.
func (s *Service) Logout(token string) error {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[claims.ID]; !ok {
		return ErrUnauthorized
	}
	delete(s.sessions, claims.ID)
	return nil
}

// Verify resolves a token to its user, requiring a live, unexpired session.
// It satisfies httpx.SessionVerifier.
func (s *Service) Verify(token string) (string, string, error) {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return "", "", ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[claims.ID]
	if !ok {
		return "", "", ErrUnauthorized
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, claims.ID)
		return "", "", ErrUnauthorized
	}
	return sess.userID, string(sess.role), nil
}

// CurrentUser returns the account behind a live session token.
func (s *Service) CurrentUser(token string) (User, error) {
	userID, _, err := s.Verify(token)
	if err != nil {
		return User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == userID {
			return *u, nil
		}
	}
	return User{}, ErrUnauthorized
}

// IsAuthenticated reports whether the token has a live session.
func (s *Service) IsAuthenticated(token string) bool {
	_, _, err := s.Verify(token)
	return err == nil
}

// CanBorrow reports whether the token's holder may borrow books. Any
// authenticated user qualifies.
func (s *Service) CanBorrow(token string) bool {
	return s.IsAuthenticated(token)
}

// CanManage reports whether the token's holder may create, update, or delete
// books. Only admins qualify.
func (s *Service) CanManage(token string) bool {
	_, role, err := s.Verify(token)
	return err == nil && role == string(RoleAdmin)
}

// CurrentUserID returns the id behind the token, if any.
func (s *Service) CurrentUserID(token string) (string, bool) {
	userID, _, err := s.Verify(token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// CreateUser registers a new account. Usernames are unique.
func (s *Service) CreateUser(username, email, password string, role Role) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findUser(username) != nil {
		return User{}, ErrUsernameTaken
	}
	return s.addUser(username, email, password, role)
}

// Users returns a snapshot of all registered accounts.
func (s *Service) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}
