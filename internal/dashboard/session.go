// Package dashboard is the admin-side client for the dealership backend:
// a typed HTTP client for the /admin surface, an explicit login session, a
// controller holding the panel's state machine, and an ordered image set
// used while composing a listing. The admin CLI (cmd/admin) drives it; the
// package itself renders nothing.
package dashboard

import "sync"

// Session holds the admin bearer token in memory. It is an explicit object
// injected into the client and controller rather than ambient state; tokens
// never touch disk. Logging out is discarding the token — the backend keeps
// no server-side session.
type Session struct {
	mu    sync.RWMutex
	token string
}

// NewSession returns an empty (logged-out) session.
func NewSession() *Session { return &Session{} }

// Token returns the current bearer token, or "" when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Valid reports whether a token is present. It says nothing about server-side
// expiry; an expired token surfaces as ErrUnauthorized on the next call.
func (s *Session) Valid() bool { return s.Token() != "" }

// set stores a freshly issued token.
func (s *Session) set(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear logs the session out.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
