package session

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cerberus/internal/backend"
)

// Session holds the bearer credential for the process lifetime. It is
// acquired once at startup and never refreshed or expired client-side;
// a failed acquisition leaves the session unauthenticated, which is a
// supported degraded mode rather than an error.
type Session struct {
	client   *backend.Client
	username string
	password string
	token    string
}

func New(client *backend.Client, username, password string) *Session {
	return &Session{client: client, username: username, password: password}
}

// Acquire attempts one credential-issuing call. On any failure it logs
// a warning and keeps the session unauthenticated. There is no retry.
func (s *Session) Acquire(ctx context.Context) {
	token, err := s.client.Login(ctx, s.username, s.password)
	if err != nil {
		log.Warnf("Auth unavailable, proceeding unauthenticated: %v", err)
		return
	}
	s.token = token
	log.Info("Acquired moderation session token")
}

// Token returns the held credential, or "" when unauthenticated.
func (s *Session) Token() string { return s.token }

// Authenticated reports whether a credential was acquired.
func (s *Session) Authenticated() bool { return s.token != "" }
