package session

import (
	"context"
	"time"
)

// Lifetime is how long a session record and its cookie stay valid after the
// last write.
const Lifetime = 365 * 24 * time.Hour

// Record is the server-side state a session token maps to.
type Record struct {
	UserID int64 `json:"userId"`
}

// Session is explicit per-request session state. It is created by the HTTP
// middleware, handed to resolvers through the request context, and persisted
// by the middleware once the response is written. Mutations only mark the
// session dirty; nothing touches the store until the request finishes.
type Session struct {
	token     string
	record    Record
	dirty     bool
	destroyed bool
}

// New returns an empty session with no backing record.
func New() *Session {
	return &Session{}
}

// Resume wraps a record loaded from the store for an existing token.
func Resume(token string, record Record) *Session {
	return &Session{token: token, record: record}
}

func (s *Session) Token() string { return s.token }

// AdoptToken assigns a freshly minted token to a session that has none yet.
func (s *Session) AdoptToken(token string) {
	if s.token == "" {
		s.token = token
	}
}

// UserID reports the logged-in user, if any.
func (s *Session) UserID() (int64, bool) {
	if s.destroyed || s.record.UserID == 0 {
		return 0, false
	}
	return s.record.UserID, true
}

// SetUserID logs a user into the session.
func (s *Session) SetUserID(id int64) {
	s.record.UserID = id
	s.dirty = true
	s.destroyed = false
}

// Destroy schedules the session record and cookie for removal.
func (s *Session) Destroy() {
	s.record = Record{}
	s.dirty = false
	s.destroyed = true
}

func (s *Session) Record() Record  { return s.record }
func (s *Session) Dirty() bool     { return s.dirty }
func (s *Session) Destroyed() bool { return s.destroyed }

type contextKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext extracts the session placed by the middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok
}
