package domain

import (
	"context"

	"github.com/google/uuid"
)

// Session identifies the actor a request is made on behalf of.
type Session struct {
	UserID   uuid.UUID
	UserName string
}

// Valid reports whether the session names a user.
func (s Session) Valid() bool {
	return s.UserID != uuid.Nil
}

type sessionKey struct{}

// WithSession stores s in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by WithSession.
func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
