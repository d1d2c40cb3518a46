// Package session carries the authenticated caller of a request.
package session

import (
	"context"

	"github.com/jwalitptl/doctor-channel/internal/model"
)

// Session identifies the caller of one request.
type Session struct {
	UserID string
	Email  string
	Role   model.Role
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == model.RoleAdmin
}

// CanAccessUser reports whether the caller may read data owned by userID.
func (s *Session) CanAccessUser(userID string) bool {
	return s != nil && (s.IsAdmin() || s.UserID == userID)
}

type contextKey struct{}

// NewContext returns ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session on ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(contextKey{}).(*Session)
	return s, ok && s != nil
}
