package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/doctor-channel/internal/session"
	apperrors "github.com/jwalitptl/doctor-channel/pkg/errors"
	"github.com/jwalitptl/doctor-channel/pkg/httputil"
)

var (
	errMissingToken  = errors.New("missing authorization header")
	errInvalidFormat = errors.New("invalid authorization format")
	errAdminRequired = errors.New("admin role required")
)

// TokenValidator turns a bearer token into a session.
type TokenValidator interface {
	ValidateToken(token string) (*session.Session, error)
}

type AuthMiddleware struct {
	tokens TokenValidator
}

func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate attaches the caller's session to the request context when an
// Authorization header is present. Anonymous requests pass through; a bad
// token is rejected.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httputil.RespondWithError(c, apperrors.Unauthorized(errInvalidFormat))
			return
		}

		sess, err := m.tokens.ValidateToken(parts[1])
		if err != nil {
			httputil.RespondWithError(c, err)
			return
		}

		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Set("user_id", sess.UserID)
		c.Next()
	}
}

// RequireAuth rejects requests without a session.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := session.FromContext(c.Request.Context()); !ok {
			httputil.RespondWithError(c, apperrors.Unauthorized(errMissingToken))
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := session.FromContext(c.Request.Context())
		if !ok {
			httputil.RespondWithError(c, apperrors.Unauthorized(errMissingToken))
			return
		}
		if !sess.IsAdmin() {
			httputil.RespondWithError(c, apperrors.Forbidden(errAdminRequired))
			return
		}
		c.Next()
	}
}
