package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
)

// SessionGuard is the slice of the auth service the middleware needs.
type SessionGuard interface {
	RequireSession() error
	Logout() error
}

// SessionMiddleware gates console routes on an authenticated session.
type SessionMiddleware struct {
	guard  SessionGuard
	logger zerolog.Logger
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(guard SessionGuard, logger zerolog.Logger) *SessionMiddleware {
	return &SessionMiddleware{guard: guard, logger: logger}
}

// Required rejects requests when no valid session exists. The session is
// re-read from its store first so a logout in another process is honoured.
func (m *SessionMiddleware) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.guard.RequireSession(); err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Next()
	}
}

// ExpireOnUnauthorized ends the session once the backend rejects its token.
func (m *SessionMiddleware) ExpireOnUnauthorized() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			if errors.Is(ginErr.Err, apperrors.ErrUnauthorized) && !errors.Is(ginErr.Err, apperrors.ErrInvalidCredentials) {
				m.logger.Warn().Str("path", c.FullPath()).Msg("Backend rejected the session token, logging out")
				if err := m.guard.Logout(); err != nil {
					m.logger.Error().Err(err).Msg("Failed to clear expired session")
				}
				return
			}
		}
	}
}
