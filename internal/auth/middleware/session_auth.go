package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/api/http/httperr"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	sessiondomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/session/domain"
	"github.com/gin-gonic/gin"
)

// SessionResolver validates a bearer token against the session store.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*sessiondomain.Session, error)
}

// UserGetter loads the user a session belongs to.
type UserGetter interface {
	Get(ctx context.Context, id string) (*identitydomain.User, error)
}

var ErrMissingToken = sessiondomain.ErrInvalidToken

// RequireUser validates the session token and stores the user in context
func RequireUser(sessions SessionResolver, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.Write(c, ErrMissingToken)
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			httperr.Write(c, err)
			return
		}

		user, err := users.Get(c.Request.Context(), sess.UserID)
		if err != nil {
			if errors.Is(err, identitydomain.ErrUserNotFound) {
				err = sessiondomain.ErrSessionNotFound
			}
			httperr.Write(c, err)
			return
		}

		c.Set(auth.CtxUserID, user.ID)
		c.Set(auth.CtxUser, user)
		c.Set(auth.CtxSessionID, sess.ID)
		c.Set(auth.CtxToken, token)

		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.EqualFold(bearerToken[:7], "Bearer ") {
		return strings.TrimSpace(bearerToken[7:])
	}
	return ""
}
