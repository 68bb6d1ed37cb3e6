package auth

import (
	"strings"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxUser      = "user"
	CtxSessionID = "session_id"
	CtxToken     = "session_token"
)

var ErrUserMismatch = apperr.New(apperr.Forbidden, "user_uid does not match the authenticated user")

// UserID extracts the authenticated user's id from the Gin context.
// This is set by middleware.RequireUser
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// CurrentUser returns the authenticated user, or nil outside RequireUser.
func CurrentUser(c *gin.Context) *identitydomain.User {
	v, ok := c.Get(CtxUser)
	if !ok {
		return nil
	}
	u, _ := v.(*identitydomain.User)
	return u
}

// Token returns the bearer token the request was authenticated with.
func Token(c *gin.Context) string {
	return c.GetString(CtxToken)
}

// CheckClaimedUser accepts a client-supplied user_uid only when it is empty or
// names the authenticated user. The actor always comes from the session.
func CheckClaimedUser(c *gin.Context, claimed string) error {
	claimed = strings.TrimSpace(claimed)
	if claimed != "" && claimed != UserID(c) {
		return ErrUserMismatch
	}
	return nil
}
