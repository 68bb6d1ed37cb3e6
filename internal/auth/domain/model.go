package domain

import (
	"time"

	identitydomain "github.com/GoSim-25-26J-441/taskboard-backend/internal/identity/domain"
)

// AuthResult is returned by register and login: the user plus a fresh session token.
type AuthResult struct {
	User      *identitydomain.User
	Token     string
	ExpiresAt time.Time
}
