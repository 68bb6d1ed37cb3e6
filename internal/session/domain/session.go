package domain

import (
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/apperr"
)

// Session is the server-side record a signed token points at. Deleting it
// revokes the token before it expires.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	ErrSessionNotFound = apperr.New(apperr.Unauthorized, "session expired or revoked")
	ErrInvalidToken    = apperr.New(apperr.Unauthorized, "invalid or expired token")
)
