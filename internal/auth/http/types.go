package http

import (
	"time"

	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/domain"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{
		authService: authService,
	}
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResp struct {
	UID       string    `json:"uid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toAuthResp(r *domain.AuthResult) authResp {
	return authResp{
		UID:       r.User.ID,
		Name:      r.User.Name,
		Email:     r.User.Email,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}
