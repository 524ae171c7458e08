package auth

import (
	"context"

	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AuthService is the slice of the service layer these handlers need.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*structs.AdminUser, error)
	VerifyToken(token string) (*structs.AdminUser, bool)
}

type AuthRoutesManager struct {
	logger      *gecho.Logger
	authService AuthService
}

func NewAuthRoutesManager(logger *gecho.Logger, authService AuthService) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:      logger,
		authService: authService,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", arm.Login)
		r.Get("/verify", arm.Verify)
	})
}
