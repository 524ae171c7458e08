package auth

import (
	"net/http"

	"elsabor_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

// Verify handles GET /api/auth/verify. It always answers 200; the body says
// whether the presented bearer token is the admin token.
func (arm *AuthRoutesManager) Verify(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r)
	user, ok := arm.authService.VerifyToken(token)
	if !ok {
		gecho.Success(w,
			gecho.WithData(map[string]any{
				"valid": false,
			}),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"valid": true,
			"user":  user,
		}),
		gecho.Send(),
	)
}
