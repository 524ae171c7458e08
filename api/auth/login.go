package auth

import (
	"errors"
	"net/http"

	"elsabor_server/lib"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// Login handles POST /api/auth/login. A successful login returns the static
// admin token; failed credentials never reveal which part was wrong.
func (arm *AuthRoutesManager) Login(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid request body"),
			gecho.Send(),
		)
		return
	}

	if body.Username == "" || body.Password == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Username and password are required"),
			gecho.Send(),
		)
		return
	}

	user, err := arm.authService.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, lib.ErrInvalidCredentials) {
			gecho.Unauthorized(w,
				gecho.WithMessage("Invalid credentials"),
				gecho.Send(),
			)
			return
		}
		arm.logger.Error("Login failed", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to verify credentials: "+err.Error()),
			gecho.Send(),
		)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(map[string]any{
			"token": lib.AdminToken,
			"user":  user,
		}),
		gecho.Send(),
	)
}
