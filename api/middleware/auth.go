package middleware

import (
	"context"
	"net/http"
	"strings"

	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing user data in request context
type contextKey string

const UserContextKey contextKey = "user"

// BearerAuthMiddleware protects admin routes. The token is extracted from the
// Authorization header and compared against the single admin token; no detail
// about the failure reason is leaked to the caller.
func (mw *Middleware) BearerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractBearerToken(r)
		user, ok := mw.verifier.VerifyToken(token)
		if !ok {
			mw.logger.Warn("Rejected request with missing or invalid token", gecho.Field("path", r.URL.Path))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractBearerToken pulls the token out of an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or malformed.
func ExtractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// GetUserFromContext is a helper function to extract the user from request context
func GetUserFromContext(ctx context.Context) (*structs.AdminUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*structs.AdminUser)
	return user, ok
}
