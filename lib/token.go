package lib

// AdminToken is the single opaque bearer token granted on a successful admin
// login. There is no expiry, no per-user token and no revocation; verify is a
// plain string comparison against this constant.
const AdminToken = "elsabor-admin-token"

// VerifyToken reports whether token is the one literal produced by login.
func VerifyToken(token string) bool {
	return token == AdminToken
}
