package structs

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminUser is the user object returned by login and verify.
type AdminUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
