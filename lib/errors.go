package lib

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)
