package auth

import "errors"

// Messages are part of the wire contract; the SPA matches on them.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingBearer      = errors.New("missing bearer")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
