package auth

import "context"

type AuthService interface {
	// Login verifies the credentials and mints a signed session token.
	// Sessions are stateless; nothing is persisted.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	// Me returns the authenticated user's profile joined with their
	// employee record, if one is linked.
	Me(ctx context.Context) (ProfileResponse, error)
}
