package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	// Login verifies credentials and issues access and refresh tokens.
	// The refresh token travels in an HTTP-only cookie, not the body.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)
	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, error)
}
