package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Logout ends the session bound to the access token and revokes the token.
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, sessionID string) (SessionResponse, error)
	// ValidateSession reports whether the session id still belongs to a live admin session.
	ValidateSession(ctx context.Context, sessionID string) error
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
