package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/pkg/jwt"
	"github.com/navnirman/admin-backend-go/internal/service/snapshot"
)

// DataSnapshot is the payroll snapshot loaded at login and dropped when the
// last session logs out.
type DataSnapshot interface {
	Refresh(ctx context.Context) (snapshot.Snapshot, error)
	Clear()
}

type AuthServiceImpl struct {
	verifier auth.PasswordVerifier
	sessions auth.SessionRepository
	jwt.Service
	data DataSnapshot
	now  func() time.Time
}

func NewAuthService(verifier auth.PasswordVerifier, sessions auth.SessionRepository, jwtService jwt.Service, data DataSnapshot) auth.AuthService {
	return &AuthServiceImpl{
		verifier: verifier,
		sessions: sessions,
		Service:  jwtService,
		data:     data,
		now:      time.Now,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	ok, err := a.verifier.VerifyAdminPassword(ctx, req.Password)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidPassword
	}

	now := a.now()
	session := auth.Session{
		ID:              uuid.NewString(),
		IsAuthenticated: true,
		CreatedAt:       now,
		ExpiresAt:       now.Add(a.AccessTokenTTL()),
	}
	if err := a.sessions.Create(ctx, session); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create session: %w", err)
	}

	token, expiresAt, err := a.GenerateAccessToken(session.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	resp := auth.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}

	// The session stays valid when the first load fails; the admin can retry with a refresh.
	if _, err := a.data.Refresh(ctx); err != nil {
		slog.Warn("initial data load failed", "session_id", session.ID, "error", err)
	} else {
		resp.DataLoaded = true
	}

	slog.Info("admin logged in", "session_id", session.ID, "data_loaded", resp.DataLoaded)
	return resp, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	decoded, err := a.JWTAuth().Decode(token)
	if err != nil {
		return auth.ErrInvalidToken
	}

	sid, _ := decoded.Get(jwt.ClaimSessionID)
	sessionID, _ := sid.(string)
	if sessionID != "" {
		if err := a.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
			return fmt.Errorf("failed to delete session: %w", err)
		}
	}

	a.RevokeToken(token, decoded.Expiration().Unix())

	// Other admins may still be reading the snapshot.
	active, err := a.sessions.CountActive(ctx, a.now())
	switch {
	case err != nil:
		slog.Warn("could not count active sessions, keeping payroll data", "error", err)
	case active == 0:
		a.data.Clear()
	}

	slog.Info("admin logged out", "session_id", sessionID, "active_sessions", active)
	return nil
}

// Session implements auth.AuthService.
func (a *AuthServiceImpl) Session(ctx context.Context, sessionID string) (auth.SessionResponse, error) {
	session, err := a.liveSession(ctx, sessionID)
	if err != nil {
		return auth.SessionResponse{}, err
	}
	return auth.SessionResponse{
		SessionID:       session.ID,
		IsAuthenticated: session.IsAuthenticated,
		CreatedAt:       session.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:       session.ExpiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// ValidateSession implements auth.AuthService.
func (a *AuthServiceImpl) ValidateSession(ctx context.Context, sessionID string) error {
	_, err := a.liveSession(ctx, sessionID)
	return err
}

// PurgeExpiredSessions implements auth.AuthService.
func (a *AuthServiceImpl) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	now := a.now()
	n, err := a.sessions.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	a.PurgeRevoked(now)
	return n, nil
}

func (a *AuthServiceImpl) liveSession(ctx context.Context, sessionID string) (auth.Session, error) {
	if sessionID == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}
	session, err := a.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return auth.Session{}, err
	}
	if !session.IsAuthenticated {
		return auth.Session{}, auth.ErrAdminRequired
	}
	if session.Expired(a.now()) {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return session, nil
}
