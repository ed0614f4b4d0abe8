package auth

import (
	"context"
	"time"
)

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// CountActive counts authenticated sessions that have not expired at now.
	CountActive(ctx context.Context, now time.Time) (int64, error)
}

// PasswordVerifier checks the shared admin password.
// A wrong password is reported as (false, nil); errors mean the check itself could not run.
type PasswordVerifier interface {
	VerifyAdminPassword(ctx context.Context, password string) (bool, error)
}
