package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/pkg/database"
)

const sessionSchema = `
	CREATE TABLE IF NOT EXISTS admin_sessions (
		id               UUID PRIMARY KEY,
		is_authenticated BOOLEAN NOT NULL DEFAULT TRUE,
		created_at       TIMESTAMPTZ NOT NULL,
		expires_at       TIMESTAMPTZ NOT NULL
	)
`

const sessionExpiryIndex = `
	CREATE INDEX IF NOT EXISTS admin_sessions_expires_at_idx ON admin_sessions (expires_at)
`

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) auth.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// EnsureSessionSchema creates the admin_sessions table when it does not exist.
func EnsureSessionSchema(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(ctx context.Context) error {
		q := GetQuerier(ctx, db)
		if _, err := q.Exec(ctx, sessionSchema); err != nil {
			return fmt.Errorf("create admin_sessions: %w", err)
		}
		if _, err := q.Exec(ctx, sessionExpiryIndex); err != nil {
			return fmt.Errorf("create admin_sessions index: %w", err)
		}
		return nil
	})
}

func (r *sessionRepositoryImpl) Create(ctx context.Context, session auth.Session) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO admin_sessions (id, is_authenticated, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := q.Exec(ctx, query, session.ID, session.IsAuthenticated, session.CreatedAt.UTC(), session.ExpiresAt.UTC())
	return err
}

func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Session, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT id::text, is_authenticated, created_at, expires_at
		FROM admin_sessions
		WHERE id::text = $1
	`
	var s auth.Session
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.IsAuthenticated, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Session{}, auth.ErrSessionNotFound
		}
		return auth.Session{}, err
	}
	return s, nil
}

func (r *sessionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM admin_sessions WHERE id::text = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, `DELETE FROM admin_sessions WHERE expires_at <= $1`, now.UTC())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *sessionRepositoryImpl) CountActive(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT COUNT(*)
		FROM admin_sessions
		WHERE is_authenticated AND expires_at > $1
	`
	var n int64
	if err := q.QueryRow(ctx, query, now.UTC()).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
