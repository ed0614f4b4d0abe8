package memory

import (
	"context"
	"sync"
	"time"

	"github.com/navnirman/admin-backend-go/internal/domain/auth"
)

// SessionRepository keeps admin sessions in process memory. Sessions are lost
// on restart; use the postgresql store when that matters.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]auth.Session
}

var _ auth.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]auth.Session)}
}

func (r *SessionRepository) Create(ctx context.Context, session auth.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (auth.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return auth.Session{}, auth.ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return auth.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.sessions {
		if s.IsAuthenticated && !s.Expired(now) {
			n++
		}
	}
	return n, nil
}
