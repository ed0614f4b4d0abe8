package auth

import "time"

// Session - Admin login state. Created on successful login, removed on logout.
type Session struct {
	ID              string
	IsAuthenticated bool
	CreatedAt       time.Time
	ExpiresAt       time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
