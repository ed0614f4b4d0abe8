package auth

import "errors"

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrConnectionFailed = errors.New("connection to login service failed")
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrSessionNotFound  = errors.New("session not found")
	ErrAdminRequired    = errors.New("admin privilege required")
)
