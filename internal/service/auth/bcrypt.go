package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"golang.org/x/crypto/bcrypt"
)

// BcryptVerifier checks the admin password against a configured bcrypt hash.
// It is used when the workbook data source has no login action of its own.
type BcryptVerifier struct {
	hash []byte
}

var _ auth.PasswordVerifier = (*BcryptVerifier)(nil)

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

func (v *BcryptVerifier) VerifyAdminPassword(ctx context.Context, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("invalid admin password hash: %w", err)
}
