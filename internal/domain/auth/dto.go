package auth

import "github.com/navnirman/admin-backend-go/internal/pkg/validator"

type LoginRequest struct {
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
	DataLoaded  bool   `json:"data_loaded"`
}

type SessionResponse struct {
	SessionID       string `json:"session_id"`
	IsAuthenticated bool   `json:"is_authenticated"`
	CreatedAt       string `json:"created_at"`
	ExpiresAt       string `json:"expires_at"`
}
