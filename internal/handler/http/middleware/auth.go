package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
	"github.com/navnirman/admin-backend-go/internal/pkg/jwt"
)

type sessionIDKey struct{}

// RawToken returns the bearer token the request was authenticated with.
func RawToken(r *http.Request) string {
	if t := jwtauth.TokenFromHeader(r); t != "" {
		return t
	}
	return jwtauth.TokenFromCookie(r)
}

// SessionID returns the admin session id stored by AuthRequired.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionIDKey{}).(string)
	return sid
}

// AuthRequired accepts only unrevoked access tokens whose session is still live.
func AuthRequired(jwtService jwt.Service, authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims[jwt.ClaimType].(string)
			if !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(RawToken(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			sessionID, _ := claims[jwt.ClaimSessionID].(string)
			if err := authService.ValidateSession(r.Context(), sessionID); err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
