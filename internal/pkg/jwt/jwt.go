package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	ClaimSessionID = "sid"
	ClaimIsAdmin   = "is_admin"
	ClaimType      = "type"

	TokenTypeAccess = "access"

	// CookieName matches the cookie jwtauth.TokenFromCookie reads.
	CookieName = "jwt"
)

type Service interface {
	GenerateAccessToken(sessionID string) (token string, expiresAt int64, err error)
	AccessTokenTTL() time.Duration
	JWTAuth() *jwtauth.JWTAuth
	AccessTokenCookie(token string, expiresAt int64) *http.Cookie
	ClearedCookie() *http.Cookie
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
	PurgeRevoked(now time.Time) int
}

type JWTService struct {
	accessTokenTTL time.Duration
	secureCookie   bool
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]int64
	mu             sync.RWMutex
	now            func() time.Time
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration, secureCookie bool) Service {
	return &JWTService{
		accessTokenTTL: accessTokenTTL,
		secureCookie:   secureCookie,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
		now:            time.Now,
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) AccessTokenTTL() time.Duration {
	return j.accessTokenTTL
}

// GenerateAccessToken issues an admin token bound to a session id.
func (j *JWTService) GenerateAccessToken(sessionID string) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenTTL).Unix()

	claims := map[string]interface{}{
		ClaimSessionID: sessionID,
		ClaimIsAdmin:   true,
		ClaimType:      TokenTypeAccess,
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) AccessTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken remembers the token until its own expiry.
func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PurgeRevoked drops revoked tokens that have expired anyway.
func (j *JWTService) PurgeRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	n := 0
	for token, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, token)
			n++
		}
	}
	return n
}
