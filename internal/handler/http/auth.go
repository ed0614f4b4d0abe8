package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/navnirman/admin-backend-go/internal/domain/auth"
	"github.com/navnirman/admin-backend-go/internal/handler/http/middleware"
	"github.com/navnirman/admin-backend-go/internal/handler/http/response"
	"github.com/navnirman/admin-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.AccessTokenCookie(loginResp.AccessToken, loginResp.ExpiresAt))

	message := "Admin logged in successfully"
	if !loginResp.DataLoaded {
		message = "Admin logged in, but payroll data could not be loaded"
	}
	response.Created(w, message, loginResp)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.authService.Logout(r.Context(), middleware.RawToken(r)); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ClearedCookie())
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Session implements AuthHandler.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	session, err := a.authService.Session(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, session)
}
