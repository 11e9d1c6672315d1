package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spksaw/backend/internal/auth/middleware"
	"github.com/spksaw/backend/internal/auth/token"
	"github.com/spksaw/backend/internal/models"
	"github.com/spksaw/backend/internal/services"
	"go.uber.org/zap"
)

// Messages of the auth endpoints
const (
	MessageLoginSuccess    = "Login berhasil"
	MessageLogoutSuccess   = "Berhasil logout"
	MessageValidationError = "Data tidak valid"
)

// credentialFailure is the response for a rejected login
type credentialFailure struct {
	message string
	field   string
	detail  string
}

var credentialFailures = map[error]credentialFailure{
	services.ErrUnknownEmail:    {message: "Email tidak ditemukan", field: "email", detail: "Email tidak terdaftar dalam sistem"},
	services.ErrAccountDisabled: {message: "Akun tidak aktif", field: "email", detail: "Akun Anda telah dinonaktifkan"},
	services.ErrWrongPassword:   {message: "Password salah", field: "password", detail: "Password yang Anda masukkan salah"},
}

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login validates the credentials and issues a session token.
	//
	// "req" parameter contains email and password.
	//
	// A *services.ValidationError is returned for malformed input, and one of
	// services.ErrUnknownEmail, services.ErrAccountDisabled or services.ErrWrongPassword for rejected credentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error)
	// Method Refresh revokes "token" and issues a new one for the same user that expires strictly later.
	//
	// If the token is expired, malformed or revoked, the error wraps token.ErrTokenExpired or token.ErrInvalidToken.
	Refresh(ctx context.Context, token string) (*models.TokenResponse, error)
	// Method Logout revokes "token" until its original expiry.
	Logout(ctx context.Context, token string) error
	// Method Me returns user "userID" with its school relation.
	//
	// If the user no longer exists, services.ErrUnauthenticated is returned.
	Me(ctx context.Context, userID int) (*models.UserDetail, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Post("/refresh", h.Refresh)
			r.Get("/me", h.Me)
		})
	})
}

// Login handles POST /auth/login
// @Summary Login user
// @Description Authenticate with email and password. Returns a bearer token and the user profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} Response{data=models.TokenResponse} "Login berhasil"
// @Failure 401 {object} Response "Email tidak ditemukan, akun tidak aktif atau password salah"
// @Failure 422 {object} Response "Data tidak valid"
// @Failure 500 {object} Response "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := decodeLoginRequest(r)

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		h.respondLoginError(w, r, err)
		return
	}

	h.RespondSuccess(w, MessageLoginSuccess, resp)
}

// decodeLoginRequest reads JSON or form bodies; an unreadable body yields an empty request
func decodeLoginRequest(r *http.Request) *models.LoginRequest {
	req := &models.LoginRequest{}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") || strings.HasPrefix(contentType, "multipart/form-data") {
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
		return req
	}

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return &models.LoginRequest{}
	}
	return req
}

func (h *AuthHandler) respondLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		h.RespondFieldErrors(w, http.StatusUnprocessableEntity, MessageValidationError, validationErr.Fields)
		return
	}

	for sentinel, failure := range credentialFailures {
		if errors.Is(err, sentinel) {
			h.Logger.Info("login rejected", zap.String("reason", sentinel.Error()))
			h.RespondFieldErrors(w, http.StatusUnauthorized, failure.message, map[string][]string{
				failure.field: {failure.detail},
			})
			return
		}
	}

	h.RespondServerError(w, r, "failed to login user", err)
}

// Logout handles POST /auth/logout
// @Summary Logout user
// @Description Revoke the current bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Berhasil logout"
// @Failure 401 {object} Response "Tidak terautentikasi"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	raw, ok := middleware.GetToken(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageUnauthenticated)
		return
	}

	if err := h.authService.Logout(r.Context(), raw); err != nil {
		h.respondTokenError(w, r, "failed to logout user", err)
		return
	}

	h.RespondSuccess(w, MessageLogoutSuccess, nil)
}

// Refresh handles POST /auth/refresh
// @Summary Refresh token
// @Description Exchange the current bearer token for a new one. The old token is revoked.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.TokenResponse} "Login berhasil"
// @Failure 401 {object} Response "Token tidak valid atau telah kedaluwarsa"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	raw, ok := middleware.GetToken(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageUnauthenticated)
		return
	}

	resp, err := h.authService.Refresh(r.Context(), raw)
	if err != nil {
		h.respondTokenError(w, r, "failed to refresh token", err)
		return
	}

	h.RespondSuccess(w, MessageLoginSuccess, resp)
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the authenticated user with its school
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=map[string]models.UserDetail}
// @Failure 401 {object} Response "Tidak terautentikasi"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageUnauthenticated)
		return
	}

	user, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		h.respondTokenError(w, r, "failed to get current user", err)
		return
	}

	h.RespondSuccess(w, "", map[string]any{"user": user})
}

// respondTokenError maps token and subject failures to 401 and everything else to 500
func (h *AuthHandler) respondTokenError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageTokenExpired)
	case errors.Is(err, token.ErrInvalidToken):
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageInvalidToken)
	case errors.Is(err, services.ErrUnauthenticated):
		h.RespondError(w, http.StatusUnauthorized, middleware.MessageUnauthenticated)
	default:
		h.RespondServerError(w, r, msg, err)
	}
}
