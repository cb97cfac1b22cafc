package handlers

import (
	"net/http"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/security"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
	csrf        *security.CSRFGenerator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, csrf *security.CSRFGenerator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		csrf:        csrf,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

// Register handles account creation
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, userResponse{User: user})
}

// Login authenticates with email and password and sets a session cookie
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	session, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	http.SetCookie(w, security.CreateSessionCookie(r, sessionCookieName, session.ID, session.ExpiresAt))
	respondJSON(w, http.StatusOK, userResponse{User: user})
}

// Token authenticates with email and password and returns a bearer token
// for API clients that cannot hold cookies
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	token, user, err := h.authService.IssueToken(req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout invalidates the session and clears the cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.authService.Logout(cookie.Value); err != nil {
			respondServiceError(w, err)
			return
		}
	}

	http.SetCookie(w, security.CreateDeleteCookie(r, sessionCookieName))
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	if user == nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}
	respondJSON(w, http.StatusOK, userResponse{User: user})
}

// CSRFToken returns a token bound to the caller's session for use in the
// X-CSRF-Token header on mutating requests
func (h *AuthHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"csrfToken": h.csrf.Token(cookie.Value)})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ForgotPassword requests a password reset email. The response is identical
// whether or not the email has an account.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.authService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "If an account exists for that email, a reset link has been sent",
	})
}

// ValidateResetToken reports whether a reset token is still usable
func (h *AuthHandler) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondWithError(w, http.StatusBadRequest, "Missing token", nil)
		return
	}

	valid, err := h.authService.ValidatePasswordResetToken(token)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// ResetPassword sets a new password using a reset token
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
