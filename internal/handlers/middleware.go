package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ritikapurwa08/english-mastery/internal/models"
	"github.com/ritikapurwa08/english-mastery/internal/security"
	"github.com/ritikapurwa08/english-mastery/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UserContextKey ContextKey = "user"

const sessionCookieName = "session_id"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService *service.AuthService
	csrf        *security.CSRFGenerator
	rateLimiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, csrf *security.CSRFGenerator, rateLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService: authService,
		csrf:        csrf,
		rateLimiter: rateLimiter,
	}
}

// RequireAuth requires either a valid session cookie or a bearer token and
// puts the authenticated user on the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			user, err := m.authService.ValidateToken(token)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), UserContextKey, user)
			next(w, r.WithContext(ctx))
			return
		}

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		user, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r, sessionCookieName))
			respondWithError(w, http.StatusUnauthorized, "Authentication required", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit rejects requests from IPs that exceed the configured rate
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := security.GetClientIP(r)
		if !m.rateLimiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later", nil)
			return
		}
		next(w, r)
	}
}

// CSRFProtect validates the X-CSRF-Token header on mutating requests from
// cookie-authenticated clients. Bearer-token requests are exempt since they
// carry no ambient credentials.
func (m *Middleware) CSRFProtect(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next(w, r)
			return
		}

		if bearerToken(r) != "" {
			next(w, r)
			return
		}

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next(w, r)
			return
		}

		token := r.Header.Get("X-CSRF-Token")
		if !m.csrf.Validate(cookie.Value, token) {
			respondWithError(w, http.StatusForbidden, "Invalid CSRF token", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// bearerToken extracts a bearer token from the Authorization header, or ""
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}
