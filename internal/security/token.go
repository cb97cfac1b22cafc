package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// TokenIssuer mints and validates HMAC-signed bearer tokens for API clients
// that cannot hold a session cookie (mobile apps, scripts).
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
}

// NewTokenIssuer creates a token issuer. An empty secret disables issuance.
func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration}
}

// Enabled reports whether a signing secret is configured
func (t *TokenIssuer) Enabled() bool {
	return len(t.secret) > 0
}

// Issue creates a signed token whose subject is the user ID
func (t *TokenIssuer) Issue(userID int64) (string, error) {
	if !t.Enabled() {
		return "", errors.New("token issuing disabled: no secret configured")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Validate parses a signed token and returns the user ID it was issued for
func (t *TokenIssuer) Validate(tokenString string) (int64, error) {
	if !t.Enabled() {
		return 0, ErrTokenInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}

	return userID, nil
}
