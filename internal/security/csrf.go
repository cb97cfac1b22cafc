package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// CSRFGenerator generates and validates CSRF tokens using HMAC-SHA256.
// Tokens are derived deterministically from the session ID and a secret key,
// so no shared state is required across replicas.
type CSRFGenerator struct {
	secret []byte
}

// NewCSRFGenerator creates a generator with the given secret key
func NewCSRFGenerator(secret string) *CSRFGenerator {
	return &CSRFGenerator{secret: []byte(secret)}
}

// Token derives the CSRF token for a session
func (g *CSRFGenerator) Token(sessionID string) string {
	mac := hmac.New(sha256.New, g.secret)
	fmt.Fprint(mac, sessionID)
	return hex.EncodeToString(mac.Sum(nil))
}

// Validate checks a submitted token against the session's expected token
// in constant time.
func (g *CSRFGenerator) Validate(sessionID, token string) bool {
	if sessionID == "" || token == "" {
		return false
	}
	expected := g.Token(sessionID)
	return hmac.Equal([]byte(expected), []byte(token))
}
