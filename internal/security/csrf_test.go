package security

import "testing"

func TestCSRFTokenRoundTrip(t *testing.T) {
	gen := NewCSRFGenerator("csrf-secret")

	token := gen.Token("session-abc")
	if token == "" {
		t.Fatal("Token() returned empty string")
	}

	if !gen.Validate("session-abc", token) {
		t.Error("Validate() rejected its own token")
	}
}

func TestCSRFTokenIsDeterministic(t *testing.T) {
	gen := NewCSRFGenerator("csrf-secret")

	if gen.Token("session-abc") != gen.Token("session-abc") {
		t.Error("same session produced different tokens")
	}
	if gen.Token("session-abc") == gen.Token("session-xyz") {
		t.Error("different sessions produced the same token")
	}
}

func TestCSRFValidateRejects(t *testing.T) {
	gen := NewCSRFGenerator("csrf-secret")
	token := gen.Token("session-abc")

	tests := []struct {
		name      string
		sessionID string
		token     string
	}{
		{"wrong session", "session-xyz", token},
		{"tampered token", "session-abc", token + "00"},
		{"empty token", "session-abc", ""},
		{"empty session", "", token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if gen.Validate(tt.sessionID, tt.token) {
				t.Error("Validate() accepted invalid input")
			}
		})
	}
}

func TestCSRFDifferentSecrets(t *testing.T) {
	one := NewCSRFGenerator("secret-one")
	two := NewCSRFGenerator("secret-two")

	if two.Validate("session-abc", one.Token("session-abc")) {
		t.Error("token from another secret validated")
	}
}
