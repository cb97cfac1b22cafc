package handlers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ritikapurwa08/english-mastery/internal/models"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"case insensitive scheme", "bearer abc", "abc"},
		{"trims whitespace", "Bearer   abc  ", "abc"},
		{"wrong scheme", "Basic dXNlcjpwYXNz", ""},
		{"scheme only", "Bearer ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/words", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			if got := bearerToken(r); got != tt.want {
				t.Errorf("bearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetUserFromContext(t *testing.T) {
	if user := GetUserFromContext(context.Background()); user != nil {
		t.Errorf("expected nil user on empty context, got %+v", user)
	}

	want := &models.User{ID: 7, Email: "a@b.com"}
	ctx := context.WithValue(context.Background(), UserContextKey, want)
	if got := GetUserFromContext(ctx); got != want {
		t.Errorf("GetUserFromContext() = %+v, want %+v", got, want)
	}
}
