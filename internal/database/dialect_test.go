package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "sqlite3" {
			t.Errorf("DriverName() = %v, want sqlite3", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM words WHERE category = ? AND difficulty = ?"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() should not modify SQLite queries, got %v", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "sqlite" {
			t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "SELECT * FROM words WHERE category = ? AND difficulty = ?"
		expected := "SELECT * FROM words WHERE category = $1 AND difficulty = $2"
		if got := dialect.RewriteQuery(query); got != expected {
			t.Errorf("RewriteQuery() = %v, want %v", got, expected)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("RewriteQuery", func(t *testing.T) {
		query := "INSERT INTO word_progress (user_id, word_id) VALUES (?, ?)"
		if got := dialect.RewriteQuery(query); got != query {
			t.Errorf("RewriteQuery() should not modify MySQL queries, got %v", got)
		}
	})

	t.Run("DSN", func(t *testing.T) {
		dsn := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/mastery"})
		for _, param := range []string{"parseTime=true", "multiStatements=true"} {
			if !strings.Contains(dsn, param) {
				t.Errorf("DSN() = %v, missing %v", dsn, param)
			}
		}

		withParams := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/mastery?tls=true"})
		if strings.Count(withParams, "?") != 1 {
			t.Errorf("DSN() with existing params should append with &, got %v", withParams)
		}
	})
}

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "no placeholders",
			query:    "SELECT 1",
			expected: "SELECT 1",
		},
		{
			name:     "single placeholder",
			query:    "SELECT * FROM users WHERE id = ?",
			expected: "SELECT * FROM users WHERE id = $1",
		},
		{
			name:     "many placeholders",
			query:    "INSERT INTO questions (a, b, c) VALUES (?, ?, ?)",
			expected: "INSERT INTO questions (a, b, c) VALUES ($1, $2, $3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewritePlaceholdersToNumbered(tt.query); got != tt.expected {
				t.Errorf("rewritePlaceholdersToNumbered() = %v, want %v", got, tt.expected)
			}
		})
	}
}
