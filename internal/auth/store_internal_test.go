package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pgx unique_violation", &pgconn.PgError{Code: "23505"}, true},
		{"pgx wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), true},
		{"pgx other code", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite message", errors.New("constraint failed: UNIQUE constraint failed: users.username (2067)"), true},
		{"unrelated", errors.New("database is locked"), false},
	}
	for _, c := range cases {
		if got := isUniqueViolation(c.err); got != c.want {
			t.Fatalf("%s: isUniqueViolation=%v, want %v", c.name, got, c.want)
		}
	}
}
