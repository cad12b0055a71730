package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ErrEmptyCredentials rejects blank usernames or passwords before they reach
// the database.
var ErrEmptyCredentials = errors.New("username and password required")

// Store holds user credentials as bcrypt hashes. Duplicate registration is a
// business outcome, not an error: Register reports it as false. Uniqueness is
// enforced by the users table's UNIQUE constraint, so concurrent registrations
// of the same name serialize in the database.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Register creates a user with role "student". Returns false when the
// username is already taken.
func (s *Store) Register(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, ErrEmptyCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return false, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role, created_at)
		 VALUES ($1,$2,$3,'student',$4)`,
		uuid.NewString(), username, string(hash), time.Now().Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Validate checks the password against the stored hash. Unknown user and
// wrong password are both just false.
func (s *Store) Validate(ctx context.Context, username, password string) (bool, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE username=$1`, strings.TrimSpace(username)).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil, nil
}

// Role looks up the user's role for token claims. Defaults to "student" when
// the user cannot be found (Validate gates before this runs).
func (s *Store) Role(ctx context.Context, username string) (string, error) {
	var role string
	err := s.db.QueryRowContext(ctx,
		`SELECT role FROM users WHERE username=$1`, strings.TrimSpace(username)).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "student", nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// modernc sqlite surfaces plain errors; match its message
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
