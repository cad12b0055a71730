package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/aptitude-app/internal/auth"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler creates a student account. A taken username is an expected
// outcome, reported as ok=false with a 200, not an error.
func RegisterHandler(users *auth.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		ok, err := users.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrEmptyCredentials) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{"ok": false, "message": "username already taken"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true})
	}
}

// LoginHandler validates credentials and issues a bearer token.
func LoginHandler(users *auth.Store, tokens *auth.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		valid, err := users.Validate(r.Context(), req.Username, req.Password)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !valid {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		role, err := users.Role(r.Context(), req.Username)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		tok, err := tokens.IssueJWT(req.Username, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": tok})
	}
}
