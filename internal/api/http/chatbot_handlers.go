package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quizforge/aptitude-app/internal/chatbot"
)

// ChatHandler forwards one query to the oracle and returns its reply.
func ChatHandler(oracle chatbot.Oracle) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			http.Error(w, "message required", http.StatusBadRequest)
			return
		}
		reply, err := oracle.Respond(r.Context(), req.Message)
		if err != nil {
			http.Error(w, "chatbot unavailable", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
	}
}
