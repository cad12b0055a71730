package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/aptitude-app/internal/question"
	"github.com/quizforge/aptitude-app/internal/quiz"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to structured status + payload. Validation
// failures are 400s the user can fix; state-machine misuse is a 409 the
// caller's flow has to fix.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, question.ErrUnknownCategory),
		errors.Is(err, quiz.ErrInvalidSelection):
		status = http.StatusBadRequest
	case errors.Is(err, quiz.ErrNoActiveSession),
		errors.Is(err, quiz.ErrNoQuestions),
		errors.Is(err, quiz.ErrAlreadySubmitted),
		errors.Is(err, quiz.ErrQuizInProgress),
		errors.Is(err, quiz.ErrNotAtLastQuestion),
		errors.Is(err, quiz.ErrSessionNotFinished):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
