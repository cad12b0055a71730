package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quizforge/aptitude-app/internal/auth"
	"github.com/quizforge/aptitude-app/internal/question"
	"github.com/quizforge/aptitude-app/internal/quiz"
)

// questionView is what a quiz taker sees: the current question without its
// answer key, plus the recorded submission when the question was already
// answered (revisits render read-only).
type questionView struct {
	SessionID string         `json:"session_id"`
	State     string         `json:"state"`
	Index     int            `json:"index"`
	Total     int            `json:"total"`
	Question  string         `json:"question,omitempty"`
	Options   []string       `json:"options,omitempty"`
	Submitted bool           `json:"submitted"`
	Answer    string         `json:"answer,omitempty"`
	Feedback  *quiz.Feedback `json:"feedback,omitempty"`
}

func viewOf(s *quiz.Session) (questionView, error) {
	v := questionView{
		SessionID: s.ID(),
		State:     s.State().String(),
		Total:     s.Len(),
	}
	q, idx, err := s.Current()
	if errors.Is(err, quiz.ErrNoQuestions) {
		// empty sample: a legal session with nothing to show
		return v, nil
	}
	if err != nil {
		return questionView{}, err
	}
	v.Index = idx
	pub := q.Public()
	v.Question = pub.Text
	v.Options = pub.Options[:]
	if ans, ok := s.Submission(idx); ok {
		v.Submitted = true
		v.Answer = ans
		if fb, ok := s.FeedbackAt(idx); ok {
			f := fb
			v.Feedback = &f
		}
	}
	return v, nil
}

// StartQuizHandler samples a category and opens (or reopens) the caller's
// session.
func StartQuizHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		var req struct {
			Category string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		cat, err := question.ParseCategory(req.Category)
		if err != nil {
			writeError(w, err)
			return
		}
		s, err := m.StartQuiz(r.Context(), user, cat)
		if err != nil {
			writeError(w, err)
			return
		}
		v, err := viewOf(s)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func CurrentQuestionHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		s, err := m.Session(user)
		if err != nil {
			writeError(w, err)
			return
		}
		v, err := viewOf(s)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func SubmitAnswerHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		var req struct {
			Option string `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		fb, err := m.Submit(user, req.Option)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, fb)
	}
}

func NavigateHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		var req struct {
			Direction string `json:"direction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		var d quiz.Direction
		switch req.Direction {
		case "previous":
			d = quiz.Previous
		case "next":
			d = quiz.Next
		default:
			http.Error(w, "direction must be previous or next", http.StatusBadRequest)
			return
		}
		if err := m.Navigate(user, d); err != nil {
			writeError(w, err)
			return
		}
		s, err := m.Session(user)
		if err != nil {
			writeError(w, err)
			return
		}
		v, err := viewOf(s)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func FinishQuizHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		res, err := m.Finish(user)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"correct": res.Correct,
			"total":   res.Total,
			"display": res.String(),
		})
	}
}

func RestartQuizHandler(m *quiz.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := auth.SubjectFromContext(r.Context())
		if err := m.Restart(user); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"state": quiz.StateNotStarted.String()})
	}
}

// ListCategoriesHandler exposes the closed category set for the start form.
func ListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]question.Category{"categories": question.Categories()})
	}
}
