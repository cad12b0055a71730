package quiz

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/aptitude-app/internal/question"
)

// State is the session lifecycle position.
type State int

const (
	StateNotStarted State = iota
	StateActive
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return "not_started"
	}
}

// Direction moves the cursor through the question sequence.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Feedback is the per-question outcome stored at submit time. For an
// incorrect answer CorrectLetter carries the key the user should have picked.
type Feedback struct {
	Correct       bool   `json:"correct"`
	CorrectLetter string `json:"correct_letter,omitempty"`
}

// Session is the quiz state machine for one identity: a fixed ordered
// question sequence, a bounded cursor, and immutable per-question
// submissions. One user acts serially through a request cycle, so the
// session itself carries no lock; the Manager guards the registry.
type Session struct {
	id        string
	state     State
	questions []question.Question
	current   int
	submitted map[int]string
	feedback  map[int]Feedback
	score     *Result
}

func NewSession() *Session {
	return &Session{
		submitted: map[int]string{},
		feedback:  map[int]Feedback{},
	}
}

// Start moves NotStarted|Finished -> Active over a fresh sample. The sample
// is shuffled again here, independently of store-side randomization, then
// truncated to limit. All per-question state is cleared.
func (s *Session) Start(qs []question.Question, limit int) error {
	if s.state == StateActive {
		return ErrQuizInProgress
	}
	shuffled := shuffleQuestions(qs)
	if limit > 0 && len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	s.id = uuid.NewString()
	s.state = StateActive
	s.questions = shuffled
	s.current = 0
	s.submitted = map[int]string{}
	s.feedback = map[int]Feedback{}
	s.score = nil
	return nil
}

// Current returns the question under the cursor with its index. An empty
// Active session reports ErrNoQuestions rather than a zero-value question.
func (s *Session) Current() (question.Question, int, error) {
	if s.state != StateActive {
		return question.Question{}, 0, ErrNoActiveSession
	}
	if len(s.questions) == 0 {
		return question.Question{}, 0, ErrNoQuestions
	}
	return s.questions[s.current], s.current, nil
}

// SubmitAnswer records the selected option text for the current question and
// computes its feedback. A blank selection is rejected without touching any
// state; a second submission for the same index is rejected and leaves the
// first one intact.
func (s *Session) SubmitAnswer(selected string) (Feedback, error) {
	if s.state != StateActive {
		return Feedback{}, ErrNoActiveSession
	}
	if len(s.questions) == 0 {
		return Feedback{}, ErrNoQuestions
	}
	if strings.TrimSpace(selected) == "" {
		return Feedback{}, ErrInvalidSelection
	}
	if _, done := s.submitted[s.current]; done {
		return Feedback{}, ErrAlreadySubmitted
	}
	q := s.questions[s.current]
	correct, err := q.CorrectOption()
	if err != nil {
		return Feedback{}, err
	}
	fb := Feedback{Correct: normalize(selected) == normalize(correct)}
	if !fb.Correct {
		fb.CorrectLetter = strings.ToUpper(strings.TrimSpace(q.AnswerKey))
	}
	s.submitted[s.current] = selected
	s.feedback[s.current] = fb
	return fb, nil
}

// Navigate moves the cursor one step, clamped to the sequence bounds. It
// never mutates submissions or feedback.
func (s *Session) Navigate(d Direction) error {
	if s.state != StateActive {
		return ErrNoActiveSession
	}
	switch d {
	case Previous:
		if s.current > 0 {
			s.current--
		}
	case Next:
		if s.current < len(s.questions)-1 {
			s.current++
		}
	}
	return nil
}

// Finish scores the session and moves it to Finished. Only valid while
// viewing the last question; an empty session may finish immediately.
// Unanswered questions count as incorrect. Finishing an already-finished
// session re-scores the same immutable snapshot, so the result cannot drift.
func (s *Session) Finish() (Result, error) {
	if s.state == StateNotStarted {
		return Result{}, ErrNoActiveSession
	}
	if len(s.questions) > 0 && s.current != len(s.questions)-1 {
		return Result{}, ErrNotAtLastQuestion
	}
	r := Score(s.questions, s.submitted)
	s.score = &r
	s.state = StateFinished
	return r, nil
}

// Restart clears everything field by field and returns to NotStarted, ready
// for a fresh Start. Only valid from Finished.
func (s *Session) Restart() error {
	if s.state != StateFinished {
		return ErrSessionNotFinished
	}
	s.id = ""
	s.state = StateNotStarted
	s.questions = nil
	s.current = 0
	s.submitted = map[int]string{}
	s.feedback = map[int]Feedback{}
	s.score = nil
	return nil
}

func (s *Session) ID() string   { return s.id }
func (s *Session) State() State { return s.state }
func (s *Session) Len() int     { return len(s.questions) }
func (s *Session) Index() int   { return s.current }

// Submission reports the recorded answer for index i, if any.
func (s *Session) Submission(i int) (string, bool) {
	ans, ok := s.submitted[i]
	return ans, ok
}

// FeedbackAt reports the stored outcome for index i, if any.
func (s *Session) FeedbackAt(i int) (Feedback, bool) {
	fb, ok := s.feedback[i]
	return fb, ok
}

// FinalScore is set only once the session has been finished.
func (s *Session) FinalScore() (Result, bool) {
	if s.score == nil {
		return Result{}, false
	}
	return *s.score, true
}

func shuffleQuestions(qs []question.Question) []question.Question {
	out := make([]question.Question, len(qs))
	copy(out, qs)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
