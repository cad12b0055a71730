package quiz

import (
	"context"
	"sync"

	"github.com/quizforge/aptitude-app/internal/question"
)

// Manager is the session controller: exactly one Session per authenticated
// identity, held in memory for the life of the process. The registry lock
// covers lookup only; within a session each user acts serially through a
// request cycle.
type Manager struct {
	mu       sync.RWMutex
	store    question.Store
	sessions map[string]*Session
	size     int
}

// NewManager wires the controller to a question store. size caps the number
// of questions per quiz (the classic 20).
func NewManager(store question.Store, size int) *Manager {
	return &Manager{
		store:    store,
		sessions: map[string]*Session{},
		size:     size,
	}
}

// StartQuiz samples a fresh question set for the category and starts (or
// creates) the user's session over it. Store errors, including unknown
// category, pass through untouched.
func (m *Manager) StartQuiz(ctx context.Context, user string, cat question.Category) (*Session, error) {
	qs, err := m.store.Sample(ctx, cat, m.size)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	s, ok := m.sessions[user]
	if !ok {
		s = NewSession()
		m.sessions[user] = s
	}
	m.mu.Unlock()

	if err := s.Start(qs, m.size); err != nil {
		return nil, err
	}
	return s, nil
}

// Session returns the user's session, or ErrNoActiveSession if the user has
// never started one.
func (m *Manager) Session(user string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[user]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoActiveSession
	}
	return s, nil
}

// The remaining operations delegate to the user's session.

func (m *Manager) Current(user string) (question.Question, int, error) {
	s, err := m.Session(user)
	if err != nil {
		return question.Question{}, 0, err
	}
	return s.Current()
}

func (m *Manager) Submit(user, selected string) (Feedback, error) {
	s, err := m.Session(user)
	if err != nil {
		return Feedback{}, err
	}
	return s.SubmitAnswer(selected)
}

func (m *Manager) Navigate(user string, d Direction) error {
	s, err := m.Session(user)
	if err != nil {
		return err
	}
	return s.Navigate(d)
}

func (m *Manager) Finish(user string) (Result, error) {
	s, err := m.Session(user)
	if err != nil {
		return Result{}, err
	}
	return s.Finish()
}

func (m *Manager) Restart(user string) error {
	s, err := m.Session(user)
	if err != nil {
		return err
	}
	return s.Restart()
}
