package question

import (
	"fmt"
	"strings"
)

// Question is a single four-option multiple-choice item. Options are
// positionally significant: AnswerKey ("A".."D") names the correct one.
// Immutable once loaded from the store.
type Question struct {
	ID       int64     `json:"id"`
	Category Category  `json:"category"`
	Text     string    `json:"text"`
	Options  [4]string `json:"options"`

	// AnswerKey is omitted from anything served to quiz takers; see Public.
	AnswerKey string `json:"answer_key,omitempty"`
}

// optionIndex is the explicit letter-to-slot mapping. Anything outside it is
// rejected rather than decoded by character arithmetic.
var optionIndex = map[string]int{"A": 0, "B": 1, "C": 2, "D": 3}

// OptionIndex resolves an answer-key letter to a zero-based option index.
// The letter is trimmed and upper-cased first.
func OptionIndex(letter string) (int, error) {
	idx, ok := optionIndex[strings.ToUpper(strings.TrimSpace(letter))]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrBadAnswerKey, letter)
	}
	return idx, nil
}

// CorrectOption returns the option text named by the question's answer key.
func (q Question) CorrectOption() (string, error) {
	idx, err := OptionIndex(q.AnswerKey)
	if err != nil {
		return "", err
	}
	return q.Options[idx], nil
}

// Validate checks the invariants enforced on ingestion: non-empty text and
// options, and an answer key that resolves to a valid slot.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("question %d: empty text", q.ID)
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("question %d: empty option %d", q.ID, i+1)
		}
	}
	if _, err := OptionIndex(q.AnswerKey); err != nil {
		return fmt.Errorf("question %d: %w", q.ID, err)
	}
	return nil
}

// Public returns a copy safe to serve to quiz takers (answer key stripped).
func (q Question) Public() Question {
	q.AnswerKey = ""
	return q
}
