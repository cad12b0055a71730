package quiz

import (
	"fmt"
	"strings"

	"github.com/quizforge/aptitude-app/internal/question"
)

// Result is an aggregate score. Total is always the length of the question
// sequence, so a finished empty session reads 0 over 0, which String renders
// distinctly from a real zero.
type Result struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

func (r Result) String() string {
	if r.Total == 0 {
		return "0/0 (no questions)"
	}
	return fmt.Sprintf("%d/%d", r.Correct, r.Total)
}

// Score computes (correct, total) over a submission snapshot. Pure: it reads
// the maps and questions, mutates nothing, and returns the same result for
// the same inputs every time. A missing submission counts as incorrect, as
// does a question whose answer key fails to resolve.
func Score(qs []question.Question, submitted map[int]string) Result {
	r := Result{Total: len(qs)}
	for i, q := range qs {
		ans, ok := submitted[i]
		if !ok {
			continue
		}
		correct, err := q.CorrectOption()
		if err != nil {
			continue
		}
		if normalize(ans) == normalize(correct) {
			r.Correct++
		}
	}
	return r
}

// normalize is the single comparison rule used at submit time and at scoring
// time: surrounding whitespace is insignificant, case is folded.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
