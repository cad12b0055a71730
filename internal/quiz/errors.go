package quiz

import "errors"

var (
	// ErrNoActiveSession: an action that needs an Active session ran while
	// NotStarted or Finished. Caller bug, not user bug.
	ErrNoActiveSession = errors.New("no active quiz session")

	// ErrInvalidSelection: submit with an empty selection. Recovered by
	// re-prompting; session state is untouched.
	ErrInvalidSelection = errors.New("no option selected")

	// ErrAlreadySubmitted: the current question already has a recorded
	// answer. Answers are immutable once submitted.
	ErrAlreadySubmitted = errors.New("answer already submitted for this question")

	// ErrNoQuestions: the session is Active but its sample came back empty,
	// so there is nothing to view or answer. Finishing it is still legal.
	ErrNoQuestions = errors.New("session has no questions")

	// ErrQuizInProgress: start requested while a session is Active.
	ErrQuizInProgress = errors.New("quiz already in progress")

	// ErrNotAtLastQuestion: finish requested away from the last question.
	ErrNotAtLastQuestion = errors.New("finish is only valid on the last question")

	// ErrSessionNotFinished: restart requested before the session finished.
	ErrSessionNotFinished = errors.New("session is not finished")
)
