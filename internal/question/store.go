package question

import (
	"context"
	"errors"
)

var (
	// ErrUnknownCategory reports a category outside the enumeration. Surfaced
	// to users as "no such quiz category"; never retried.
	ErrUnknownCategory = errors.New("unknown quiz category")

	// ErrBadAnswerKey reports an answer-key letter outside A-D.
	ErrBadAnswerKey = errors.New("answer key out of range")
)

// Store is the read-mostly question bank. Sample must tolerate concurrent
// callers; quiz-time traffic never writes.
type Store interface {
	// Sample returns up to count questions drawn uniformly at random without
	// replacement from the category's pool. Fewer than count available is not
	// an error: all of them come back.
	Sample(ctx context.Context, cat Category, count int) ([]Question, error)

	// Count reports the pool size for a category.
	Count(ctx context.Context, cat Category) (int, error)

	// Insert adds questions to a category's pool (bulk ingestion only).
	Insert(ctx context.Context, qs []Question) (int, error)
}
