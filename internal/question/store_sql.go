package question

import (
	"context"
	"database/sql"
)

// SQLStore backs the question bank with a questions table shared across
// categories. Works against sqlite (modernc) and postgres (pgx stdlib); both
// accept ORDER BY RANDOM() and $n placeholders.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Sample(ctx context.Context, cat Category, count int) ([]Question, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, question, option1, option2, option3, option4, answer
		   FROM questions WHERE category=$1 ORDER BY RANDOM() LIMIT $2`,
		string(cat), count)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Category, &q.Text,
			&q.Options[0], &q.Options[1], &q.Options[2], &q.Options[3],
			&q.AnswerKey); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context, cat Category) (int, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return 0, err
	}
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM questions WHERE category=$1`, string(cat)).Scan(&n)
	return n, err
}

func (s *SQLStore) Insert(ctx context.Context, qs []Question) (inserted int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, q := range qs {
		if _, err = ParseCategory(string(q.Category)); err != nil {
			return inserted, err
		}
		if err = q.Validate(); err != nil {
			return inserted, err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (category, question, option1, option2, option3, option4, answer)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			string(q.Category), q.Text,
			q.Options[0], q.Options[1], q.Options[2], q.Options[3],
			q.AnswerKey)
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
