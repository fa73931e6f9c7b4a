package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/quizhive/quizhive/internal/apperr"
)

// SQLStore keeps questions as a JSON column, one row per quiz.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	created := q.CreatedAt
	if created == 0 {
		created = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quizzes (id,title,description,questions_json,created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		q.ID, q.Title, q.Description, string(qj), created)
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,description,questions_json,created_at FROM quizzes WHERE id=$1`, id)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Title, &q.Description, &qjson, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, apperr.NotFound("Quiz not found")
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Quiz, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,title,description,questions_json,created_at FROM quizzes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Quiz{}
	for rows.Next() {
		var q Quiz
		var qjson string
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &qjson, &q.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
