// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/remaimber-it/sattutor/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    topic TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    question TEXT NOT NULL,
    options TEXT NOT NULL,
    correct_answer TEXT NOT NULL,
    solution TEXT NOT NULL DEFAULT '',
    position INTEGER NOT NULL
);
`

// SQLiteStore keeps the question catalog in a SQLite file. Options are stored
// as a JSON array so their order survives a round trip.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Questions
// ============================================================================

// SaveQuestions upserts the given questions in one transaction. Position
// follows the slice order so ListQuestions returns the catalog as imported.
func (s *SQLiteStore) SaveQuestions(ctx context.Context, questions []question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var offset int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM questions").Scan(&offset); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO questions (id, topic, difficulty, question, options, correct_answer, solution, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			topic = excluded.topic,
			difficulty = excluded.difficulty,
			question = excluded.question,
			options = excluded.options,
			correct_answer = excluded.correct_answer,
			solution = excluded.solution
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, q := range questions {
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options for %s: %w", q.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			q.ID, q.Topic, q.Difficulty, q.Question,
			string(optionsJSON), q.CorrectAnswer, q.Solution, offset+i,
		); err != nil {
			return fmt.Errorf("save question %s: %w", q.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic, difficulty, question, options, correct_answer, solution
		FROM questions
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (question.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, topic, difficulty, question, options, correct_answer, solution
		FROM questions
		WHERE id = ?
	`, id)

	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return question.Question{}, ErrNotFound
	}
	return q, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (question.Question, error) {
	var q question.Question
	var optionsJSON string
	if err := row.Scan(&q.ID, &q.Topic, &q.Difficulty, &q.Question, &optionsJSON, &q.CorrectAnswer, &q.Solution); err != nil {
		return question.Question{}, err
	}
	if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
		return question.Question{}, fmt.Errorf("decode options for %s: %w", q.ID, err)
	}
	return q, nil
}
