package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/remaimber-it/sattutor/internal/domain/question"
	"github.com/remaimber-it/sattutor/internal/store"
)

var (
	ErrEmptyCatalog      = errors.New("catalog contains no valid questions")
	ErrMalformedCatalog  = errors.New("catalog document is malformed")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// LoadError is returned when the catalog cannot be used. It is never fatal:
// callers continue with an empty catalog.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads a catalog file. The format is chosen by extension: .json,
// .yaml/.yml, or .db/.sqlite for a catalog imported into SQLite.
type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load returns the valid questions of the catalog at path. Invalid entries
// are skipped with a warning; duplicated ids keep their first occurrence.
func (l *Loader) Load(ctx context.Context, path string) ([]question.Question, error) {
	questions, err := l.load(ctx, path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(questions) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptyCatalog}
	}

	l.logger.Info("catalog loaded", "path", path, "questions", len(questions))
	return questions, nil
}

// LoadOrEmpty is Load for startup code: a LoadError is logged and an empty
// catalog returned instead.
func (l *Loader) LoadOrEmpty(ctx context.Context, path string) []question.Question {
	questions, err := l.Load(ctx, path)
	if err != nil {
		l.logger.Error("catalog unavailable, continuing with no questions", "error", err)
		return []question.Question{}
	}
	return questions
}

func (l *Loader) load(ctx context.Context, path string) ([]question.Question, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return l.decodeJSON(data)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return l.decodeYAML(data)
	case ".db", ".sqlite":
		return l.loadSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// decodeJSON accepts {"questions": [...]} or a bare array. Entries are
// decoded one at a time so a single bad entry does not discard the rest.
func (l *Loader) decodeJSON(data []byte) ([]question.Question, error) {
	var entries []json.RawMessage

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
	} else {
		var doc struct {
			Questions []json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
		}
		if doc.Questions == nil {
			return nil, fmt.Errorf("%w: missing \"questions\" list", ErrMalformedCatalog)
		}
		entries = doc.Questions
	}

	questions := make([]question.Question, 0, len(entries))
	for i, raw := range entries {
		var entry jsonEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			l.logger.Warn("skipping undecodable catalog entry", "index", i, "error", err)
			continue
		}
		id, err := entry.id()
		if err != nil {
			l.logger.Warn("skipping undecodable catalog entry", "index", i, "error", err)
			continue
		}
		entry.Question.ID = id
		questions = append(questions, entry.Question)
	}
	return l.keepValid(questions), nil
}

// jsonEntry lets catalog ids be either strings or numbers.
type jsonEntry struct {
	ID json.RawMessage `json:"id"`
	question.Question
}

func (e jsonEntry) id() (string, error) {
	raw := bytes.TrimSpace(e.ID)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("id must be a string or a number: %w", err)
	}
	return n.String(), nil
}

func (l *Loader) decodeYAML(data []byte) ([]question.Question, error) {
	var doc struct {
		Questions []yaml.Node `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if doc.Questions == nil {
		return nil, fmt.Errorf("%w: missing \"questions\" list", ErrMalformedCatalog)
	}

	questions := make([]question.Question, 0, len(doc.Questions))
	for i, node := range doc.Questions {
		var q question.Question
		if err := node.Decode(&q); err != nil {
			l.logger.Warn("skipping undecodable catalog entry", "index", i, "error", err)
			continue
		}
		questions = append(questions, q)
	}
	return l.keepValid(questions), nil
}

func (l *Loader) loadSQLite(ctx context.Context, path string) ([]question.Question, error) {
	// NewSQLite would create a missing file.
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := store.NewSQLite(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	questions, err := db.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	return l.keepValid(questions), nil
}

func (l *Loader) keepValid(questions []question.Question) []question.Question {
	seen := make(map[string]bool, len(questions))
	valid := make([]question.Question, 0, len(questions))

	for i, q := range questions {
		if err := l.validate.Struct(q); err != nil {
			l.logger.Warn("skipping invalid catalog entry", "index", i, "id", q.ID, "error", err)
			continue
		}
		if err := q.Validate(); err != nil {
			l.logger.Warn("skipping invalid catalog entry", "index", i, "id", q.ID, "error", err)
			continue
		}
		if seen[q.ID] {
			l.logger.Warn("skipping duplicate catalog entry", "index", i, "id", q.ID)
			continue
		}
		seen[q.ID] = true
		valid = append(valid, q)
	}
	return valid
}
