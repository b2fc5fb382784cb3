package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mathpath/mathpath/internal/student"
)

// StateRepo persists the singleton learner model as one JSON document.
type StateRepo interface {
	LoadState(ctx context.Context) (*student.State, error)
	SaveState(ctx context.Context, s *student.State) error
}

// LoadState reads the learner model. Returns ErrNotFound when no state
// has been saved yet; missing topics in an older document are
// backfilled from the current graph.
func (s *Store) LoadState(ctx context.Context) (*student.State, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM student_state WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	var st student.State
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	st.EnsureTopics()
	return &st, nil
}

// SaveState writes the whole learner model, replacing any prior
// document. Single writer, so last write wins.
func (s *Store) SaveState(ctx context.Context, st *student.State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO student_state (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// ResetState deletes the learner model. Session history and cached
// content are left alone.
func (s *Store) ResetState(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM student_state`); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}
