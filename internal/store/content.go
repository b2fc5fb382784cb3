package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mathpath/mathpath/internal/content"
)

// ContentRepo caches generated content per knowledge point. Problems
// accumulate across fetches; worked examples are single-valued and
// replaced on save.
type ContentRepo interface {
	Problems(ctx context.Context, kpID string) ([]content.Problem, error)
	AppendProblems(ctx context.Context, problems []content.Problem) error
	WorkedExample(ctx context.Context, kpID string) (*content.WorkedExample, error)
	SaveWorkedExample(ctx context.Context, ex *content.WorkedExample) error
}

// Problems returns all cached problems for a knowledge point, oldest
// first. An empty cache is not an error.
func (s *Store) Problems(ctx context.Context, kpID string) ([]content.Problem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data FROM problems WHERE knowledge_point_id = ? ORDER BY created_at, id`, kpID)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var problems []content.Problem
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		var p content.Problem
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("decode problem: %w", err)
		}
		problems = append(problems, p)
	}
	return problems, rows.Err()
}

// AppendProblems adds newly generated problems to the cache.
func (s *Store) AppendProblems(ctx context.Context, problems []content.Problem) error {
	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range problems {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode problem: %w", err)
		}
		_, err = s.db.ExecContext(ctx, `
			INSERT INTO problems (id, knowledge_point_id, data, created_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			p.ID, p.KnowledgePointID, string(data), now)
		if err != nil {
			return fmt.Errorf("append problem: %w", err)
		}
	}
	return nil
}

// WorkedExample returns the cached example for a knowledge point, or
// ErrNotFound.
func (s *Store) WorkedExample(ctx context.Context, kpID string) (*content.WorkedExample, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM worked_examples WHERE knowledge_point_id = ?`, kpID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query worked example: %w", err)
	}

	var ex content.WorkedExample
	if err := json.Unmarshal([]byte(data), &ex); err != nil {
		return nil, fmt.Errorf("decode worked example: %w", err)
	}
	return &ex, nil
}

// SaveWorkedExample stores the example for its knowledge point,
// replacing any previous one.
func (s *Store) SaveWorkedExample(ctx context.Context, ex *content.WorkedExample) error {
	data, err := json.Marshal(ex)
	if err != nil {
		return fmt.Errorf("encode worked example: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO worked_examples (knowledge_point_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(knowledge_point_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		ex.KnowledgePointID, string(data), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save worked example: %w", err)
	}
	return nil
}
