package store

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mathpath/mathpath/internal/student"
)

// ResilientState wraps a StateRepo so storage failures never block a
// session: a failed load falls back to a fresh learner model and a
// failed save is dropped. Both are logged; losing a day of progress
// beats crashing mid-practice, but it must be visible operationally.
type ResilientState struct {
	repo   StateRepo
	logger *slog.Logger
}

// NewResilientState wraps repo with the silent-degrade policy.
func NewResilientState(repo StateRepo, logger *slog.Logger) *ResilientState {
	return &ResilientState{repo: repo, logger: logger}
}

// LoadState returns the stored model, or a fresh one when nothing is
// stored yet or the read fails.
func (r *ResilientState) LoadState(ctx context.Context) (*student.State, error) {
	st, err := r.repo.LoadState(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrNotFound) {
		r.logger.Warn("state load failed, starting fresh", "error", err)
	}
	return student.NewState(), nil
}

// SaveState persists the model, logging and swallowing failures.
func (r *ResilientState) SaveState(ctx context.Context, st *student.State) error {
	if err := r.repo.SaveState(ctx, st); err != nil {
		r.logger.Warn("state save failed, progress not persisted", "error", err)
	}
	return nil
}
