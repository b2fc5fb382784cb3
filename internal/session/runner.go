package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mathpath/mathpath/internal/mastery"
	"github.com/mathpath/mathpath/internal/student"
)

// StateStore persists the learner model. Failures are logged and
// swallowed by the runner: losing a write must never abort a session
// in progress.
type StateStore interface {
	SaveState(ctx context.Context, s *student.State) error
}

// HistoryStore appends finished sessions to the session log.
type HistoryStore interface {
	AppendSession(ctx context.Context, s *Session) error
}

var (
	ErrTaskNotFound  = errors.New("task not found in session")
	ErrTaskCompleted = errors.New("task already completed")
	ErrSessionDone   = errors.New("session already finished")
)

// Runner executes a planned session task by task. State is persisted
// after every completed task, so an abandoned session loses nothing
// already answered.
type Runner struct {
	state   *student.State
	session *Session
	states  StateStore
	history HistoryStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewRunner starts a session from a plan. The learner's streak is
// touched immediately: showing up counts, finishing is not required.
func NewRunner(state *student.State, plan *Plan, states StateStore, history HistoryStore, logger *slog.Logger, now func() time.Time) *Runner {
	if now == nil {
		now = time.Now
	}
	startedAt := now()
	state.TouchStreak(startedAt)

	return &Runner{
		state: state,
		session: &Session{
			ID:           uuid.NewString(),
			Date:         student.DateOf(startedAt),
			StartedAt:    startedAt.UTC(),
			Tasks:        append([]Task{}, plan.Tasks...),
			NewTopics:    plan.NewTopics,
			ReviewTopics: plan.ReviewTopics,
		},
		states:  states,
		history: history,
		logger:  logger,
		now:     now,
	}
}

// Session exposes the in-progress session record.
func (r *Runner) Session() *Session {
	return r.session
}

// State exposes the learner model the runner mutates.
func (r *Runner) State() *student.State {
	return r.state
}

func (r *Runner) task(taskID string) (*Task, error) {
	if !r.session.CompletedAt.IsZero() {
		return nil, ErrSessionDone
	}
	for i := range r.session.Tasks {
		if r.session.Tasks[i].ID == taskID {
			if r.session.Tasks[i].Completed {
				return nil, ErrTaskCompleted
			}
			return &r.session.Tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// RecordAnswer applies a practice or review answer: mastery and
// scheduling move through the outcome pipeline, XP is awarded from the
// problem's value less hint penalties, and the state is saved.
func (r *Runner) RecordAnswer(ctx context.Context, taskID string, correct bool, hintsUsed, problemXP int, timeSpent time.Duration) (int, error) {
	t, err := r.task(taskID)
	if err != nil {
		return 0, err
	}
	if t.Type == TaskWorkedExample {
		return 0, fmt.Errorf("task %s is a worked example, not answerable", taskID)
	}

	now := r.now()
	if err := mastery.RecordOutcome(r.state, t.TopicID, t.KnowledgePointID, correct, hintsUsed, now); err != nil {
		return 0, err
	}

	xp := student.EarnedXP(problemXP, correct, hintsUsed)
	r.state.AddXP(xp)

	t.Completed = true
	t.Correct = &correct
	t.HintsUsed = hintsUsed
	t.XPEarned = xp
	t.TimeSpentMs = timeSpent.Milliseconds()

	r.saveState(ctx)
	return xp, nil
}

// CompleteWorkedExample marks an example as read and awards its flat
// XP. Reading is not an assessed outcome, so mastery and scheduling
// are untouched.
func (r *Runner) CompleteWorkedExample(ctx context.Context, taskID string, timeSpent time.Duration) (int, error) {
	t, err := r.task(taskID)
	if err != nil {
		return 0, err
	}
	if t.Type != TaskWorkedExample {
		return 0, fmt.Errorf("task %s is not a worked example", taskID)
	}

	t.Completed = true
	t.XPEarned = student.WorkedExampleXP
	t.TimeSpentMs = timeSpent.Milliseconds()
	r.state.AddXP(student.WorkedExampleXP)

	r.saveState(ctx)
	return student.WorkedExampleXP, nil
}

// SkipTask marks a task completed without an outcome, for when no
// content could be produced for it. Mastery, scheduling, and XP are
// untouched.
func (r *Runner) SkipTask(taskID string) error {
	t, err := r.task(taskID)
	if err != nil {
		return err
	}
	t.Completed = true
	return nil
}

// Finish closes the session, bumps the session counter, and appends
// the record to history. Safe to call with unfinished tasks; they stay
// incomplete in the record.
func (r *Runner) Finish(ctx context.Context) (*Session, error) {
	if !r.session.CompletedAt.IsZero() {
		return nil, ErrSessionDone
	}
	r.session.CompletedAt = r.now().UTC()
	r.session.TotalXPEarned = r.session.XPEarned()
	r.state.SessionsCompleted++

	r.saveState(ctx)
	if err := r.history.AppendSession(ctx, r.session); err != nil {
		r.logger.Warn("failed to append session history", "session", r.session.ID, "error", err)
	}
	return r.session, nil
}

func (r *Runner) saveState(ctx context.Context) {
	if err := r.states.SaveState(ctx, r.state); err != nil {
		r.logger.Warn("failed to persist learner state", "error", err)
	}
}
