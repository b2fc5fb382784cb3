package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/mathpath/mathpath/internal/content"
	"github.com/mathpath/mathpath/internal/session"
	"github.com/mathpath/mathpath/internal/student"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.LoadState(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadState on empty store = %v, want ErrNotFound", err)
	}

	st := student.NewState()
	st.TotalXP = 340
	st.CurrentStreak = 3
	ts := st.Topic("decimals-intro")
	ts.EaseFactor = 2.22
	ts.Interval = 6
	ts.NextReview = student.DateOf(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	ts.KnowledgePoints[1].Mastery = 55.75
	ts.KnowledgePoints[1].Attempts = 8

	if err := s.SaveState(ctx, st); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	gts := got.Topic("decimals-intro")
	if gts.EaseFactor != 2.22 || gts.Interval != 6 {
		t.Errorf("schedule = ease %v interval %d, want 2.22/6", gts.EaseFactor, gts.Interval)
	}
	if !gts.NextReview.Equal(ts.NextReview) {
		t.Errorf("NextReview = %v, want %v", gts.NextReview, ts.NextReview)
	}
	if gts.KnowledgePoints[1].Mastery != 55.75 || gts.KnowledgePoints[1].Attempts != 8 {
		t.Errorf("knowledge point state lost: %+v", gts.KnowledgePoints[1])
	}
	if got.TotalXP != 340 || got.CurrentStreak != 3 {
		t.Errorf("xp/streak = %d/%d, want 340/3", got.TotalXP, got.CurrentStreak)
	}
}

func TestSaveStateOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := student.NewState()
	if err := s.SaveState(ctx, st); err != nil {
		t.Fatal(err)
	}
	st.TotalXP = 999
	if err := s.SaveState(ctx, st); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalXP != 999 {
		t.Errorf("TotalXP = %d, want 999", got.TotalXP)
	}
}

func TestResetState(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveState(ctx, student.NewState()); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetState(ctx); err != nil {
		t.Fatalf("ResetState: %v", err)
	}
	if _, err := s.LoadState(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadState after reset = %v, want ErrNotFound", err)
	}
}

func TestSessionHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := &session.Session{
		ID:            "s-1",
		Date:          student.DateOf(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
		TotalXPEarned: 40,
		ReviewTopics:  []string{"addition-basics"},
	}
	second := &session.Session{
		ID:   "s-2",
		Date: student.DateOf(time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC)),
	}
	if err := s.AppendSession(ctx, first); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendSession(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("%d sessions, want 2", len(got))
	}
	if got[0].ID != "s-1" || got[1].ID != "s-2" {
		t.Errorf("session order: %s, %s", got[0].ID, got[1].ID)
	}
	if got[0].TotalXPEarned != 40 {
		t.Errorf("TotalXPEarned = %d, want 40", got[0].TotalXPEarned)
	}
}

func TestProblemCacheAccumulates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p1 := content.Problem{
		ID: "p-1", TopicID: "fractions-intro", KnowledgePointID: "fractions-intro-kp1",
		Type: content.FillInBlank, Question: "What is 1/2 + 1/4?", CorrectAnswer: "3/4",
		Hints: [3]string{"a", "b", "c"}, XPValue: 5,
	}
	p2 := p1
	p2.ID = "p-2"
	p2.Question = "What is 1/3 + 1/3?"
	p2.CorrectAnswer = "2/3"

	if err := s.AppendProblems(ctx, []content.Problem{p1}); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendProblems(ctx, []content.Problem{p2}); err != nil {
		t.Fatal(err)
	}
	// Re-appending an existing problem is a no-op, not an error.
	if err := s.AppendProblems(ctx, []content.Problem{p1}); err != nil {
		t.Fatalf("duplicate append: %v", err)
	}

	got, err := s.Problems(ctx, "fractions-intro-kp1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("%d problems, want 2", len(got))
	}
	if got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Errorf("problem order: %s, %s", got[0].ID, got[1].ID)
	}

	other, err := s.Problems(ctx, "fractions-intro-kp2")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Errorf("unrelated knowledge point has %d problems", len(other))
	}
}

func TestWorkedExampleReplaced(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.WorkedExample(ctx, "perimeter-kp1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty cache = %v, want ErrNotFound", err)
	}

	ex := &content.WorkedExample{
		ID: "w-1", TopicID: "perimeter", KnowledgePointID: "perimeter-kp1",
		Title: "Perimeter of a rectangle", Problem: "Find the perimeter of a 3x5 rectangle.",
		Steps:       []content.WorkedExampleStep{{Label: "Add the sides", Content: "3+5+3+5"}},
		FinalAnswer: "16",
	}
	if err := s.SaveWorkedExample(ctx, ex); err != nil {
		t.Fatal(err)
	}

	replacement := *ex
	replacement.ID = "w-2"
	replacement.FinalAnswer = "16 units"
	if err := s.SaveWorkedExample(ctx, &replacement); err != nil {
		t.Fatal(err)
	}

	got, err := s.WorkedExample(ctx, "perimeter-kp1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "w-2" || got.FinalAnswer != "16 units" {
		t.Errorf("example not replaced: %+v", got)
	}
}

func TestMemoryMatchesSQLiteBehavior(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.LoadState(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadState on empty memory = %v, want ErrNotFound", err)
	}

	st := student.NewState()
	st.TotalXP = 120
	if err := m.SaveState(ctx, st); err != nil {
		t.Fatal(err)
	}
	// Mutating the caller's copy must not leak into the store.
	st.TotalXP = 0

	got, err := m.LoadState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalXP != 120 {
		t.Errorf("TotalXP = %d, want 120", got.TotalXP)
	}

	if err := m.AppendSession(ctx, &session.Session{ID: "s-1"}); err != nil {
		t.Fatal(err)
	}
	sessions, err := m.ListSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s-1" {
		t.Errorf("sessions = %+v", sessions)
	}

	if _, err := m.WorkedExample(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("WorkedExample = %v, want ErrNotFound", err)
	}
}

type failingStateRepo struct{}

func (failingStateRepo) LoadState(ctx context.Context) (*student.State, error) {
	return nil, errors.New("corrupt database")
}

func (failingStateRepo) SaveState(ctx context.Context, st *student.State) error {
	return errors.New("disk full")
}

func TestResilientStateDegradesSilently(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewResilientState(failingStateRepo{}, logger)
	ctx := context.Background()

	st, err := r.LoadState(ctx)
	if err != nil {
		t.Fatalf("LoadState surfaced the failure: %v", err)
	}
	if st == nil || st.Level != 1 {
		t.Errorf("fallback state = %+v, want a fresh model", st)
	}
	if err := r.SaveState(ctx, st); err != nil {
		t.Errorf("SaveState surfaced the failure: %v", err)
	}
}

func TestResilientStatePassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewMemory()
	r := NewResilientState(m, logger)
	ctx := context.Background()

	st := student.NewState()
	st.TotalXP = 75
	if err := r.SaveState(ctx, st); err != nil {
		t.Fatal(err)
	}
	got, err := r.LoadState(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalXP != 75 {
		t.Errorf("TotalXP = %d, want 75", got.TotalXP)
	}
}
