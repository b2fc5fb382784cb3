package spacedrep

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mathpath/mathpath/internal/student"
)

var testNow = time.Date(2026, 5, 10, 14, 30, 0, 0, time.UTC)

func TestQualityFor(t *testing.T) {
	tests := []struct {
		correct bool
		hints   int
		want    int
	}{
		{true, 0, 5},
		{true, 1, 4},
		{true, 2, 3},
		{true, 3, 2},
		{true, 7, 2},
		{false, 0, 1},
		{false, 3, 1},
	}
	for _, tt := range tests {
		if got := QualityFor(tt.correct, tt.hints); got != tt.want {
			t.Errorf("QualityFor(%v, %d) = %d, want %d", tt.correct, tt.hints, got, tt.want)
		}
	}
}

func TestApplyIntervalProgression(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")

	// First successful review: 0 -> 1 day.
	Apply(ts, 5, testNow)
	if ts.Interval != 1 {
		t.Fatalf("first review interval = %d, want 1", ts.Interval)
	}
	if want := student.DateOf(testNow).AddDate(0, 0, 1); !ts.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", ts.NextReview, want)
	}

	// Second: 1 -> 3 days.
	Apply(ts, 5, testNow)
	if ts.Interval != 3 {
		t.Fatalf("second review interval = %d, want 3", ts.Interval)
	}

	// Third: 3 -> round(3 * ease). Ease climbed by 0.1 per perfect review.
	easeBefore := ts.EaseFactor
	Apply(ts, 5, testNow)
	want := int(float64(3)*easeBefore + 0.5)
	if ts.Interval != want {
		t.Errorf("third review interval = %d, want %d (ease %v)", ts.Interval, want, easeBefore)
	}
}

func TestApplyFailureResetsInterval(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")
	ts.Interval = 14
	ts.EaseFactor = 2.5

	Apply(ts, 1, testNow)
	if ts.Interval != 1 {
		t.Errorf("interval after failure = %d, want 1", ts.Interval)
	}
	if ts.EaseFactor >= 2.5 {
		t.Errorf("ease after failure = %v, want below 2.5", ts.EaseFactor)
	}
}

func TestApplyEaseAdjustment(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")

	// Quality 5 from the default 2.5: +0.1.
	Apply(ts, 5, testNow)
	if ts.EaseFactor != 2.6 {
		t.Errorf("ease after quality 5 = %v, want 2.6", ts.EaseFactor)
	}

	// Quality 3 drops ease by 0.14.
	Apply(ts, 3, testNow)
	if ts.EaseFactor != 2.46 {
		t.Errorf("ease after quality 3 = %v, want 2.46", ts.EaseFactor)
	}
}

func TestEaseNeverBelowFloor(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")
	rng := rand.New(rand.NewPCG(42, 0))

	for i := 0; i < 1000; i++ {
		Apply(ts, rng.IntN(6), testNow)
		if ts.EaseFactor < student.MinEaseFactor {
			t.Fatalf("ease dropped to %v after %d reviews", ts.EaseFactor, i+1)
		}
		if ts.Interval < 1 {
			t.Fatalf("interval dropped to %d after %d reviews", ts.Interval, i+1)
		}
	}
}

func TestPropagateImplicitExtendsPrerequisite(t *testing.T) {
	s := student.NewState()
	// two-step-equations depends on one-step-equations with weight 0.5.
	prereq := s.Topic("one-step-equations")
	prereq.Interval = 5
	prereq.NextReview = student.DateOf(testNow).AddDate(0, 0, 2)

	touched := PropagateImplicit(s, "two-step-equations", 5, testNow)

	found := false
	for _, id := range touched {
		if id == "one-step-equations" {
			found = true
		}
	}
	if !found {
		t.Fatalf("one-step-equations not touched: %v", touched)
	}
	// round(5 * (1 + 0.5*0.5)) = round(6.25) = 6
	if prereq.Interval != 6 {
		t.Errorf("extended interval = %d, want 6", prereq.Interval)
	}
	if want := student.DateOf(testNow).AddDate(0, 0, 6); !prereq.NextReview.Equal(want) {
		t.Errorf("NextReview = %v, want %v", prereq.NextReview, want)
	}
}

func TestPropagateImplicitRequiresPassingWeightedQuality(t *testing.T) {
	s := student.NewState()
	// fractions-add-sub -> factors-multiples has weight 0.3:
	// round(5 * 0.3) = round(1.5) = 2 < 3, so no propagation.
	prereq := s.Topic("factors-multiples")
	prereq.Interval = 10
	before := prereq.Interval

	PropagateImplicit(s, "fractions-add-sub", 5, testNow)
	if prereq.Interval != before {
		t.Errorf("interval changed to %d despite failing weighted quality", prereq.Interval)
	}
}

func TestPropagateImplicitSkipsUnreviewedPrerequisite(t *testing.T) {
	s := student.NewState()
	prereq := s.Topic("one-step-equations")
	// Interval 0: never explicitly reviewed.
	PropagateImplicit(s, "two-step-equations", 5, testNow)
	if prereq.Interval != 0 || !prereq.NextReview.IsZero() {
		t.Errorf("unreviewed prerequisite was scheduled: interval=%d next=%v",
			prereq.Interval, prereq.NextReview)
	}
}

func TestPropagateImplicitUnknownTopic(t *testing.T) {
	s := student.NewState()
	if touched := PropagateImplicit(s, "no-such-topic", 5, testNow); touched != nil {
		t.Errorf("touched = %v, want nil", touched)
	}
}

func TestDueForReview(t *testing.T) {
	s := student.NewState()
	today := student.DateOf(testNow)

	setMastery := func(id string, m float64) {
		ts := s.Topic(id)
		for i := range ts.KnowledgePoints {
			ts.KnowledgePoints[i].Mastery = m
		}
	}

	// Due yesterday, mastery high enough.
	a := s.Topic("addition-basics")
	a.Interval = 3
	a.NextReview = today.AddDate(0, 0, -1)
	setMastery("addition-basics", 50)

	// Due three days ago, should sort first.
	b := s.Topic("subtraction-basics")
	b.Interval = 3
	b.NextReview = today.AddDate(0, 0, -3)
	setMastery("subtraction-basics", 50)

	// Due but below the mastery cutoff.
	c := s.Topic("multiplication-basics")
	c.Interval = 3
	c.NextReview = today.AddDate(0, 0, -1)
	setMastery("multiplication-basics", 5)

	// Not due yet.
	d := s.Topic("division-basics")
	d.Interval = 3
	d.NextReview = today.AddDate(0, 0, 2)
	setMastery("division-basics", 50)

	got := DueForReview(s, testNow)
	want := []string{"subtraction-basics", "addition-basics"}
	if len(got) != len(want) {
		t.Fatalf("DueForReview = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DueForReview[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueForReviewTiesKeepDeclarationOrder(t *testing.T) {
	s := student.NewState()
	today := student.DateOf(testNow)

	// All due on the same date; alphabetical order would put
	// division-basics and factors-multiples ahead of
	// multiplication-basics.
	for _, id := range []string{"factors-multiples", "division-basics", "multiplication-basics"} {
		ts := s.Topic(id)
		ts.Interval = 3
		ts.NextReview = today.AddDate(0, 0, -2)
		for i := range ts.KnowledgePoints {
			ts.KnowledgePoints[i].Mastery = 50
		}
	}

	got := DueForReview(s, testNow)
	want := []string{"multiplication-basics", "division-basics", "factors-multiples"}
	if len(got) != len(want) {
		t.Fatalf("DueForReview = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DueForReview[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueForReviewDueTodayCounts(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("perimeter")
	ts.Interval = 1
	ts.NextReview = student.DateOf(testNow)
	for i := range ts.KnowledgePoints {
		ts.KnowledgePoints[i].Mastery = 40
	}
	got := DueForReview(s, testNow)
	if len(got) != 1 || got[0] != "perimeter" {
		t.Errorf("DueForReview = %v, want [perimeter]", got)
	}
}
