package mastery

import (
	"testing"
	"time"

	"github.com/mathpath/mathpath/internal/student"
)

var testNow = time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

func TestRecordOutcomeFirstCorrectAttempt(t *testing.T) {
	s := student.NewState()
	err := RecordOutcome(s, "addition-basics", "addition-basics-kp1", true, 0, testNow)
	if err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}

	ts := s.Topic("addition-basics")
	kp := &ts.KnowledgePoints[0]
	if kp.Attempts != 1 || kp.Correct != 1 {
		t.Errorf("attempts/correct = %d/%d, want 1/1", kp.Attempts, kp.Correct)
	}
	// accuracy 100 * 0.7 + 0 * 0.3 + 5 = 75
	if kp.Mastery != 75 {
		t.Errorf("mastery = %v, want 75", kp.Mastery)
	}
	if kp.LastPracticed.IsZero() {
		t.Error("LastPracticed not set")
	}

	// Perfect quality advances the schedule.
	if ts.Interval != 1 {
		t.Errorf("interval = %d, want 1", ts.Interval)
	}
	if ts.EaseFactor != 2.6 {
		t.Errorf("ease = %v, want 2.6", ts.EaseFactor)
	}
}

func TestRecordOutcomeRefreshesMasteryLevel(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")
	for i := range ts.KnowledgePoints {
		kp := &ts.KnowledgePoints[i]
		kp.Mastery = 92
		kp.Attempts = 10
		kp.Correct = 10
	}

	if err := RecordOutcome(s, "addition-basics", "addition-basics-kp1", true, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if want := string(LevelFor(ts.Mastery())); ts.MasteryLevel != want {
		t.Errorf("stored level = %q, want %q", ts.MasteryLevel, want)
	}
	if ts.MasteryLevel != string(LevelMastered) {
		t.Errorf("stored level = %q, want %q", ts.MasteryLevel, LevelMastered)
	}
}

func TestRecordOutcomeIncorrectAttempt(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")
	kp := &ts.KnowledgePoints[0]
	kp.Mastery = 80
	kp.Attempts = 4
	kp.Correct = 4
	ts.Interval = 7

	if err := RecordOutcome(s, "addition-basics", "addition-basics-kp1", false, 0, testNow); err != nil {
		t.Fatal(err)
	}

	// accuracy 4/5 = 80; 80*0.7 + 80*0.3 - 3 = 77
	if kp.Mastery != 77 {
		t.Errorf("mastery = %v, want 77", kp.Mastery)
	}
	// Quality 1 resets the interval.
	if ts.Interval != 1 {
		t.Errorf("interval = %d, want 1", ts.Interval)
	}
}

func TestRecordOutcomeMasteryClamped(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("addition-basics")
	kp := &ts.KnowledgePoints[0]
	kp.Mastery = 99
	kp.Attempts = 9
	kp.Correct = 9

	if err := RecordOutcome(s, "addition-basics", "addition-basics-kp1", true, 0, testNow); err != nil {
		t.Fatal(err)
	}
	// 100*0.7 + 99*0.3 + 5 = 104.7, clamps to 100.
	if kp.Mastery != 100 {
		t.Errorf("mastery = %v, want 100", kp.Mastery)
	}

	// And the floor: repeated failures cannot push below zero.
	kp2 := &ts.KnowledgePoints[1]
	kp2.Attempts = 10
	kp2.Correct = 0
	if err := RecordOutcome(s, "addition-basics", "addition-basics-kp2", false, 0, testNow); err != nil {
		t.Fatal(err)
	}
	if kp2.Mastery != 0 {
		t.Errorf("mastery = %v, want 0", kp2.Mastery)
	}
}

func TestRecordOutcomePropagatesToPrerequisites(t *testing.T) {
	s := student.NewState()
	prereq := s.Topic("one-step-equations")
	prereq.Interval = 4
	prereq.NextReview = student.DateOf(testNow).AddDate(0, 0, 1)

	err := RecordOutcome(s, "two-step-equations", "two-step-equations-kp1", true, 0, testNow)
	if err != nil {
		t.Fatal(err)
	}
	// Weight 0.5, quality 5: interval 4 -> round(4 * 1.25) = 5.
	if prereq.Interval != 5 {
		t.Errorf("prerequisite interval = %d, want 5", prereq.Interval)
	}
}

func TestRecordOutcomeUnknownTopic(t *testing.T) {
	s := student.NewState()
	if err := RecordOutcome(s, "calculus", "calculus-kp1", true, 0, testNow); err == nil {
		t.Error("RecordOutcome accepted an unknown topic")
	}
	if err := RecordOutcome(s, "addition-basics", "perimeter-kp1", true, 0, testNow); err == nil {
		t.Error("RecordOutcome accepted a knowledge point from another topic")
	}
}
