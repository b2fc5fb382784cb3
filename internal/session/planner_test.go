package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/student"
)

var testNow = time.Date(2026, 6, 1, 16, 0, 0, 0, time.UTC)

func testPlanner() *Planner {
	return NewPlanner(rand.New(rand.NewPCG(1, 2)))
}

func setTopicMastery(s *student.State, topicID string, m float64) {
	ts := s.Topic(topicID)
	for i := range ts.KnowledgePoints {
		ts.KnowledgePoints[i].Mastery = m
	}
}

func makeDue(s *student.State, topicID string, daysOverdue int) {
	ts := s.Topic(topicID)
	ts.Interval = 3
	ts.NextReview = student.DateOf(testNow).AddDate(0, 0, -daysOverdue)
	setTopicMastery(s, topicID, 75)
}

func TestPlanLearningFreshState(t *testing.T) {
	s := student.NewState()
	plan := testPlanner().PlanLearning(s, testNow)

	// Only the root topic is available; it expands to a three-task block.
	if len(plan.NewTopics) != 1 || plan.NewTopics[0] != "addition-basics" {
		t.Fatalf("NewTopics = %v, want [addition-basics]", plan.NewTopics)
	}
	if len(plan.ReviewTopics) != 0 {
		t.Fatalf("ReviewTopics = %v, want none", plan.ReviewTopics)
	}
	if len(plan.Tasks) != 3 {
		t.Fatalf("%d tasks, want 3", len(plan.Tasks))
	}
	wantTypes := []TaskType{TaskWorkedExample, TaskPractice, TaskPractice}
	for i, task := range plan.Tasks {
		if task.Type != wantTypes[i] {
			t.Errorf("task %d type = %s, want %s", i, task.Type, wantTypes[i])
		}
		if task.KnowledgePointID != "addition-basics-kp1" {
			t.Errorf("task %d targets %s, want addition-basics-kp1", i, task.KnowledgePointID)
		}
		if task.Completed || task.Correct != nil {
			t.Errorf("task %d not pristine: %+v", i, task)
		}
	}
}

func TestPlanLearningEmpty(t *testing.T) {
	s := student.NewState()
	// Every topic developed past the new-topic cutoff, nothing due.
	for _, topic := range knowledge.AllTopics() {
		setTopicMastery(s, topic.ID, 45)
	}
	plan := testPlanner().PlanLearning(s, testNow)
	if len(plan.Tasks) != 0 {
		t.Fatalf("%d tasks for a learner with nothing to do, want 0", len(plan.Tasks))
	}
}

func TestPlanLearningCap(t *testing.T) {
	s := student.NewState()
	// Plenty due for review and several new topics unlocked.
	for _, id := range []string{
		"addition-basics", "subtraction-basics", "multiplication-basics",
		"division-basics", "factors-multiples", "order-of-operations",
		"exponents-intro", "negative-integers", "fractions-intro",
		"decimals-intro",
	} {
		makeDue(s, id, 1)
	}

	plan := testPlanner().PlanLearning(s, testNow)
	if len(plan.Tasks) > MaxTasks {
		t.Fatalf("%d tasks, cap is %d", len(plan.Tasks), MaxTasks)
	}
	if len(plan.ReviewTopics) != 7 {
		t.Errorf("%d review topics selected, want 7", len(plan.ReviewTopics))
	}
}

func TestPlanLearningInterleavesCategories(t *testing.T) {
	s := student.NewState()
	// Due topics spread across categories.
	for _, id := range []string{
		"addition-basics", "subtraction-basics",
		"fractions-intro", "decimals-intro",
		"perimeter", "mean-median-mode",
	} {
		makeDue(s, id, 1)
	}
	// Mastery 75 everywhere above leaves no new topics below the
	// cutoff... except those unlocked by them; push those up too.
	for _, topic := range knowledge.AllTopics() {
		if s.Topic(topic.ID).Mastery() < 45 {
			setTopicMastery(s, topic.ID, 45)
		}
	}

	plan := testPlanner().PlanLearning(s, testNow)
	if len(plan.Tasks) == 0 {
		t.Fatal("empty plan")
	}
	for i := 1; i < len(plan.Tasks); i++ {
		prev, _ := knowledge.GetTopic(plan.Tasks[i-1].TopicID)
		cur, _ := knowledge.GetTopic(plan.Tasks[i].TopicID)
		if prev.ID != cur.ID && prev.Category == cur.Category {
			t.Errorf("tasks %d and %d are adjacent same-category topics (%s, %s)",
				i-1, i, prev.ID, cur.ID)
		}
	}
}

func TestPlanLearningDeterministicWithSeed(t *testing.T) {
	build := func() *Plan {
		s := student.NewState()
		for _, id := range []string{
			"addition-basics", "subtraction-basics", "multiplication-basics",
			"fractions-intro", "decimals-intro", "perimeter",
			"angles-intro", "mean-median-mode",
		} {
			makeDue(s, id, 1)
		}
		return NewPlanner(rand.New(rand.NewPCG(7, 7))).PlanLearning(s, testNow)
	}

	a, b := build(), build()
	if len(a.Tasks) != len(b.Tasks) {
		t.Fatalf("plans differ in length: %d vs %d", len(a.Tasks), len(b.Tasks))
	}
	for i := range a.Tasks {
		if a.Tasks[i].TopicID != b.Tasks[i].TopicID {
			t.Fatalf("task %d differs: %s vs %s", i, a.Tasks[i].TopicID, b.Tasks[i].TopicID)
		}
	}
}

func TestPlanReview(t *testing.T) {
	s := student.NewState()
	for _, id := range []string{"addition-basics", "fractions-intro", "perimeter"} {
		makeDue(s, id, 1)
	}

	plan := testPlanner().PlanReview(s, testNow)
	if len(plan.Tasks) != 3 {
		t.Fatalf("%d tasks, want 3", len(plan.Tasks))
	}
	for _, task := range plan.Tasks {
		if task.Type != TaskReview {
			t.Errorf("task type = %s, want %s", task.Type, TaskReview)
		}
	}
	if len(plan.NewTopics) != 0 {
		t.Errorf("review session introduced new topics: %v", plan.NewTopics)
	}
}

func TestActiveKnowledgePoint(t *testing.T) {
	s := student.NewState()
	ts := s.Topic("fractions-intro")

	if got := activeKnowledgePoint(s, "fractions-intro"); got != "fractions-intro-kp1" {
		t.Errorf("fresh topic active kp = %s, want kp1", got)
	}

	ts.KnowledgePoints[0].Mastery = 80
	if got := activeKnowledgePoint(s, "fractions-intro"); got != "fractions-intro-kp2" {
		t.Errorf("active kp = %s, want kp2", got)
	}

	ts.KnowledgePoints[1].Mastery = 75
	ts.KnowledgePoints[2].Mastery = 95
	if got := activeKnowledgePoint(s, "fractions-intro"); got != "fractions-intro-kp3" {
		t.Errorf("all mastered: active kp = %s, want kp3", got)
	}
}

func TestInterleaveFallback(t *testing.T) {
	// All same category: order preserved, no infinite loop.
	ids := []string{"addition-basics", "subtraction-basics", "multiplication-basics"}
	got := interleave(ids)
	if len(got) != 3 {
		t.Fatalf("interleave returned %d ids, want 3", len(got))
	}
	for i, id := range ids {
		if got[i] != id {
			t.Errorf("interleave[%d] = %s, want %s", i, got[i], id)
		}
	}
}
