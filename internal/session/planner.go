package session

import (
	"math/rand/v2"
	"time"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/mastery"
	"github.com/mathpath/mathpath/internal/spacedrep"
	"github.com/mathpath/mathpath/internal/student"
)

const (
	// MaxTasks caps every session regardless of how much is due.
	MaxTasks = 12
	// reviewPercent is the share of the budget reserved for reviews.
	reviewPercent = 60
	// activeKPThreshold: the first knowledge point below this mastery
	// is the one the learner works on next.
	activeKPThreshold = 70.0
)

// Planner turns a learner snapshot into an ordered task list. The
// random source drives review-topic selection; tests inject a seeded
// one for reproducible plans.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner returns a planner using the given random source.
func NewPlanner(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// PlanLearning builds a mixed session: up to 60 percent of the budget
// goes to shuffled due reviews, the rest to new topics in graph order.
// Each new topic expands to a worked example plus two practice tasks;
// each review topic to a single review task. The combined topic order
// is interleaved by category and the task list truncated to MaxTasks,
// even if that cuts a new-topic block short.
func (p *Planner) PlanLearning(s *student.State, now time.Time) *Plan {
	dueReviews := spacedrep.DueForReview(s, now)
	availableNew := mastery.AvailableNewTopics(s)

	reviewBudget := MaxTasks * reviewPercent / 100
	reviewCount := min(reviewBudget, len(dueReviews))
	newCount := min(MaxTasks-reviewCount, len(availableNew))

	selectedReview := p.sample(dueReviews, reviewCount)
	selectedNew := availableNew[:newCount]

	var tasks []Task
	for _, topicID := range selectedNew {
		kpID := activeKnowledgePoint(s, topicID)
		tasks = append(tasks,
			newTask(TaskWorkedExample, topicID, kpID),
			newTask(TaskPractice, topicID, kpID),
			newTask(TaskPractice, topicID, kpID),
		)
	}
	for _, topicID := range selectedReview {
		tasks = append(tasks, newTask(TaskReview, topicID, activeKnowledgePoint(s, topicID)))
	}

	topicOrder := interleave(append(append([]string{}, selectedNew...), selectedReview...))

	ordered := make([]Task, 0, len(tasks))
	for _, topicID := range topicOrder {
		for _, t := range tasks {
			if t.TopicID == topicID {
				ordered = append(ordered, t)
			}
		}
	}
	if len(ordered) > MaxTasks {
		ordered = ordered[:MaxTasks]
	}

	return &Plan{
		Tasks:        ordered,
		ReviewTopics: selectedReview,
		NewTopics:    selectedNew,
	}
}

// PlanReview builds a review-only session: shuffled due topics capped
// at MaxTasks, interleaved, one review task per topic.
func (p *Planner) PlanReview(s *student.State, now time.Time) *Plan {
	dueReviews := spacedrep.DueForReview(s, now)
	selected := p.sample(dueReviews, min(MaxTasks, len(dueReviews)))
	interleaved := interleave(selected)

	tasks := make([]Task, 0, len(interleaved))
	for _, topicID := range interleaved {
		tasks = append(tasks, newTask(TaskReview, topicID, activeKnowledgePoint(s, topicID)))
	}
	return &Plan{
		Tasks:        tasks,
		ReviewTopics: selected,
		NewTopics:    nil,
	}
}

// sample shuffles a copy of ids and takes the first n.
func (p *Planner) sample(ids []string, n int) []string {
	shuffled := append([]string{}, ids...)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

// activeKnowledgePoint picks the lowest-level knowledge point still
// under the threshold, or level 3 once all are past it.
func activeKnowledgePoint(s *student.State, topicID string) string {
	ts := s.Topic(topicID)
	if ts == nil {
		return topicID + "-kp1"
	}
	for i := range ts.KnowledgePoints {
		if ts.KnowledgePoints[i].Mastery < activeKPThreshold {
			return ts.KnowledgePoints[i].KnowledgePointID
		}
	}
	return ts.KnowledgePoints[2].KnowledgePointID
}

// interleave reorders topics so no two neighbors share a category,
// falling back to the next remaining topic when every candidate
// matches the last placed category.
func interleave(topicIDs []string) []string {
	if len(topicIDs) <= 1 {
		return topicIDs
	}

	categoryOf := func(id string) knowledge.Category {
		t, err := knowledge.GetTopic(id)
		if err != nil {
			return ""
		}
		return t.Category
	}

	remaining := append([]string{}, topicIDs...)
	result := make([]string, 0, len(remaining))
	var lastCategory knowledge.Category

	for len(remaining) > 0 {
		pick := 0
		if len(result) > 0 {
			pick = -1
			for i, id := range remaining {
				if categoryOf(id) != lastCategory {
					pick = i
					break
				}
			}
			if pick < 0 {
				pick = 0
			}
		}
		id := remaining[pick]
		remaining = append(remaining[:pick], remaining[pick+1:]...)
		result = append(result, id)
		lastCategory = categoryOf(id)
	}
	return result
}
