// Package session plans and runs bounded practice sessions: a mix of
// due reviews and newly unlocked topics, expanded into tasks and
// interleaved so adjacent topics never share a category.
package session

import (
	"time"

	"github.com/google/uuid"
)

// TaskType distinguishes how a task is presented and scored.
type TaskType string

const (
	TaskWorkedExample TaskType = "worked-example"
	TaskPractice      TaskType = "practice"
	TaskReview        TaskType = "review"
)

// Task is one unit of work inside a session. Correct stays nil until
// the task is answered; worked examples leave it nil forever.
type Task struct {
	ID               string   `json:"id"`
	Type             TaskType `json:"type"`
	TopicID          string   `json:"topicId"`
	KnowledgePointID string   `json:"knowledgePointId"`
	Completed        bool     `json:"completed"`
	Correct          *bool    `json:"correct"`
	HintsUsed        int      `json:"hintsUsed"`
	XPEarned         int      `json:"xpEarned"`
	TimeSpentMs      int64    `json:"timeSpentMs"`
}

func newTask(t TaskType, topicID, kpID string) Task {
	return Task{
		ID:               uuid.NewString(),
		Type:             t,
		TopicID:          topicID,
		KnowledgePointID: kpID,
	}
}

// Plan is the ordered task list produced by the planner, before any
// task has been attempted.
type Plan struct {
	Tasks        []Task
	ReviewTopics []string
	NewTopics    []string
}

// Session is a persisted record of one sitting, appended to history
// when the session finishes.
type Session struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	StartedAt     time.Time `json:"startedAt"`
	CompletedAt   time.Time `json:"completedAt,omitzero"`
	Tasks         []Task    `json:"tasks"`
	TotalXPEarned int       `json:"totalXpEarned"`
	NewTopics     []string  `json:"newTopicsIntroduced"`
	ReviewTopics  []string  `json:"topicsReviewed"`
}

// NextIncompleteTask returns a pointer to the first unfinished task,
// or nil when the session is done.
func (s *Session) NextIncompleteTask() *Task {
	for i := range s.Tasks {
		if !s.Tasks[i].Completed {
			return &s.Tasks[i]
		}
	}
	return nil
}

// Progress summarizes completion for display.
type Progress struct {
	Completed int
	Total     int
	Percent   int
}

// Progress reports how far through the session the learner is.
func (s *Session) Progress() Progress {
	p := Progress{Total: len(s.Tasks)}
	for i := range s.Tasks {
		if s.Tasks[i].Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(float64(p.Completed)/float64(p.Total)*100 + 0.5)
	}
	return p
}

// XPEarned sums the XP across all tasks.
func (s *Session) XPEarned() int {
	var sum int
	for i := range s.Tasks {
		sum += s.Tasks[i].XPEarned
	}
	return sum
}
