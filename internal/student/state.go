// Package student holds the persistent learner model: per-topic spaced
// repetition state, per-knowledge-point mastery tallies, XP, and streaks.
// All times are stored in UTC; a zero time means "never".
package student

import (
	"math"
	"time"

	"github.com/mathpath/mathpath/internal/knowledge"
)

const (
	// DefaultEaseFactor is the SM-2 starting ease for a fresh topic.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the SM-2 floor below which ease never drops.
	MinEaseFactor = 1.3
)

// KnowledgePointState tracks one knowledge point's practice history.
type KnowledgePointState struct {
	KnowledgePointID string    `json:"knowledgePointId"`
	Mastery          float64   `json:"mastery"`
	Attempts         int       `json:"attempts"`
	Correct          int       `json:"correct"`
	LastPracticed    time.Time `json:"lastPracticed,omitzero"`
}

// DefaultMasteryLevel is the stored level label for a fresh topic. The
// mastery package recomputes the label whenever an outcome is recorded.
const DefaultMasteryLevel = "novice"

// TopicState tracks a topic's three knowledge points plus its
// spaced repetition schedule. MasteryLevel is a cached label derived
// from the knowledge point scores, never an independent input.
type TopicState struct {
	TopicID         string                 `json:"topicId"`
	KnowledgePoints [3]KnowledgePointState `json:"knowledgePointStates"`
	EaseFactor      float64                `json:"easeFactor"`
	Interval        int                    `json:"interval"`
	NextReview      time.Time              `json:"nextReviewDate,omitzero"`
	LastReview      time.Time              `json:"lastReviewDate,omitzero"`
	MasteryLevel    string                 `json:"masteryLevel"`
}

// KnowledgePointState returns the state for the given knowledge point id.
func (ts *TopicState) KnowledgePointState(kpID string) (*KnowledgePointState, bool) {
	for i := range ts.KnowledgePoints {
		if ts.KnowledgePoints[i].KnowledgePointID == kpID {
			return &ts.KnowledgePoints[i], true
		}
	}
	return nil, false
}

// Knowledge point levels contribute unevenly to topic mastery: the
// advanced levels dominate.
var masteryWeights = [3]float64{0.20, 0.35, 0.45}

// Mastery returns the topic's weighted mastery score on a 0-100 scale,
// rounded to two decimals.
func (ts *TopicState) Mastery() float64 {
	var total float64
	for i := range ts.KnowledgePoints {
		total += ts.KnowledgePoints[i].Mastery * masteryWeights[i]
	}
	return Round2(total)
}

// Round2 rounds to two decimal places. Mastery and ease values are
// stored at this precision so persisted state compares exactly.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// State is the full learner model, persisted as a single document.
type State struct {
	TopicStates       map[string]*TopicState `json:"topicStates"`
	TotalXP           int                    `json:"totalXp"`
	Level             int                    `json:"level"`
	CurrentStreak     int                    `json:"currentStreak"`
	LongestStreak     int                    `json:"longestStreak"`
	LastActiveDate    time.Time              `json:"lastActiveDate,omitzero"`
	SessionsCompleted int                    `json:"sessionsCompleted"`
}

func defaultTopicState(t knowledge.Topic) *TopicState {
	ts := &TopicState{
		TopicID:      t.ID,
		EaseFactor:   DefaultEaseFactor,
		MasteryLevel: DefaultMasteryLevel,
	}
	for i, kp := range t.KnowledgePoints {
		ts.KnowledgePoints[i] = KnowledgePointState{KnowledgePointID: kp.ID}
	}
	return ts
}

// NewState builds a fresh learner model covering every topic in the graph.
func NewState() *State {
	s := &State{
		TopicStates: make(map[string]*TopicState),
		Level:       1,
	}
	for _, t := range knowledge.AllTopics() {
		s.TopicStates[t.ID] = defaultTopicState(t)
	}
	return s
}

// EnsureTopics fills in default state for topics added to the graph
// after this state was first persisted. Called after every load.
func (s *State) EnsureTopics() {
	if s.TopicStates == nil {
		s.TopicStates = make(map[string]*TopicState)
	}
	for _, t := range knowledge.AllTopics() {
		ts, ok := s.TopicStates[t.ID]
		if !ok {
			s.TopicStates[t.ID] = defaultTopicState(t)
			continue
		}
		if ts.MasteryLevel == "" {
			ts.MasteryLevel = DefaultMasteryLevel
		}
	}
}

// Topic returns the state for a topic id, or nil if absent.
func (s *State) Topic(id string) *TopicState {
	return s.TopicStates[id]
}

// DateOf truncates a time to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two times fall on the same UTC calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
