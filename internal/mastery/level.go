// Package mastery maps practice outcomes onto knowledge point and topic
// mastery, decides which topics are unlocked, and drives the spaced
// repetition schedule whenever an outcome is recorded.
package mastery

import (
	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/student"
)

// Level buckets a topic's mastery score for display.
type Level string

const (
	LevelLocked     Level = "locked"
	LevelNovice     Level = "novice"
	LevelDeveloping Level = "developing"
	LevelProficient Level = "proficient"
	LevelMastered   Level = "mastered"
)

// Mastery score thresholds for the display levels. UnlockThreshold is
// also the bar every prerequisite must clear before a topic unlocks.
const (
	MasteredThreshold   = 90.0
	UnlockThreshold     = 70.0
	DevelopingThreshold = 40.0
)

// LevelFor buckets a raw mastery score. It never returns LevelLocked;
// locking depends on prerequisites, not on the score.
func LevelFor(mastery float64) Level {
	switch {
	case mastery >= MasteredThreshold:
		return LevelMastered
	case mastery >= UnlockThreshold:
		return LevelProficient
	case mastery >= DevelopingThreshold:
		return LevelDeveloping
	default:
		return LevelNovice
	}
}

// DisplayLevel returns the level shown for a topic. Locked overrides
// the score bucket but has no effect on scheduling or mastery math.
func DisplayLevel(s *student.State, topicID string) Level {
	if !Unlocked(s, topicID) {
		return LevelLocked
	}
	ts := s.Topic(topicID)
	if ts == nil {
		return LevelLocked
	}
	return LevelFor(ts.Mastery())
}

// Unlocked reports whether every prerequisite of the topic has reached
// the unlock threshold. Topics without prerequisites are always open.
func Unlocked(s *student.State, topicID string) bool {
	topic, err := knowledge.GetTopic(topicID)
	if err != nil {
		return false
	}
	for _, edge := range topic.Prerequisites {
		prereq := s.Topic(edge.TopicID)
		if prereq == nil || prereq.Mastery() < UnlockThreshold {
			return false
		}
	}
	return true
}

// AvailableNewTopics returns the unlocked topics the learner has not yet
// developed (mastery below the developing threshold), in the graph's
// declaration order, prerequisites before dependents.
func AvailableNewTopics(s *student.State) []string {
	var ids []string
	for _, topic := range knowledge.AllTopics() {
		ts := s.Topic(topic.ID)
		if ts == nil {
			continue
		}
		if ts.Mastery() >= DevelopingThreshold {
			continue
		}
		if !Unlocked(s, topic.ID) {
			continue
		}
		ids = append(ids, topic.ID)
	}
	return ids
}
