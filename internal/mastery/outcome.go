package mastery

import (
	"fmt"
	"time"

	"github.com/mathpath/mathpath/internal/spacedrep"
	"github.com/mathpath/mathpath/internal/student"
)

// Weighting of the new accuracy signal against accumulated mastery, and
// the recency nudge applied on top.
const (
	accuracyWeight = 0.7
	historyWeight  = 0.3
	correctBonus   = 5.0
	incorrectDrop  = -3.0
)

// RecordOutcome folds one practice attempt into the learner model: the
// knowledge point's mastery moves toward its lifetime accuracy, the
// topic's SM-2 schedule advances with a quality derived from the
// attempt, and prerequisite topics receive implicit review credit.
func RecordOutcome(s *student.State, topicID, kpID string, correct bool, hintsUsed int, now time.Time) error {
	ts := s.Topic(topicID)
	if ts == nil {
		return fmt.Errorf("record outcome: no state for topic %q", topicID)
	}
	kp, ok := ts.KnowledgePointState(kpID)
	if !ok {
		return fmt.Errorf("record outcome: topic %q has no knowledge point %q", topicID, kpID)
	}

	kp.Attempts++
	if correct {
		kp.Correct++
	}
	kp.LastPracticed = now.UTC()

	accuracy := float64(kp.Correct) / float64(kp.Attempts) * 100
	recency := incorrectDrop
	if correct {
		recency = correctBonus
	}
	mastery := accuracy*accuracyWeight + kp.Mastery*historyWeight + recency
	if mastery < 0 {
		mastery = 0
	}
	if mastery > 100 {
		mastery = 100
	}
	kp.Mastery = student.Round2(mastery)
	ts.MasteryLevel = string(LevelFor(ts.Mastery()))

	quality := spacedrep.QualityFor(correct, hintsUsed)
	spacedrep.Apply(ts, quality, now)
	spacedrep.PropagateImplicit(s, topicID, quality, now)
	return nil
}
