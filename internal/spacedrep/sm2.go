// Package spacedrep schedules topic reviews with the SM-2 algorithm,
// extended with fractional implicit repetition: practicing an advanced
// topic pushes out the review dates of the prerequisites it exercises.
package spacedrep

import (
	"math"
	"time"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/student"
)

// QualityFor derives an SM-2 quality score (0-5) from a practice attempt.
// Hints degrade the score; an incorrect answer scores 1, never 0, since
// attempting at all carries some signal.
func QualityFor(correct bool, hintsUsed int) int {
	if !correct {
		return 1
	}
	switch {
	case hintsUsed >= 3:
		return 2
	case hintsUsed == 2:
		return 3
	case hintsUsed == 1:
		return 4
	default:
		return 5
	}
}

// Apply runs one SM-2 update on the topic's schedule. Quality below 3
// resets the interval to one day. The ease factor moves by the standard
// SM-2 adjustment and never drops below student.MinEaseFactor.
func Apply(ts *student.TopicState, quality int, now time.Time) {
	interval := ts.Interval
	if quality < 3 {
		interval = 1
	} else {
		switch interval {
		case 0:
			interval = 1
		case 1:
			interval = 3
		default:
			interval = int(math.Round(float64(interval) * ts.EaseFactor))
		}
	}

	q := float64(quality)
	ease := ts.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < student.MinEaseFactor {
		ease = student.MinEaseFactor
	}

	today := student.DateOf(now)
	ts.EaseFactor = student.Round2(ease)
	ts.Interval = interval
	ts.LastReview = today
	ts.NextReview = today.AddDate(0, 0, interval)
}

// PropagateImplicit applies fractional implicit reviews to the practiced
// topic's prerequisites. A prerequisite only counts as implicitly
// reviewed when the weighted quality still rounds to a passing score,
// and only if it has been reviewed explicitly at least once. The
// extension stretches the current interval without touching the ease
// factor, so an eventual explicit review still carries full weight.
func PropagateImplicit(s *student.State, practicedTopicID string, quality int, now time.Time) []string {
	topic, err := knowledge.GetTopic(practicedTopicID)
	if err != nil {
		return nil
	}

	var touched []string
	today := student.DateOf(now)
	for _, edge := range topic.Prerequisites {
		if edge.Weight <= 0 {
			continue
		}
		prereq := s.Topic(edge.TopicID)
		if prereq == nil {
			continue
		}

		implicitQuality := int(math.Round(float64(quality) * edge.Weight))
		if implicitQuality < 3 {
			continue
		}
		if prereq.Interval <= 0 {
			continue
		}

		extended := int(math.Round(float64(prereq.Interval) * (1 + edge.Weight*0.5)))
		prereq.Interval = extended
		prereq.NextReview = today.AddDate(0, 0, extended)
		touched = append(touched, edge.TopicID)
	}
	return touched
}
