package session

import (
	"math"
	"time"

	"github.com/mathpath/mathpath/internal/mastery"
	"github.com/mathpath/mathpath/internal/student"
)

// TodayXP sums the XP earned across sessions completed on the same
// calendar day as now.
func TodayXP(sessions []*Session, now time.Time) int {
	var sum int
	for _, s := range sessions {
		if student.SameDate(s.Date, now) {
			sum += s.TotalXPEarned
		}
	}
	return sum
}

// WeeklyStats aggregates the last seven days of history plus whole-state
// mastery and accuracy figures.
type WeeklyStats struct {
	Sessions        int
	XP              int
	TopicsMastered  int
	AverageAccuracy int // percent over all recorded attempts
}

// WeekStats reports activity for the seven days ending at now.
func WeekStats(sessions []*Session, s *student.State, now time.Time) WeeklyStats {
	weekAgo := student.DateOf(now).AddDate(0, 0, -7)

	var stats WeeklyStats
	for _, sess := range sessions {
		if sess.Date.Before(weekAgo) {
			continue
		}
		stats.Sessions++
		stats.XP += sess.TotalXPEarned
	}

	var attempts, correct int
	for _, ts := range s.TopicStates {
		if mastery.LevelFor(ts.Mastery()) == mastery.LevelMastered {
			stats.TopicsMastered++
		}
		for i := range ts.KnowledgePoints {
			attempts += ts.KnowledgePoints[i].Attempts
			correct += ts.KnowledgePoints[i].Correct
		}
	}
	if attempts > 0 {
		stats.AverageAccuracy = int(math.Round(float64(correct) / float64(attempts) * 100))
	}
	return stats
}
