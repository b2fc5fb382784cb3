package spacedrep

import (
	"sort"
	"time"

	"github.com/mathpath/mathpath/internal/knowledge"
	"github.com/mathpath/mathpath/internal/student"
)

// ReviewMasteryCutoff keeps barely-started topics out of the review
// queue; below this mastery the learner is still acquiring, not
// retaining.
const ReviewMasteryCutoff = 10.0

// DueForReview returns the topic ids whose next review date has
// arrived, most overdue first. Topics never reviewed or with mastery
// below the cutoff are excluded. Topics due on the same date keep
// their graph declaration order.
func DueForReview(s *student.State, now time.Time) []string {
	today := student.DateOf(now)

	type due struct {
		topicID string
		next    time.Time
	}
	var dues []due
	for _, topic := range knowledge.AllTopics() {
		ts := s.Topic(topic.ID)
		if ts == nil || ts.NextReview.IsZero() || ts.NextReview.After(today) {
			continue
		}
		if ts.Mastery() < ReviewMasteryCutoff {
			continue
		}
		dues = append(dues, due{topicID: topic.ID, next: ts.NextReview})
	}

	sort.SliceStable(dues, func(i, j int) bool {
		return dues[i].next.Before(dues[j].next)
	})

	ids := make([]string, len(dues))
	for i, d := range dues {
		ids[i] = d.topicID
	}
	return ids
}
