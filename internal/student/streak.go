package student

import "time"

// TouchStreak records activity at the given time. Repeated activity on
// the same UTC date is a no-op; activity on the day after the last
// active date extends the streak; anything else restarts it at 1.
func (s *State) TouchStreak(now time.Time) {
	today := DateOf(now)
	if !s.LastActiveDate.IsZero() && SameDate(s.LastActiveDate, today) {
		return
	}

	yesterday := today.AddDate(0, 0, -1)
	if !s.LastActiveDate.IsZero() && SameDate(s.LastActiveDate, yesterday) {
		s.CurrentStreak++
	} else {
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastActiveDate = today
}
