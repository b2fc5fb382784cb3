package student

const (
	// XPPerLevel is how much XP separates consecutive levels.
	XPPerLevel = 500
	// DailyXPTarget is the soft goal shown for a single day of practice.
	DailyXPTarget = 100
	// WorkedExampleXP is the flat award for reading a worked example.
	WorkedExampleXP = 5
)

// LevelFromXP converts cumulative XP to a level, starting at 1.
func LevelFromXP(xp int) int {
	return xp/XPPerLevel + 1
}

// XPProgress returns the XP accumulated toward the next level.
func XPProgress(xp int) int {
	return xp % XPPerLevel
}

// ProblemXPValue returns the base XP for a problem targeting the given
// knowledge point level (1 through 3).
func ProblemXPValue(kpLevel int) int {
	switch kpLevel {
	case 1:
		return 5
	case 2:
		return 10
	default:
		return 15
	}
}

// EarnedXP computes the XP awarded for a practice attempt. Hints cost
// 2 XP each, but a correct answer always earns at least 1.
func EarnedXP(xpValue int, correct bool, hintsUsed int) int {
	if !correct {
		return 0
	}
	earned := xpValue - 2*hintsUsed
	if earned < 1 {
		earned = 1
	}
	return earned
}

// AddXP adds earned XP to the running total and recomputes the level.
func (s *State) AddXP(xp int) {
	s.TotalXP += xp
	s.Level = LevelFromXP(s.TotalXP)
}
