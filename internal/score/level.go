package score

// Level is the discrete performance tier derived from an overall rating.
type Level int

const (
	LevelNeedsImprovement Level = iota
	LevelDeveloping
	LevelGood
	LevelVeryGood
	LevelExcellent
	LevelElite
)

// String returns the display name for a performance level.
func (l Level) String() string {
	switch l {
	case LevelNeedsImprovement:
		return "Needs Improvement"
	case LevelDeveloping:
		return "Developing"
	case LevelGood:
		return "Good"
	case LevelVeryGood:
		return "Very Good"
	case LevelExcellent:
		return "Excellent"
	case LevelElite:
		return "Elite"
	default:
		return "Unknown"
	}
}

// ParseLevel maps a display name back to its Level. Unknown names fall
// back to the lowest level.
func ParseLevel(s string) Level {
	for l := LevelNeedsImprovement; l <= LevelElite; l++ {
		if l.String() == s {
			return l
		}
	}
	return LevelNeedsImprovement
}

// ClassifyLevel maps an overall rating onto its performance level.
// Bands are lower-inclusive; the top band is closed at the score cap.
// Out-of-range ratings are clamped first, so the function is total.
func ClassifyLevel(t Tuning, rating float64) Level {
	if rating < 0 {
		rating = 0
	}
	if rating > t.ScoreCap {
		rating = t.ScoreCap
	}

	switch {
	case rating >= t.Levels.Elite:
		return LevelElite
	case rating >= t.Levels.Excellent:
		return LevelExcellent
	case rating >= t.Levels.VeryGood:
		return LevelVeryGood
	case rating >= t.Levels.Good:
		return LevelGood
	case rating >= t.Levels.Developing:
		return LevelDeveloping
	default:
		return LevelNeedsImprovement
	}
}
