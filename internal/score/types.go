package score

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidActivity is returned when an activity violates the basic
// distance/duration invariants and cannot be scored.
var ErrInvalidActivity = errors.New("invalid activity")

// ErrInsufficientData is returned when there are no scored activities
// to aggregate into an overall rating.
var ErrInsufficientData = errors.New("insufficient data")

// Activity is a normalized endurance activity as produced by an importer.
// Distances are meters, durations are seconds.
type Activity struct {
	ID            int64
	Name          string
	StartDate     time.Time
	Distance      float64 // meters
	ElevationGain float64 // meters of total ascent
	MovingTime    int     // seconds
	Segments      []Segment
}

// Segment is an ordered sub-section of an activity, used for finer
// terrain classification. An activity without segments is treated as
// a single segment covering the whole route.
type Segment struct {
	Distance      float64 // meters
	ElevationGain float64 // meters
}

// Validate checks the invariants every activity must satisfy before
// it enters the scoring pipeline.
func (a Activity) Validate() error {
	if a.Distance <= 0 {
		return fmt.Errorf("%w: distance %.1fm must be positive", ErrInvalidActivity, a.Distance)
	}
	if a.MovingTime <= 0 {
		return fmt.Errorf("%w: moving time %ds must be positive", ErrInvalidActivity, a.MovingTime)
	}
	return nil
}

// ActivityScore is the scored result for a single activity.
type ActivityScore struct {
	ActivityID    int64
	Name          string
	Date          time.Time
	Score         float64 // 0..ScoreCap
	Terrain       Terrain
	IdealSeconds  float64
	ActualSeconds float64
	Difficulty    float64
}

// OverallRating is the best-N aggregate of an athlete's activity scores.
// A fresh computation supersedes the previous one; ratings are never
// partially updated.
type OverallRating struct {
	Rating       float64
	Contributing []ActivityScore
	SampleCount  int
}
