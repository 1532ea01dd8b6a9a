package store

import "time"

// Activity represents an imported activity summary
type Activity struct {
	ID                 int64     `db:"id"`
	Name               string    `db:"name"`
	Type               string    `db:"type"`
	StartDate          time.Time `db:"start_date"`
	Distance           float64   `db:"distance"`    // meters
	MovingTime         int       `db:"moving_time"` // seconds
	TotalElevationGain float64   `db:"total_elevation_gain"`
	Source             string    `db:"source"` // "export" or "gpx"
}

// Segment represents one per-kilometer slice of an activity's route
type Segment struct {
	ActivityID    int64   `db:"activity_id"`
	Seq           int     `db:"seq"`
	Distance      float64 `db:"distance"`
	ElevationGain float64 `db:"elevation_gain"`
}

// ActivityScore represents the computed PeakLine Score for an activity
type ActivityScore struct {
	ActivityID    int64     `db:"activity_id"`
	Score         float64   `db:"score"`
	Terrain       string    `db:"terrain"`
	IdealSeconds  float64   `db:"ideal_seconds"`
	ActualSeconds float64   `db:"actual_seconds"`
	Difficulty    float64   `db:"difficulty"`
	ComputedAt    time.Time `db:"computed_at"`
}

// RatingSnapshot represents one overall rating computation
type RatingSnapshot struct {
	ID              int64     `db:"id"`
	Rating          float64   `db:"rating"`
	Level           string    `db:"level"`
	SampleCount     int       `db:"sample_count"`
	ContributingIDs []int64   `db:"contributing_ids"` // stored as JSON
	ComputedAt      time.Time `db:"computed_at"`
}

// ScoredActivity pairs an activity with its computed score
type ScoredActivity struct {
	Activity Activity
	Score    ActivityScore
}
