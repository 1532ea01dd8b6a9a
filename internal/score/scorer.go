package score

import "math"

// ScoreActivity computes the PeakLine Score for one activity: classify
// the terrain, look up the reference time for the same distance and
// terrain, and map the ratio of reference to actual time onto
// [0, ScoreCap]. Matching the reference exactly scores the cap; going
// faster than the reference stays clamped at the cap, so corrupt
// durations can never produce runaway scores.
func ScoreActivity(t Tuning, a Activity) (ActivityScore, error) {
	if err := a.Validate(); err != nil {
		return ActivityScore{}, err
	}

	terrain := ClassifyTerrain(t, a)
	ideal := IdealTime(t, a.Distance, terrain)
	actual := float64(a.MovingTime)

	ratio := ideal / actual
	points := math.Min(t.ScoreCap, math.Max(0, ratio*t.ScoreCap))

	return ActivityScore{
		ActivityID:    a.ID,
		Name:          a.Name,
		Date:          a.StartDate,
		Score:         points,
		Terrain:       terrain,
		IdealSeconds:  ideal,
		ActualSeconds: actual,
		Difficulty:    Difficulty(t, a.Distance, a.ElevationGain),
	}, nil
}

// Difficulty rates the route itself, independent of the athlete's time.
// Distance and elevation each contribute a multiplicative factor; the
// combined factor is capped so extreme routes stay comparable.
func Difficulty(t Tuning, distanceMeters, elevationGain float64) float64 {
	distanceFactor := 1.0 + (distanceMeters/100000)*t.Difficulty.PerHundredKm
	elevationFactor := 1.0 + (elevationGain/1000)*t.Difficulty.PerThousandMeters
	return math.Min(t.Difficulty.Max, distanceFactor*elevationFactor)
}
