package store

import "time"

// UpsertScore stores the computed score for an activity, replacing any
// previous computation
func (db *DB) UpsertScore(s *ActivityScore) error {
	_, err := db.Exec(`
		INSERT INTO activity_scores (
			activity_id, score, terrain, ideal_seconds, actual_seconds,
			difficulty, computed_at
		) VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(activity_id) DO UPDATE SET
			score = excluded.score,
			terrain = excluded.terrain,
			ideal_seconds = excluded.ideal_seconds,
			actual_seconds = excluded.actual_seconds,
			difficulty = excluded.difficulty,
			computed_at = CURRENT_TIMESTAMP
	`, s.ActivityID, s.Score, s.Terrain, s.IdealSeconds, s.ActualSeconds, s.Difficulty)
	return err
}

// ListScoredActivities returns activities joined with their scores,
// newest first
func (db *DB) ListScoredActivities() ([]ScoredActivity, error) {
	rows, err := db.Query(`
		SELECT a.id, a.name, a.type, a.start_date, a.distance, a.moving_time,
			a.total_elevation_gain, a.source,
			s.score, s.terrain, s.ideal_seconds, s.actual_seconds, s.difficulty
		FROM activities a
		JOIN activity_scores s ON s.activity_id = a.id
		ORDER BY a.start_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ScoredActivity
	for rows.Next() {
		var sa ScoredActivity
		var startDate string
		err := rows.Scan(
			&sa.Activity.ID, &sa.Activity.Name, &sa.Activity.Type, &startDate,
			&sa.Activity.Distance, &sa.Activity.MovingTime,
			&sa.Activity.TotalElevationGain, &sa.Activity.Source,
			&sa.Score.Score, &sa.Score.Terrain, &sa.Score.IdealSeconds,
			&sa.Score.ActualSeconds, &sa.Score.Difficulty,
		)
		if err != nil {
			return nil, err
		}
		sa.Activity.StartDate, err = time.Parse(time.RFC3339, startDate)
		if err != nil {
			return nil, err
		}
		sa.Score.ActivityID = sa.Activity.ID
		result = append(result, sa)
	}
	return result, rows.Err()
}

// DeleteScores removes all computed scores, forcing a full recompute
func (db *DB) DeleteScores() error {
	_, err := db.Exec(`DELETE FROM activity_scores`)
	return err
}
