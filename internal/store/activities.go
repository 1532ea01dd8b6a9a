package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// UpsertActivity inserts or updates an activity and replaces its segments
func (db *DB) UpsertActivity(a *Activity, segments []Segment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO activities (
			id, name, type, start_date, distance, moving_time,
			total_elevation_gain, source, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type,
			start_date = excluded.start_date,
			distance = excluded.distance,
			moving_time = excluded.moving_time,
			total_elevation_gain = excluded.total_elevation_gain,
			source = excluded.source,
			updated_at = CURRENT_TIMESTAMP
	`,
		a.ID, a.Name, a.Type, a.StartDate.Format(time.RFC3339),
		a.Distance, a.MovingTime, a.TotalElevationGain, a.Source,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM activity_segments WHERE activity_id = ?`, a.ID); err != nil {
		return err
	}
	for i, s := range segments {
		_, err := tx.Exec(`
			INSERT INTO activity_segments (activity_id, seq, distance, elevation_gain)
			VALUES (?, ?, ?, ?)
		`, a.ID, i, s.Distance, s.ElevationGain)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetActivity retrieves an activity by ID
func (db *DB) GetActivity(id int64) (*Activity, error) {
	row := db.QueryRow(`
		SELECT id, name, type, start_date, distance, moving_time, total_elevation_gain, source
		FROM activities
		WHERE id = ?
	`, id)

	a, err := scanActivity(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListActivities returns activities ordered by start date descending
func (db *DB) ListActivities() ([]Activity, error) {
	rows, err := db.Query(`
		SELECT id, name, type, start_date, distance, moving_time, total_elevation_gain, source
		FROM activities
		ORDER BY start_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}
	return activities, rows.Err()
}

// GetSegments returns an activity's route segments in order
func (db *DB) GetSegments(activityID int64) ([]Segment, error) {
	rows, err := db.Query(`
		SELECT activity_id, seq, distance, elevation_gain
		FROM activity_segments
		WHERE activity_id = ?
		ORDER BY seq
	`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var segments []Segment
	for rows.Next() {
		var s Segment
		if err := rows.Scan(&s.ActivityID, &s.Seq, &s.Distance, &s.ElevationGain); err != nil {
			return nil, err
		}
		segments = append(segments, s)
	}
	return segments, rows.Err()
}

// CountActivities returns the total number of activities
func (db *DB) CountActivities() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM activities").Scan(&count)
	return count, err
}

// scanActivity scans one activity using the given Scan function
func scanActivity(scan func(...any) error) (*Activity, error) {
	var a Activity
	var startDate string

	err := scan(&a.ID, &a.Name, &a.Type, &startDate,
		&a.Distance, &a.MovingTime, &a.TotalElevationGain, &a.Source)
	if err != nil {
		return nil, err
	}

	a.StartDate, err = time.Parse(time.RFC3339, startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start_date %q: %w", startDate, err)
	}

	return &a, nil
}
