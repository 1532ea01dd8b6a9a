package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Imported activities (normalized summaries)
		`CREATE TABLE IF NOT EXISTS activities (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			start_date TEXT NOT NULL,
			distance REAL NOT NULL,
			moving_time INTEGER NOT NULL,
			total_elevation_gain REAL NOT NULL DEFAULT 0,
			source TEXT NOT NULL DEFAULT 'export',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_activities_start_date ON activities(start_date)`,

		// Per-kilometer route segments (for segment-level terrain classification)
		`CREATE TABLE IF NOT EXISTS activity_segments (
			activity_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			distance REAL NOT NULL,
			elevation_gain REAL NOT NULL,
			PRIMARY KEY (activity_id, seq),
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		// Computed PeakLine Scores (one snapshot per activity, recomputed in place)
		`CREATE TABLE IF NOT EXISTS activity_scores (
			activity_id INTEGER PRIMARY KEY,
			score REAL NOT NULL,
			terrain TEXT NOT NULL,
			ideal_seconds REAL NOT NULL,
			actual_seconds REAL NOT NULL,
			difficulty REAL NOT NULL,
			computed_at TEXT DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
		)`,

		// Overall rating snapshots (append-only; a new computation
		// supersedes the previous row, nothing is updated in place)
		`CREATE TABLE IF NOT EXISTS ratings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rating REAL NOT NULL,
			level TEXT NOT NULL,
			sample_count INTEGER NOT NULL,
			contributing_ids TEXT NOT NULL,
			computed_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_ratings_computed_at ON ratings(computed_at)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
