package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// InsertRating appends a new rating snapshot. Snapshots are never
// updated; the latest row supersedes the rest.
func (db *DB) InsertRating(r *RatingSnapshot) error {
	ids, err := json.Marshal(r.ContributingIDs)
	if err != nil {
		return fmt.Errorf("encoding contributing ids: %w", err)
	}

	result, err := db.Exec(`
		INSERT INTO ratings (rating, level, sample_count, contributing_ids, computed_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.Rating, r.Level, r.SampleCount, string(ids), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	r.ID, err = result.LastInsertId()
	return err
}

// LatestRating returns the most recent rating snapshot
func (db *DB) LatestRating() (*RatingSnapshot, error) {
	row := db.QueryRow(`
		SELECT id, rating, level, sample_count, contributing_ids, computed_at
		FROM ratings
		ORDER BY id DESC
		LIMIT 1
	`)

	r, err := scanRating(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRating
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RatingHistory returns up to limit rating snapshots, oldest first,
// for charting
func (db *DB) RatingHistory(limit int) ([]RatingSnapshot, error) {
	rows, err := db.Query(`
		SELECT id, rating, level, sample_count, contributing_ids, computed_at
		FROM (
			SELECT * FROM ratings ORDER BY id DESC LIMIT ?
		)
		ORDER BY id ASC
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []RatingSnapshot
	for rows.Next() {
		r, err := scanRating(rows.Scan)
		if err != nil {
			return nil, err
		}
		history = append(history, *r)
	}
	return history, rows.Err()
}

func scanRating(scan func(...any) error) (*RatingSnapshot, error) {
	var r RatingSnapshot
	var ids, computedAt string

	if err := scan(&r.ID, &r.Rating, &r.Level, &r.SampleCount, &ids, &computedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ids), &r.ContributingIDs); err != nil {
		return nil, fmt.Errorf("decoding contributing ids: %w", err)
	}

	var err error
	r.ComputedAt, err = time.Parse(time.RFC3339, computedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing computed_at %q: %w", computedAt, err)
	}

	return &r, nil
}
