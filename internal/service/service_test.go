package service

import (
	"database/sql"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"peakline/internal/score"
	"peakline/internal/store"
)

func setupTestDB(t *testing.T) *store.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := store.NewTestDB(sqlDB)
	if err != nil {
		t.Fatalf("Failed to set up test database: %v", err)
	}
	return db
}

func newTestServices(t *testing.T) (*ScoreService, *QueryService, *store.DB) {
	t.Helper()
	db := setupTestDB(t)
	tuning := score.DefaultTuning()
	return NewScoreService(db, tuning, zap.NewNop().Sugar()),
		NewQueryService(db, tuning), db
}

func insertRun(t *testing.T, db *store.DB, id int64, day int, distance float64, movingTime int, gain float64) {
	t.Helper()
	err := db.UpsertActivity(&store.Activity{
		ID:                 id,
		Name:               "Run",
		Type:               "Run",
		StartDate:          time.Date(2025, 2, day, 7, 0, 0, 0, time.UTC),
		Distance:           distance,
		MovingTime:         movingTime,
		TotalElevationGain: gain,
		Source:             "export",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
}

func TestRecompute(t *testing.T) {
	svc, _, db := newTestServices(t)

	// Flat 10k at reference pace (1600s) and one at double that.
	insertRun(t, db, 1, 1, 10000, 1600, 0)
	insertRun(t, db, 2, 2, 10000, 3200, 0)

	rating, level, err := svc.Recompute()
	if err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	if rating.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", rating.SampleCount)
	}
	if math.Abs(rating.Rating-750) > 0.01 {
		t.Errorf("Rating = %.2f, want 750 (mean of 1000 and 500)", rating.Rating)
	}
	if level != score.LevelVeryGood {
		t.Errorf("level = %v, want Very Good", level)
	}

	// Scores are persisted
	scored, err := db.ListScoredActivities()
	if err != nil {
		t.Fatal(err)
	}
	if len(scored) != 2 {
		t.Fatalf("stored scores = %d, want 2", len(scored))
	}

	// A snapshot is stored
	snap, err := db.LatestRating()
	if err != nil {
		t.Fatalf("LatestRating() error: %v", err)
	}
	if snap.Level != "Very Good" || snap.SampleCount != 2 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestRecomputeSupersedesRating(t *testing.T) {
	svc, _, db := newTestServices(t)

	insertRun(t, db, 1, 1, 10000, 1600, 0)
	if _, _, err := svc.Recompute(); err != nil {
		t.Fatal(err)
	}

	insertRun(t, db, 2, 2, 10000, 3200, 0)
	if _, _, err := svc.Recompute(); err != nil {
		t.Fatal(err)
	}

	history, err := db.RatingHistory(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 2 {
		t.Fatalf("rating history = %d snapshots, want 2 (append-only)", len(history))
	}
	if history[0].Rating <= history[1].Rating {
		t.Errorf("second snapshot should be lower: %.0f then %.0f", history[0].Rating, history[1].Rating)
	}
}

func TestRecomputeEmptyStore(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, _, err := svc.Recompute()
	if !errors.Is(err, score.ErrInsufficientData) {
		t.Errorf("Recompute() on empty store = %v, want ErrInsufficientData", err)
	}
}

func TestRecomputeUsesSegments(t *testing.T) {
	svc, _, db := newTestServices(t)

	// Whole-route grade is hilly (100m over 10km), but 7 of 10 km are
	// dead flat, so segment classification should call it Flat.
	err := db.UpsertActivity(&store.Activity{
		ID:                 1,
		Name:               "Mixed Run",
		Type:               "Run",
		StartDate:          time.Date(2025, 2, 1, 7, 0, 0, 0, time.UTC),
		Distance:           10000,
		MovingTime:         1600,
		TotalElevationGain: 100,
		Source:             "gpx",
	}, []store.Segment{
		{ActivityID: 1, Seq: 0, Distance: 7000, ElevationGain: 0},
		{ActivityID: 1, Seq: 1, Distance: 3000, ElevationGain: 100},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Recompute(); err != nil {
		t.Fatal(err)
	}

	scored, err := db.ListScoredActivities()
	if err != nil {
		t.Fatal(err)
	}
	if scored[0].Score.Terrain != "Flat" {
		t.Errorf("terrain = %q, want Flat from segment classification", scored[0].Score.Terrain)
	}
}

func TestImportExportToRecompute(t *testing.T) {
	svc, query, _ := newTestServices(t)

	path := filepath.Join(t.TempDir(), "export.json")
	fixture := `[
		{"id": 1, "name": "Tempo", "type": "Run", "start_date": "2025-03-01T07:00:00Z",
		 "distance": 10000, "moving_time": 2000, "total_elevation_gain": 10},
		{"id": 2, "name": "Spin", "type": "Ride", "start_date": "2025-03-02T07:00:00Z",
		 "distance": 30000, "moving_time": 3600, "total_elevation_gain": 150},
		{"id": 3, "name": "Easy", "type": "Run", "start_date": "2025-03-03T07:00:00Z",
		 "distance": 8000, "moving_time": 2800, "total_elevation_gain": 5}
	]`
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatal(err)
	}

	imported, skipped, err := svc.ImportExport(path)
	if err != nil {
		t.Fatalf("ImportExport() error: %v", err)
	}
	if imported != 2 || skipped != 1 {
		t.Errorf("imported/skipped = %d/%d, want 2/1", imported, skipped)
	}

	if _, _, err := svc.Recompute(); err != nil {
		t.Fatalf("Recompute() error: %v", err)
	}

	d, err := query.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard() error: %v", err)
	}
	if d.Rating == nil {
		t.Fatal("dashboard rating is nil after recompute")
	}
	if d.Rating.SampleCount != 2 {
		t.Errorf("SampleCount = %d, want 2", d.Rating.SampleCount)
	}
	if d.ActivityCount != 2 {
		t.Errorf("ActivityCount = %d, want 2", d.ActivityCount)
	}
	if len(d.RecentScores) != 2 {
		t.Errorf("RecentScores = %d, want 2", len(d.RecentScores))
	}
	if len(d.Tips) == 0 {
		t.Error("dashboard has no tips")
	}
	if d.Trend == "" {
		t.Error("dashboard has no trend assessment")
	}
	if len(d.History) != 1 {
		t.Errorf("History = %d points, want 1", len(d.History))
	}
}

func TestGetDashboardEmpty(t *testing.T) {
	_, query, _ := newTestServices(t)

	d, err := query.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard() error: %v", err)
	}
	if d.Rating != nil {
		t.Errorf("Rating = %+v, want nil before any computation", d.Rating)
	}
	if d.ActivityCount != 0 {
		t.Errorf("ActivityCount = %d, want 0", d.ActivityCount)
	}
}
