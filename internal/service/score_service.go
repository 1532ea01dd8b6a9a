package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"peakline/internal/importer"
	"peakline/internal/score"
	"peakline/internal/store"
)

// ScoreService runs the write path: importing activities and computing
// scores and rating snapshots from them.
type ScoreService struct {
	db     *store.DB
	tuning score.Tuning
	log    *zap.SugaredLogger
}

// NewScoreService creates a new score service
func NewScoreService(db *store.DB, tuning score.Tuning, log *zap.SugaredLogger) *ScoreService {
	return &ScoreService{db: db, tuning: tuning, log: log}
}

// ImportExport imports activities from a JSON export file into the
// store. Skipped entries are logged, not fatal.
func (s *ScoreService) ImportExport(path string) (imported, skipped int, err error) {
	result, err := importer.ReadExport(path)
	if err != nil {
		return 0, 0, err
	}

	for _, sk := range result.Skipped {
		s.log.Infow("skipping export entry", "id", sk.ID, "name", sk.Name, "reason", sk.Reason)
	}

	for _, a := range result.Activities {
		if err := s.db.UpsertActivity(toStoreActivity(a, "export"), toStoreSegments(a)); err != nil {
			return imported, len(result.Skipped), fmt.Errorf("storing activity %d: %w", a.ID, err)
		}
		imported++
	}

	s.log.Infow("export import finished", "path", path, "imported", imported, "skipped", len(result.Skipped))
	return imported, len(result.Skipped), nil
}

// ImportGPX imports GPX track files into the store. A file that fails
// to parse is logged and counted as skipped; the rest still import.
func (s *ScoreService) ImportGPX(paths []string) (imported, skipped int, err error) {
	for _, path := range paths {
		a, err := importer.ReadGPX(path)
		if err != nil {
			s.log.Warnw("skipping gpx file", "path", path, "error", err)
			skipped++
			continue
		}
		if err := s.db.UpsertActivity(toStoreActivity(a, "gpx"), toStoreSegments(a)); err != nil {
			return imported, skipped, fmt.Errorf("storing gpx activity %d: %w", a.ID, err)
		}
		imported++
	}

	s.log.Infow("gpx import finished", "imported", imported, "skipped", skipped)
	return imported, skipped, nil
}

// Recompute scores every stored activity and appends a fresh rating
// snapshot. Activities that fail validation are logged and excluded;
// ErrInsufficientData is returned when nothing scored.
func (s *ScoreService) Recompute() (*score.OverallRating, score.Level, error) {
	activities, err := s.db.ListActivities()
	if err != nil {
		return nil, 0, fmt.Errorf("listing activities: %w", err)
	}

	var scores []score.ActivityScore
	for _, a := range activities {
		segments, err := s.db.GetSegments(a.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("loading segments for %d: %w", a.ID, err)
		}

		result, err := score.ScoreActivity(s.tuning, toEngineActivity(a, segments))
		if errors.Is(err, score.ErrInvalidActivity) {
			s.log.Warnw("excluding invalid activity", "id", a.ID, "error", err)
			continue
		}
		if err != nil {
			return nil, 0, fmt.Errorf("scoring activity %d: %w", a.ID, err)
		}

		if err := s.db.UpsertScore(&store.ActivityScore{
			ActivityID:    result.ActivityID,
			Score:         result.Score,
			Terrain:       result.Terrain.String(),
			IdealSeconds:  result.IdealSeconds,
			ActualSeconds: result.ActualSeconds,
			Difficulty:    result.Difficulty,
		}); err != nil {
			return nil, 0, fmt.Errorf("storing score for %d: %w", a.ID, err)
		}

		scores = append(scores, result)
	}

	rating, err := score.Aggregate(s.tuning, scores)
	if err != nil {
		return nil, 0, err
	}
	level := score.ClassifyLevel(s.tuning, rating.Rating)

	contributingIDs := make([]int64, len(rating.Contributing))
	for i, c := range rating.Contributing {
		contributingIDs[i] = c.ActivityID
	}

	if err := s.db.InsertRating(&store.RatingSnapshot{
		Rating:          rating.Rating,
		Level:           level.String(),
		SampleCount:     rating.SampleCount,
		ContributingIDs: contributingIDs,
	}); err != nil {
		return nil, 0, fmt.Errorf("storing rating snapshot: %w", err)
	}

	s.log.Infow("rating recomputed",
		"rating", rating.Rating, "level", level.String(),
		"sample_count", rating.SampleCount, "scored", len(scores))

	return &rating, level, nil
}

func toStoreActivity(a score.Activity, source string) *store.Activity {
	return &store.Activity{
		ID:                 a.ID,
		Name:               a.Name,
		Type:               "Run",
		StartDate:          a.StartDate,
		Distance:           a.Distance,
		MovingTime:         a.MovingTime,
		TotalElevationGain: a.ElevationGain,
		Source:             source,
	}
}

func toStoreSegments(a score.Activity) []store.Segment {
	segments := make([]store.Segment, len(a.Segments))
	for i, s := range a.Segments {
		segments[i] = store.Segment{
			ActivityID:    a.ID,
			Seq:           i,
			Distance:      s.Distance,
			ElevationGain: s.ElevationGain,
		}
	}
	return segments
}

func toEngineActivity(a store.Activity, segments []store.Segment) score.Activity {
	engineSegments := make([]score.Segment, len(segments))
	for i, s := range segments {
		engineSegments[i] = score.Segment{Distance: s.Distance, ElevationGain: s.ElevationGain}
	}
	return score.Activity{
		ID:            a.ID,
		Name:          a.Name,
		StartDate:     a.StartDate,
		Distance:      a.Distance,
		ElevationGain: a.TotalElevationGain,
		MovingTime:    a.MovingTime,
		Segments:      engineSegments,
	}
}
