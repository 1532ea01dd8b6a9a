package service

import (
	"errors"
	"fmt"
	"sort"

	"peakline/internal/score"
	"peakline/internal/store"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	db     *store.DB
	tuning score.Tuning
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, tuning score.Tuning) *QueryService {
	return &QueryService{db: db, tuning: tuning}
}

// Dashboard contains all data needed for the dashboard screen
type Dashboard struct {
	// Latest rating; nil when no rating has been computed yet
	Rating *store.RatingSnapshot

	// Advice for the current level and weakest terrain
	Tips  []score.Tip
	Trend string

	// Rating history for the chart, oldest first
	History []float64

	// Most recent scored activities
	RecentScores []store.ScoredActivity

	ActivityCount int
}

// GetDashboard fetches everything the dashboard shows. A store without
// any rating yet is not an error; the Rating field is nil then.
func (q *QueryService) GetDashboard() (*Dashboard, error) {
	d := &Dashboard{}

	count, err := q.db.CountActivities()
	if err != nil {
		return nil, fmt.Errorf("counting activities: %w", err)
	}
	d.ActivityCount = count

	rating, err := q.db.LatestRating()
	if errors.Is(err, store.ErrNoRating) {
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading rating: %w", err)
	}
	d.Rating = rating

	scored, err := q.db.ListScoredActivities()
	if err != nil {
		return nil, fmt.Errorf("loading scores: %w", err)
	}
	if len(scored) > RecentScoresLimit {
		d.RecentScores = scored[:RecentScoresLimit]
	} else {
		d.RecentScores = scored
	}

	scores := toEngineScores(scored)
	d.Tips = q.adviseFrom(rating, scores)
	d.Trend = q.trendFrom(scores)

	history, err := q.db.RatingHistory(RatingHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading rating history: %w", err)
	}
	for _, h := range history {
		d.History = append(d.History, h.Rating)
	}

	return d, nil
}

// ListScores returns all scored activities, newest first
func (q *QueryService) ListScores() ([]store.ScoredActivity, error) {
	return q.db.ListScoredActivities()
}

// adviseFrom rebuilds the contributing set deterministically from the
// stored scores and selects tips for the stored level.
func (q *QueryService) adviseFrom(rating *store.RatingSnapshot, scores []score.ActivityScore) []score.Tip {
	aggregated, err := score.Aggregate(q.tuning, scores)
	if err != nil {
		return nil
	}
	level := score.ClassifyLevel(q.tuning, rating.Rating)
	return score.Advise(q.tuning, level, aggregated.Contributing)
}

func (q *QueryService) trendFrom(scores []score.ActivityScore) string {
	chronological := make([]score.ActivityScore, len(scores))
	copy(chronological, scores)
	sort.SliceStable(chronological, func(i, j int) bool {
		return chronological[i].Date.Before(chronological[j].Date)
	})
	return score.TrendAssessment(q.tuning, chronological)
}

func toEngineScores(scored []store.ScoredActivity) []score.ActivityScore {
	scores := make([]score.ActivityScore, len(scored))
	for i, sa := range scored {
		scores[i] = score.ActivityScore{
			ActivityID:    sa.Activity.ID,
			Name:          sa.Activity.Name,
			Date:          sa.Activity.StartDate,
			Score:         sa.Score.Score,
			Terrain:       score.ParseTerrain(sa.Score.Terrain),
			IdealSeconds:  sa.Score.IdealSeconds,
			ActualSeconds: sa.Score.ActualSeconds,
			Difficulty:    sa.Score.Difficulty,
		}
	}
	return scores
}
