package score

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestScoreActivityAnchor(t *testing.T) {
	tuning := DefaultTuning()

	// Flat 10k run in exactly the reference time scores the cap.
	a := Activity{
		ID:         1,
		Name:       "Track 10k",
		StartDate:  time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		Distance:   10000,
		MovingTime: 1600,
	}

	got, err := ScoreActivity(tuning, a)
	if err != nil {
		t.Fatalf("ScoreActivity() error: %v", err)
	}
	if math.Abs(got.Score-1000) > 0.01 {
		t.Errorf("Score = %.2f, want 1000 at the anchor point", got.Score)
	}
	if got.Terrain != TerrainFlat {
		t.Errorf("Terrain = %v, want Flat", got.Terrain)
	}
	if math.Abs(got.IdealSeconds-1600) > 0.01 {
		t.Errorf("IdealSeconds = %.2f, want 1600", got.IdealSeconds)
	}
	if got.ActualSeconds != 1600 {
		t.Errorf("ActualSeconds = %.2f, want 1600", got.ActualSeconds)
	}
}

func TestScoreActivityDoubledDuration(t *testing.T) {
	tuning := DefaultTuning()

	base := Activity{ID: 1, Distance: 10000, MovingTime: 1600}
	slow := Activity{ID: 2, Distance: 10000, MovingTime: 3200}

	baseScore, err := ScoreActivity(tuning, base)
	if err != nil {
		t.Fatalf("ScoreActivity(base) error: %v", err)
	}
	slowScore, err := ScoreActivity(tuning, slow)
	if err != nil {
		t.Fatalf("ScoreActivity(slow) error: %v", err)
	}

	if slowScore.Score >= baseScore.Score {
		t.Errorf("doubled duration should score lower: %.1f >= %.1f", slowScore.Score, baseScore.Score)
	}
	if slowScore.Score < 0 {
		t.Errorf("score must never go negative, got %.1f", slowScore.Score)
	}
	if math.Abs(slowScore.Score-500) > 0.01 {
		t.Errorf("half the reference pace should score 500, got %.2f", slowScore.Score)
	}
}

func TestScoreActivityClampsAboveCap(t *testing.T) {
	tuning := DefaultTuning()

	// A duration far too short for the distance (data error) must clamp
	// at the cap, never extrapolate.
	a := Activity{ID: 1, Distance: 42195, MovingTime: 60}
	got, err := ScoreActivity(tuning, a)
	if err != nil {
		t.Fatalf("ScoreActivity() error: %v", err)
	}
	if got.Score != tuning.ScoreCap {
		t.Errorf("Score = %.1f, want clamped to cap %.1f", got.Score, tuning.ScoreCap)
	}
}

func TestScoreActivityBounds(t *testing.T) {
	tuning := DefaultTuning()

	// Any valid activity lands inside [0, 1000].
	activities := []Activity{
		{ID: 1, Distance: 1000, MovingTime: 130},
		{ID: 2, Distance: 5000, MovingTime: 3600},
		{ID: 3, Distance: 10000, ElevationGain: 450, MovingTime: 7200},
		{ID: 4, Distance: 42195, ElevationGain: 50, MovingTime: 4 * 3600},
		{ID: 5, Distance: 100, MovingTime: 100000},
	}

	for _, a := range activities {
		got, err := ScoreActivity(tuning, a)
		if err != nil {
			t.Fatalf("ScoreActivity(%d) error: %v", a.ID, err)
		}
		if got.Score < 0 || got.Score > tuning.ScoreCap {
			t.Errorf("activity %d: score %.2f outside [0, %.0f]", a.ID, got.Score, tuning.ScoreCap)
		}
	}
}

func TestScoreActivityIdempotent(t *testing.T) {
	tuning := DefaultTuning()

	a := Activity{
		ID:            7,
		Name:          "Hilly loop",
		StartDate:     time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC),
		Distance:      12500,
		ElevationGain: 140,
		MovingTime:    4100,
	}

	first, err := ScoreActivity(tuning, a)
	if err != nil {
		t.Fatalf("ScoreActivity() error: %v", err)
	}
	second, err := ScoreActivity(tuning, a)
	if err != nil {
		t.Fatalf("ScoreActivity() error: %v", err)
	}
	if first != second {
		t.Errorf("re-scoring the same activity differs: %+v vs %+v", first, second)
	}
}

func TestScoreActivityInvalid(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		name     string
		activity Activity
	}{
		{"zero distance", Activity{Distance: 0, MovingTime: 100}},
		{"negative distance", Activity{Distance: -5, MovingTime: 100}},
		{"zero duration", Activity{Distance: 5000, MovingTime: 0}},
		{"negative duration", Activity{Distance: 5000, MovingTime: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScoreActivity(tuning, tt.activity)
			if !errors.Is(err, ErrInvalidActivity) {
				t.Errorf("ScoreActivity() error = %v, want ErrInvalidActivity", err)
			}
		})
	}
}

func TestDifficulty(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		name     string
		distance float64
		gain     float64
		want     float64
	}{
		{"short flat", 5000, 0, 1.005},
		{"10k with 500m gain", 10000, 500, 1.01 * 1.1},
		{"monster route clamps at max", 300000, 15000, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Difficulty(tuning, tt.distance, tt.gain)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Difficulty(%.0f, %.0f) = %.3f, want %.3f", tt.distance, tt.gain, got, tt.want)
			}
		})
	}
}
