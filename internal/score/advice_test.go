package score

import (
	"testing"
)

func TestAdviseWeakestTerrain(t *testing.T) {
	tuning := DefaultTuning()

	contributing := []ActivityScore{
		{Score: 900, Terrain: TerrainFlat, Date: day(1)},
		{Score: 880, Terrain: TerrainFlat, Date: day(2)},
		{Score: 600, Terrain: TerrainHills, Date: day(3)},
		{Score: 850, Terrain: TerrainMountains, Date: day(4)},
	}

	tips := Advise(tuning, LevelGood, contributing)
	if len(tips) == 0 {
		t.Fatal("Advise() returned no tips")
	}
	if len(tips) > 3 {
		t.Errorf("Advise() returned %d tips, want at most 3", len(tips))
	}
	for _, tip := range tips {
		if tip.Dimension != DimensionHills {
			t.Errorf("tip dimension = %v, want Hills (the weakest terrain)", tip.Dimension)
		}
		if tip.Level != LevelGood {
			t.Errorf("tip level = %v, want Good", tip.Level)
		}
		if tip.Message == "" {
			t.Error("tip has an empty message")
		}
	}
}

func TestAdviseGenericWhenEqual(t *testing.T) {
	tuning := DefaultTuning()

	contributing := []ActivityScore{
		{Score: 700, Terrain: TerrainFlat, Date: day(1)},
		{Score: 700, Terrain: TerrainHills, Date: day(2)},
		{Score: 700, Terrain: TerrainMountains, Date: day(3)},
	}

	tips := Advise(tuning, LevelVeryGood, contributing)
	if len(tips) == 0 {
		t.Fatal("Advise() returned no tips")
	}
	for _, tip := range tips {
		if tip.Dimension != DimensionGeneral {
			t.Errorf("tip dimension = %v, want General when terrains score equally", tip.Dimension)
		}
	}
}

func TestAdviseSingleTerrainIsGeneric(t *testing.T) {
	tuning := DefaultTuning()

	contributing := []ActivityScore{
		{Score: 500, Terrain: TerrainFlat, Date: day(1)},
		{Score: 650, Terrain: TerrainFlat, Date: day(2)},
	}

	tips := Advise(tuning, LevelDeveloping, contributing)
	for _, tip := range tips {
		if tip.Dimension != DimensionGeneral {
			t.Errorf("single-terrain history should give general tips, got %v", tip.Dimension)
		}
	}
}

func TestAdviseTieGoesToEasierTerrain(t *testing.T) {
	tuning := DefaultTuning()

	contributing := []ActivityScore{
		{Score: 600, Terrain: TerrainFlat, Date: day(1)},
		{Score: 600, Terrain: TerrainHills, Date: day(2)},
		{Score: 900, Terrain: TerrainMountains, Date: day(3)},
	}

	tips := Advise(tuning, LevelGood, contributing)
	if len(tips) == 0 {
		t.Fatal("Advise() returned no tips")
	}
	if tips[0].Dimension != DimensionFlat {
		t.Errorf("tied weakest terrains should resolve to the easier one, got %v", tips[0].Dimension)
	}
}

func TestAdviseDeterministic(t *testing.T) {
	tuning := DefaultTuning()

	contributing := []ActivityScore{
		{Score: 400, Terrain: TerrainMountains, Date: day(1)},
		{Score: 800, Terrain: TerrainFlat, Date: day(2)},
	}

	first := Advise(tuning, LevelExcellent, contributing)
	second := Advise(tuning, LevelExcellent, contributing)
	if len(first) != len(second) {
		t.Fatalf("tip counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("tip %d differs between calls", i)
		}
	}
}

func TestCatalogHasGeneralTipsForEveryLevel(t *testing.T) {
	if err := catalogCheck(); err != nil {
		t.Error(err)
	}
}

func TestTrendAssessment(t *testing.T) {
	tuning := DefaultTuning()

	tests := []struct {
		name   string
		scores []float64
		want   string
	}{
		{"improving", []float64{500, 550, 620}, "Scores are trending up. Keep doing what you are doing."},
		{"declining", []float64{700, 650, 600}, "Recent scores are below your earlier efforts. Review your training load and recovery."},
		{"steady", []float64{640, 700, 640}, "Scores are holding steady. Try a new route or distance to break the plateau."},
		{"too few", []float64{800, 900}, "Not enough scored activities to assess a trend yet."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var scores []ActivityScore
			for i, s := range tt.scores {
				scores = append(scores, ActivityScore{Score: s, Date: day(i)})
			}
			if got := TrendAssessment(tuning, scores); got != tt.want {
				t.Errorf("TrendAssessment() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTrendAssessmentUsesNewestWindow(t *testing.T) {
	tuning := DefaultTuning()

	// Older scores outside the window must not affect the result.
	scores := []ActivityScore{
		{Score: 990, Date: day(0)},
		{Score: 100, Date: day(1)},
		{Score: 200, Date: day(2)},
		{Score: 300, Date: day(3)},
	}
	want := "Scores are trending up. Keep doing what you are doing."
	if got := TrendAssessment(tuning, scores); got != want {
		t.Errorf("TrendAssessment() = %q, want %q", got, want)
	}
}
