package score

import "fmt"

// Tuning collects every tunable constant in the engine: terrain grade
// breakpoints, the reference pace table, best-N count, the score cap and
// level cutoffs. It is loaded once at startup, validated, and passed
// explicitly into each function so the engine stays pure.
type Tuning struct {
	Terrain     TerrainGrades     `yaml:"terrain"`
	Pace        PaceTable         `yaml:"pace"`
	BestN       int               `yaml:"best_n" env:"PLS_BEST_N"`
	ScoreCap    float64           `yaml:"score_cap" env:"PLS_SCORE_CAP"`
	Levels      LevelCutoffs      `yaml:"levels"`
	Difficulty  DifficultyWeights `yaml:"difficulty"`
	TrendWindow int               `yaml:"trend_window" env:"PLS_TREND_WINDOW"`
}

// TerrainGrades holds the average-grade breakpoints (meters of climb per
// meter of distance) separating the terrain categories.
type TerrainGrades struct {
	Hills     float64 `yaml:"hills" env:"PLS_GRADE_HILLS"`
	Mountains float64 `yaml:"mountains" env:"PLS_GRADE_MOUNTAINS"`
}

// PaceBand is one row of the reference pace curve: the pace an elite
// reference athlete sustains at a given race distance.
type PaceBand struct {
	Distance float64 `yaml:"distance_m"`  // meters
	SecPerKm float64 `yaml:"sec_per_km"`
}

// PaceTable holds the per-terrain reference pace curves.
type PaceTable struct {
	Flat      []PaceBand `yaml:"flat"`
	Hills     []PaceBand `yaml:"hills"`
	Mountains []PaceBand `yaml:"mountains"`
}

// LevelCutoffs are the lower-inclusive rating bounds for each performance
// level above NeedsImprovement.
type LevelCutoffs struct {
	Developing float64 `yaml:"developing"`
	Good       float64 `yaml:"good"`
	VeryGood   float64 `yaml:"very_good"`
	Excellent  float64 `yaml:"excellent"`
	Elite      float64 `yaml:"elite"`
}

// DifficultyWeights parameterize the route difficulty factor.
type DifficultyWeights struct {
	PerHundredKm      float64 `yaml:"per_hundred_km"`
	PerThousandMeters float64 `yaml:"per_thousand_meters"`
	Max               float64 `yaml:"max"`
}

// DefaultTuning returns the engine defaults. The pace table approximates
// elite road and trail race paces; the grade breakpoints put a route with
// 5m of climb per km into Hills and 20m per km into Mountains.
func DefaultTuning() Tuning {
	return Tuning{
		Terrain: TerrainGrades{
			Hills:     0.005,
			Mountains: 0.02,
		},
		Pace: PaceTable{
			Flat: []PaceBand{
				{Distance: 1000, SecPerKm: 150},
				{Distance: 5000, SecPerKm: 156},
				{Distance: 10000, SecPerKm: 160},
				{Distance: 21097.5, SecPerKm: 168},
				{Distance: 42195, SecPerKm: 176},
			},
			Hills: []PaceBand{
				{Distance: 1000, SecPerKm: 162},
				{Distance: 5000, SecPerKm: 169},
				{Distance: 10000, SecPerKm: 174},
				{Distance: 21097.5, SecPerKm: 182},
				{Distance: 42195, SecPerKm: 191},
			},
			Mountains: []PaceBand{
				{Distance: 1000, SecPerKm: 188},
				{Distance: 5000, SecPerKm: 196},
				{Distance: 10000, SecPerKm: 202},
				{Distance: 21097.5, SecPerKm: 212},
				{Distance: 42195, SecPerKm: 222},
			},
		},
		BestN:    6,
		ScoreCap: 1000,
		Levels: LevelCutoffs{
			Developing: 400,
			Good:       550,
			VeryGood:   700,
			Excellent:  820,
			Elite:      920,
		},
		Difficulty: DifficultyWeights{
			PerHundredKm:      0.1,
			PerThousandMeters: 0.2,
			Max:               3.0,
		},
		TrendWindow: 3,
	}
}

// Validate checks the tuning for internal consistency. A tuning that
// fails validation must be rejected at startup, before any scoring.
func (t Tuning) Validate() error {
	if t.Terrain.Hills <= 0 {
		return fmt.Errorf("terrain.hills grade must be positive, got %v", t.Terrain.Hills)
	}
	if t.Terrain.Mountains <= t.Terrain.Hills {
		return fmt.Errorf("terrain.mountains grade (%v) must exceed terrain.hills (%v)",
			t.Terrain.Mountains, t.Terrain.Hills)
	}

	if err := validateBands("flat", t.Pace.Flat); err != nil {
		return err
	}
	if err := validateBands("hills", t.Pace.Hills); err != nil {
		return err
	}
	if err := validateBands("mountains", t.Pace.Mountains); err != nil {
		return err
	}
	if err := validateTerrainOrder(t.Pace); err != nil {
		return err
	}

	if t.BestN < 1 {
		return fmt.Errorf("best_n must be at least 1, got %d", t.BestN)
	}
	if t.ScoreCap <= 0 {
		return fmt.Errorf("score_cap must be positive, got %v", t.ScoreCap)
	}

	cutoffs := []float64{
		t.Levels.Developing, t.Levels.Good, t.Levels.VeryGood,
		t.Levels.Excellent, t.Levels.Elite,
	}
	prev := 0.0
	for i, c := range cutoffs {
		if c <= prev || c >= t.ScoreCap {
			return fmt.Errorf("level cutoffs must be strictly ascending within (0, %v), cutoff %d is %v",
				t.ScoreCap, i, c)
		}
		prev = c
	}

	if t.Difficulty.Max < 1 {
		return fmt.Errorf("difficulty.max must be at least 1, got %v", t.Difficulty.Max)
	}
	if t.TrendWindow < 2 {
		return fmt.Errorf("trend_window must be at least 2, got %d", t.TrendWindow)
	}

	return nil
}

// validateBands checks one terrain's pace curve: at least two bands,
// strictly ascending distances, positive non-decreasing paces.
func validateBands(name string, bands []PaceBand) error {
	if len(bands) < 2 {
		return fmt.Errorf("pace.%s needs at least 2 bands, got %d", name, len(bands))
	}
	for i, b := range bands {
		if b.Distance <= 0 || b.SecPerKm <= 0 {
			return fmt.Errorf("pace.%s band %d must have positive distance and pace", name, i)
		}
		if i > 0 {
			if b.Distance <= bands[i-1].Distance {
				return fmt.Errorf("pace.%s band distances must be strictly ascending", name)
			}
			if b.SecPerKm < bands[i-1].SecPerKm {
				return fmt.Errorf("pace.%s pace must not decrease with distance", name)
			}
		}
	}
	return nil
}

// validateTerrainOrder enforces Flat < Hills < Mountains pace at every
// band so climbing always costs time.
func validateTerrainOrder(p PaceTable) error {
	if len(p.Flat) != len(p.Hills) || len(p.Hills) != len(p.Mountains) {
		return fmt.Errorf("pace tables must have the same number of bands per terrain")
	}
	for i := range p.Flat {
		if p.Flat[i].Distance != p.Hills[i].Distance || p.Hills[i].Distance != p.Mountains[i].Distance {
			return fmt.Errorf("pace band %d distances must match across terrains", i)
		}
		if !(p.Flat[i].SecPerKm < p.Hills[i].SecPerKm && p.Hills[i].SecPerKm < p.Mountains[i].SecPerKm) {
			return fmt.Errorf("pace band %d must satisfy flat < hills < mountains", i)
		}
	}
	return nil
}
