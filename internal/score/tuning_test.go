package score

import (
	"strings"
	"testing"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Errorf("DefaultTuning().Validate() = %v, want nil", err)
	}
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Tuning)
		errContains string
	}{
		{
			name:        "zero hills grade",
			mutate:      func(tn *Tuning) { tn.Terrain.Hills = 0 },
			errContains: "terrain.hills",
		},
		{
			name:        "mountains below hills",
			mutate:      func(tn *Tuning) { tn.Terrain.Mountains = 0.001 },
			errContains: "terrain.mountains",
		},
		{
			name:        "single pace band",
			mutate:      func(tn *Tuning) { tn.Pace.Flat = tn.Pace.Flat[:1] },
			errContains: "at least 2 bands",
		},
		{
			name: "pace decreasing with distance",
			mutate: func(tn *Tuning) {
				tn.Pace.Hills[2].SecPerKm = tn.Pace.Hills[1].SecPerKm - 1
			},
			errContains: "must not decrease",
		},
		{
			name: "band distances out of order",
			mutate: func(tn *Tuning) {
				tn.Pace.Mountains[1].Distance = tn.Pace.Mountains[0].Distance
			},
			errContains: "strictly ascending",
		},
		{
			name: "hills not slower than flat",
			mutate: func(tn *Tuning) {
				tn.Pace.Hills[0].SecPerKm = tn.Pace.Flat[0].SecPerKm
			},
			errContains: "flat < hills < mountains",
		},
		{
			name:        "best_n zero",
			mutate:      func(tn *Tuning) { tn.BestN = 0 },
			errContains: "best_n",
		},
		{
			name:        "score cap zero",
			mutate:      func(tn *Tuning) { tn.ScoreCap = 0 },
			errContains: "score_cap",
		},
		{
			name:        "level cutoffs not ascending",
			mutate:      func(tn *Tuning) { tn.Levels.Good = tn.Levels.Developing },
			errContains: "level cutoffs",
		},
		{
			name:        "level cutoff above cap",
			mutate:      func(tn *Tuning) { tn.Levels.Elite = 1000 },
			errContains: "level cutoffs",
		},
		{
			name:        "trend window too small",
			mutate:      func(tn *Tuning) { tn.TrendWindow = 1 },
			errContains: "trend_window",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tt.mutate(&tuning)

			err := tuning.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.errContains)
			}
		})
	}
}
