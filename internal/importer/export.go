package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"peakline/internal/score"
)

// ExportActivity mirrors one activity summary in a Strava-style JSON
// export file. Distances are meters, times are seconds.
type ExportActivity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	StartDate          time.Time `json:"start_date"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
}

// Result summarizes one import run.
type Result struct {
	Activities []score.Activity
	Skipped    []SkippedActivity
}

// SkippedActivity records why an export entry was not imported.
type SkippedActivity struct {
	ID     int64
	Name   string
	Reason string
}

// runTypes are the activity types the scoring model covers. The
// reference pace table is run-tuned; other sports would need their own
// tables.
var runTypes = map[string]bool{
	"Run":        true,
	"TrailRun":   true,
	"Trail Run":  true,
	"VirtualRun": true,
}

// ReadExport parses a JSON export file into normalized activities.
// Non-run entries and entries violating the activity invariants are
// reported in the result and skipped; only unreadable files are fatal.
func ReadExport(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export file: %w", err)
	}

	var entries []ExportActivity
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing export file %s: %w", path, err)
	}

	result := &Result{}
	for _, e := range entries {
		if !runTypes[e.Type] {
			result.Skipped = append(result.Skipped, SkippedActivity{
				ID: e.ID, Name: e.Name, Reason: fmt.Sprintf("unsupported type %q", e.Type),
			})
			continue
		}

		a := score.Activity{
			ID:            e.ID,
			Name:          e.Name,
			StartDate:     e.StartDate,
			Distance:      e.Distance,
			ElevationGain: e.TotalElevationGain,
			MovingTime:    e.MovingTime,
		}
		if err := a.Validate(); err != nil {
			result.Skipped = append(result.Skipped, SkippedActivity{
				ID: e.ID, Name: e.Name, Reason: err.Error(),
			})
			continue
		}

		result.Activities = append(result.Activities, a)
	}

	return result, nil
}
