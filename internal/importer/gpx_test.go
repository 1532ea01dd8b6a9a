package importer

import (
	"math"
	"strings"
	"testing"
	"time"
)

const gpxFixture = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>Hill Climb</name>
    <trkseg>
      <trkpt lat="47.0000" lon="8.0000">
        <ele>420.0</ele>
        <time>2025-05-10T09:00:00Z</time>
      </trkpt>
      <trkpt lat="47.0100" lon="8.0000">
        <ele>455.0</ele>
        <time>2025-05-10T09:05:00Z</time>
      </trkpt>
      <trkpt lat="47.0200" lon="8.0000">
        <ele>440.0</ele>
        <time>2025-05-10T09:10:00Z</time>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestReadGPX(t *testing.T) {
	path := writeFixture(t, "climb.gpx", gpxFixture)

	a, err := ReadGPX(path)
	if err != nil {
		t.Fatalf("ReadGPX() error: %v", err)
	}

	if a.Name != "Hill Climb" {
		t.Errorf("Name = %q, want track name", a.Name)
	}
	if a.ID <= 0 {
		t.Errorf("ID = %d, want a positive synthetic id", a.ID)
	}

	// Two steps of 0.01 degrees latitude, roughly 1112m each.
	if a.Distance < 2150 || a.Distance > 2300 {
		t.Errorf("Distance = %.1f, want roughly 2224m", a.Distance)
	}

	// Only the climb counts as ascent, not the descent at the end.
	if math.Abs(a.ElevationGain-35) > 0.01 {
		t.Errorf("ElevationGain = %.2f, want 35", a.ElevationGain)
	}

	if a.MovingTime != 600 {
		t.Errorf("MovingTime = %d, want 600s from timestamps", a.MovingTime)
	}

	wantStart := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	if !a.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", a.StartDate, wantStart)
	}

	// Each ~1112m step closes a segment.
	if len(a.Segments) != 2 {
		t.Fatalf("Segments = %d, want 2", len(a.Segments))
	}
	if math.Abs(a.Segments[0].ElevationGain-35) > 0.01 {
		t.Errorf("segment 0 gain = %.2f, want 35", a.Segments[0].ElevationGain)
	}
	if a.Segments[1].ElevationGain != 0 {
		t.Errorf("segment 1 gain = %.2f, want 0 (descent only)", a.Segments[1].ElevationGain)
	}

	var total float64
	for _, s := range a.Segments {
		total += s.Distance
	}
	if math.Abs(total-a.Distance) > 0.01 {
		t.Errorf("segment distances sum to %.1f, activity distance is %.1f", total, a.Distance)
	}
}

func TestReadGPXStableID(t *testing.T) {
	path := writeFixture(t, "climb.gpx", gpxFixture)

	a, err := ReadGPX(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ReadGPX(path)
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != b.ID {
		t.Errorf("re-reading the same file produced different ids: %d vs %d", a.ID, b.ID)
	}
}

func TestReadGPXFallbackName(t *testing.T) {
	fixture := strings.Replace(gpxFixture, "<name>Hill Climb</name>", "", 1)
	path := writeFixture(t, "evening-jog.gpx", fixture)

	a, err := ReadGPX(path)
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "evening-jog" {
		t.Errorf("Name = %q, want filename fallback", a.Name)
	}
}

func TestReadGPXTooFewPoints(t *testing.T) {
	path := writeFixture(t, "short.gpx", `<?xml version="1.0"?>
<gpx version="1.1"><trk><trkseg>
<trkpt lat="47.0" lon="8.0"><ele>420</ele><time>2025-05-10T09:00:00Z</time></trkpt>
</trkseg></trk></gpx>`)

	if _, err := ReadGPX(path); err == nil {
		t.Error("ReadGPX(single point) = nil, want error")
	}
}

func TestReadGPXMalformed(t *testing.T) {
	path := writeFixture(t, "bad.gpx", "<gpx><trk>")
	if _, err := ReadGPX(path); err == nil {
		t.Error("ReadGPX(malformed) = nil, want error")
	}
}
