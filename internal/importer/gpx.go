package importer

import (
	"encoding/xml"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"peakline/internal/score"
)

const (
	earthRadiusMeters = 6371000

	// gpxSegmentLength is the target length of the per-kilometer route
	// segments handed to the terrain classifier.
	gpxSegmentLength = 1000.0
)

type gpxFile struct {
	XMLName xml.Name   `xml:"gpx"`
	Tracks  []gpxTrack `xml:"trk"`
}

type gpxTrack struct {
	Name     string          `xml:"name"`
	Segments []gpxTrkSegment `xml:"trkseg"`
}

type gpxTrkSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  float64   `xml:"lat,attr"`
	Lon  float64   `xml:"lon,attr"`
	Ele  float64   `xml:"ele"`
	Time time.Time `xml:"time"`
}

// ReadGPX parses a GPX track file into one normalized activity with
// per-kilometer route segments, so the terrain classifier can work from
// the actual elevation profile rather than the route average.
func ReadGPX(path string) (score.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return score.Activity{}, fmt.Errorf("reading gpx file: %w", err)
	}

	var file gpxFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return score.Activity{}, fmt.Errorf("parsing gpx file %s: %w", path, err)
	}

	points := flattenPoints(file)
	if len(points) < 2 {
		return score.Activity{}, fmt.Errorf("%w: gpx file %s has fewer than 2 track points",
			score.ErrInvalidActivity, path)
	}

	var (
		totalDistance float64
		totalAscent   float64
		segments      []score.Segment
		segDistance   float64
		segAscent     float64
	)

	for i := 1; i < len(points); i++ {
		step := haversine(points[i-1], points[i])
		climb := points[i].Ele - points[i-1].Ele

		totalDistance += step
		segDistance += step
		if climb > 0 {
			totalAscent += climb
			segAscent += climb
		}

		if segDistance >= gpxSegmentLength {
			segments = append(segments, score.Segment{Distance: segDistance, ElevationGain: segAscent})
			segDistance, segAscent = 0, 0
		}
	}
	if segDistance > 0 {
		segments = append(segments, score.Segment{Distance: segDistance, ElevationGain: segAscent})
	}

	start := points[0].Time
	end := points[len(points)-1].Time
	duration := int(end.Sub(start).Seconds())

	a := score.Activity{
		ID:            gpxActivityID(path, start),
		Name:          gpxActivityName(file, path),
		StartDate:     start,
		Distance:      totalDistance,
		ElevationGain: totalAscent,
		MovingTime:    duration,
		Segments:      segments,
	}
	if err := a.Validate(); err != nil {
		return score.Activity{}, fmt.Errorf("gpx file %s: %w", path, err)
	}

	return a, nil
}

func flattenPoints(file gpxFile) []gpxPoint {
	var points []gpxPoint
	for _, track := range file.Tracks {
		for _, seg := range track.Segments {
			points = append(points, seg.Points...)
		}
	}
	return points
}

func gpxActivityName(file gpxFile, path string) string {
	for _, track := range file.Tracks {
		if track.Name != "" {
			return track.Name
		}
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// gpxActivityID derives a stable synthetic ID from the file path and
// start time so re-importing the same file updates rather than
// duplicates. The sign bit is cleared to keep IDs positive.
func gpxActivityID(path string, start time.Time) int64 {
	h := fnv.New64a()
	h.Write([]byte(path))
	h.Write([]byte(start.UTC().Format(time.RFC3339)))
	return int64(h.Sum64() & math.MaxInt64)
}

// haversine returns the great-circle distance between two points in
// meters
func haversine(a, b gpxPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}
