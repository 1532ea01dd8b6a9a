package score

import "math"

// IdealTime returns the reference time in seconds an elite athlete would
// need for the given distance on the given terrain. The pace comes from
// the terrain's band table with log-distance interpolation between bands,
// clamped to the end bands outside the table range. Because pace is
// positive and never decreases with distance, ideal time strictly
// increases with distance.
func IdealTime(t Tuning, distanceMeters float64, terrain Terrain) float64 {
	pace := paceAt(bandsFor(t, terrain), distanceMeters)
	return pace * distanceMeters / 1000
}

func bandsFor(t Tuning, terrain Terrain) []PaceBand {
	switch terrain {
	case TerrainHills:
		return t.Pace.Hills
	case TerrainMountains:
		return t.Pace.Mountains
	default:
		return t.Pace.Flat
	}
}

// paceAt interpolates the reference pace (sec/km) at a distance.
// Distances between bands use logarithmic interpolation, which tracks
// the power-law slowdown of race paces over distance.
func paceAt(bands []PaceBand, distance float64) float64 {
	first := bands[0]
	last := bands[len(bands)-1]

	if distance <= first.Distance {
		return first.SecPerKm
	}
	if distance >= last.Distance {
		return last.SecPerKm
	}

	for i := 1; i < len(bands); i++ {
		if distance > bands[i].Distance {
			continue
		}
		lower, upper := bands[i-1], bands[i]
		if upper.SecPerKm == lower.SecPerKm {
			return lower.SecPerKm
		}
		fraction := math.Log(distance/lower.Distance) / math.Log(upper.Distance/lower.Distance)
		return lower.SecPerKm + fraction*(upper.SecPerKm-lower.SecPerKm)
	}

	return last.SecPerKm
}
