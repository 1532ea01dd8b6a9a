package score

// Terrain is the coarse route difficulty category derived from
// elevation gain per meter of distance.
type Terrain int

const (
	TerrainFlat Terrain = iota
	TerrainHills
	TerrainMountains
)

// String returns the display name for a terrain category.
func (t Terrain) String() string {
	switch t {
	case TerrainFlat:
		return "Flat"
	case TerrainHills:
		return "Hills"
	case TerrainMountains:
		return "Mountains"
	default:
		return "Unknown"
	}
}

// ParseTerrain converts a stored terrain name back into a Terrain.
// Unknown names fall back to Flat.
func ParseTerrain(s string) Terrain {
	switch s {
	case "Hills":
		return TerrainHills
	case "Mountains":
		return TerrainMountains
	default:
		return TerrainFlat
	}
}

// ClassifyTerrain derives the terrain category for an activity. Without
// segments the whole route is classified by its average grade. With
// segments each one is classified on its own grade and the activity
// takes the category covering the most cumulative distance; a tie goes
// to the harder terrain.
func ClassifyTerrain(t Tuning, a Activity) Terrain {
	if len(a.Segments) == 0 {
		return classifyGrade(t, a.ElevationGain, a.Distance)
	}

	var distanceByTerrain [3]float64
	for _, s := range a.Segments {
		if s.Distance <= 0 {
			continue
		}
		distanceByTerrain[classifyGrade(t, s.ElevationGain, s.Distance)] += s.Distance
	}

	// Iterate from Mountains down so equal distances resolve to the
	// harder terrain.
	dominant := TerrainFlat
	best := 0.0
	for terrain := TerrainMountains; terrain >= TerrainFlat; terrain-- {
		if distanceByTerrain[terrain] > best {
			best = distanceByTerrain[terrain]
			dominant = terrain
		}
	}
	if best == 0 {
		return classifyGrade(t, a.ElevationGain, a.Distance)
	}
	return dominant
}

func classifyGrade(t Tuning, elevationGain, distance float64) Terrain {
	grade := elevationGain / distance
	switch {
	case grade >= t.Terrain.Mountains:
		return TerrainMountains
	case grade >= t.Terrain.Hills:
		return TerrainHills
	default:
		return TerrainFlat
	}
}
