package score

import "fmt"

// Dimension identifies what a tip targets: a terrain category the
// athlete is weakest on, or general training advice when no terrain
// stands out.
type Dimension int

const (
	DimensionGeneral Dimension = iota
	DimensionFlat
	DimensionHills
	DimensionMountains
)

// String returns the display name for a dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionFlat:
		return "Flat"
	case DimensionHills:
		return "Hills"
	case DimensionMountains:
		return "Mountains"
	default:
		return "General"
	}
}

func terrainDimension(t Terrain) Dimension {
	switch t {
	case TerrainHills:
		return DimensionHills
	case TerrainMountains:
		return DimensionMountains
	default:
		return DimensionFlat
	}
}

// Tip is one improvement suggestion selected from the static catalog.
type Tip struct {
	Level     Level
	Dimension Dimension
	Message   string
}

// Advise selects improvement tips for the athlete's level and weakest
// terrain among the contributing scores. The weakest terrain is the one
// with the lowest mean score; a tie resolves to the easier terrain. When
// every represented terrain scores equally, or only one terrain is
// represented, the level's general tips are returned instead. Tips come
// from the catalog in priority order; the function never invents text.
func Advise(t Tuning, level Level, contributing []ActivityScore) []Tip {
	dim := weakestDimension(contributing)

	messages := adviceCatalog[level][dim]
	if len(messages) == 0 {
		dim = DimensionGeneral
		messages = adviceCatalog[level][DimensionGeneral]
	}

	tips := make([]Tip, 0, len(messages))
	for _, m := range messages {
		tips = append(tips, Tip{Level: level, Dimension: dim, Message: m})
	}
	return tips
}

// weakestDimension finds the terrain with the lowest mean score among
// the contributing set. Scanning in Flat, Hills, Mountains order makes
// the tie-break deterministic: equal means resolve to the easier terrain.
func weakestDimension(contributing []ActivityScore) Dimension {
	var sum [3]float64
	var count [3]int
	for _, s := range contributing {
		sum[s.Terrain] += s.Score
		count[s.Terrain]++
	}

	represented := 0
	weakest := TerrainFlat
	var weakestMean float64
	first := true
	allEqual := true
	for terrain := TerrainFlat; terrain <= TerrainMountains; terrain++ {
		if count[terrain] == 0 {
			continue
		}
		represented++
		mean := sum[terrain] / float64(count[terrain])
		if first {
			weakest = terrain
			weakestMean = mean
			first = false
			continue
		}
		if mean != weakestMean {
			allEqual = false
		}
		if mean < weakestMean {
			weakest = terrain
			weakestMean = mean
		}
	}

	if represented < 2 || allEqual {
		return DimensionGeneral
	}
	return terrainDimension(weakest)
}

// TrendAssessment compares the athlete's most recent scores in
// chronological order and describes the direction they are moving.
// Scores must be passed newest-last; fewer than windowSize scores yields
// the not-enough-data message.
func TrendAssessment(t Tuning, chronological []ActivityScore) string {
	if len(chronological) < t.TrendWindow {
		return "Not enough scored activities to assess a trend yet."
	}

	window := chronological[len(chronological)-t.TrendWindow:]
	oldest := window[0].Score
	newest := window[len(window)-1].Score

	switch {
	case newest > oldest:
		return "Scores are trending up. Keep doing what you are doing."
	case newest < oldest:
		return "Recent scores are below your earlier efforts. Review your training load and recovery."
	default:
		return "Scores are holding steady. Try a new route or distance to break the plateau."
	}
}

// adviceCatalog is the full static tip catalog keyed by level and
// dimension. Messages are listed in priority order; Advise returns them
// verbatim.
var adviceCatalog = map[Level]map[Dimension][]string{
	LevelNeedsImprovement: {
		DimensionGeneral: {
			"Build a consistent routine first: three easy runs a week beats one hard one.",
			"Keep most runs at a conversational pace and let the distance grow slowly.",
		},
		DimensionFlat: {
			"Work on your base speed with short strides at the end of easy flat runs.",
			"Pick a flat loop and repeat it weekly so you can see the time come down.",
		},
		DimensionHills: {
			"Walk the steep parts without guilt; the goal is time on rolling terrain.",
			"Add one short hill to an easy run each week and build from there.",
		},
		DimensionMountains: {
			"Hike the climbs and run the flats; mountain time counts even at a walk.",
			"Shorten mountain outings until the flatter runs feel comfortable.",
		},
	},
	LevelDeveloping: {
		DimensionGeneral: {
			"Add a weekly long run, growing it by no more than ten percent at a time.",
			"Finish one run a week with a faster final kilometer.",
		},
		DimensionFlat: {
			"Introduce a weekly tempo block of ten to fifteen minutes on flat ground.",
			"Practice even pacing: aim for the second half no slower than the first.",
		},
		DimensionHills: {
			"Run hill repeats of sixty to ninety seconds at a strong but controlled effort.",
			"On rolling routes, push the ups and float the downs instead of the reverse.",
		},
		DimensionMountains: {
			"Build climbing strength with step-ups or an incline treadmill once a week.",
			"Descend relaxed with a quick cadence; braking wastes more than it saves.",
		},
	},
	LevelGood: {
		DimensionGeneral: {
			"Alternate harder and easier weeks so adaptation can catch up with the load.",
			"Race or time-trial a familiar distance every few weeks to test your fitness.",
		},
		DimensionFlat: {
			"Sharpen your speed with interval sessions such as five times a kilometer at threshold.",
			"Run one flat route at goal race pace for a growing portion of the distance.",
		},
		DimensionHills: {
			"Seek out sustained climbs of five to ten minutes rather than short ramps.",
			"Keep your effort, not your pace, constant across the rollers.",
		},
		DimensionMountains: {
			"Train the descent deliberately; quads limit mountain performance more than lungs.",
			"Use poles or a power-hike on grades where running costs more than it gains.",
		},
	},
	LevelVeryGood: {
		DimensionGeneral: {
			"Your base is strong; target the terrain that drags your average down.",
			"Plan training blocks around a goal event instead of repeating the same week.",
		},
		DimensionFlat: {
			"Add race-specific sessions: long intervals at goal pace with short recoveries.",
			"Check your flat pacing data for fade in the final third and train to close fast.",
		},
		DimensionHills: {
			"Do a weekly hilly tempo run, holding threshold effort across the profile.",
			"Strengthen with single-leg work so climbing form holds when fatigued.",
		},
		DimensionMountains: {
			"Stack vertical gain in blocks, then absorb it with a flatter recovery week.",
			"Rehearse fueling on long mountain efforts; the climbs punish an empty tank.",
		},
	},
	LevelExcellent: {
		DimensionGeneral: {
			"Marginal gains matter now: sleep, fueling and recovery are training too.",
			"Rotate focused blocks of speed, climbing and endurance across the season.",
		},
		DimensionFlat: {
			"Fine-tune economy with regular strides and a touch of faster-than-race pace.",
			"Target a fast flat course and commit to an even or negative split.",
		},
		DimensionHills: {
			"Race hilly courses to convert your fitness into terrain-specific strength.",
			"Pair hill sessions with descent repeats so you gain on both sides of the climb.",
		},
		DimensionMountains: {
			"Periodize big vertical weeks and track how your climbing pace responds.",
			"Work on technical descending at speed; it is the cheapest time left to take.",
		},
	},
	LevelElite: {
		DimensionGeneral: {
			"You are matching the reference athlete; maintain variety to hold the edge.",
			"Guard recovery fiercely; at this level the risk is overreach, not underwork.",
		},
		DimensionFlat: {
			"Chase course personal bests on certified flat routes to verify the score.",
		},
		DimensionHills: {
			"Keep one quality hill session in every week, even during taper blocks.",
		},
		DimensionMountains: {
			"Alternate mountain racing with flat speed work so neither system decays.",
		},
	},
}

// catalogCheck is referenced from tests to ensure every level has
// general tips, since Advise falls back to them.
func catalogCheck() error {
	for level := LevelNeedsImprovement; level <= LevelElite; level++ {
		if len(adviceCatalog[level][DimensionGeneral]) == 0 {
			return fmt.Errorf("catalog has no general tips for level %s", level)
		}
	}
	return nil
}
