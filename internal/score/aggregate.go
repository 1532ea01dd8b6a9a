package score

import "sort"

// Aggregate combines per-activity scores into the athlete's overall
// rating: the mean of the best min(BestN, len) scores. Ties on score are
// broken by the more recent activity, then by stable input order, so the
// result is deterministic for any permutation of the same set. Missing
// slots are never counted as zero; an athlete with three scored
// activities is rated on those three.
func Aggregate(t Tuning, scores []ActivityScore) (OverallRating, error) {
	if len(scores) == 0 {
		return OverallRating{}, ErrInsufficientData
	}

	ranked := make([]ActivityScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Date.After(ranked[j].Date)
	})

	n := t.BestN
	if len(ranked) < n {
		n = len(ranked)
	}
	top := ranked[:n]

	sum := 0.0
	for _, s := range top {
		sum += s.Score
	}

	return OverallRating{
		Rating:       sum / float64(n),
		Contributing: top,
		SampleCount:  n,
	}, nil
}
