package analysis

import (
	"sort"

	"leasescore/internal/model"
)

// NamedResult is an evaluated deal with a caller-chosen name.
type NamedResult struct {
	Name   string
	Result *model.EvaluationResult
}

type RankedDeal struct {
	Rank int
	NamedResult
}

// Rank sorts deals by total score, then market position score, both descending. Ties keep
// their input order. Entries with a nil Result are skipped.
func Rank(deals []NamedResult) []RankedDeal {
	out := make([]RankedDeal, 0, len(deals))
	for _, d := range deals {
		if d.Result == nil {
			continue
		}
		out = append(out, RankedDeal{NamedResult: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Result, out[j].Result
		if a.Score.TotalScore != b.Score.TotalScore {
			return a.Score.TotalScore > b.Score.TotalScore
		}
		return a.Benchmark.MarketPositionScore > b.Benchmark.MarketPositionScore
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
