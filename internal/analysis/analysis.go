// Package analysis computes the presentation figures shown alongside an evaluation: advanced
// ratios, a lease-versus-buy comparison, a depreciation projection, credit tier rates,
// what-if scenarios and negotiation tips. None of it feeds back into scoring.
package analysis

import "leasescore/internal/model"

// Analysis bundles everything the report needs beyond the evaluation itself.
type Analysis struct {
	Metrics      AdvancedMetrics  `json:"metrics"`
	LeaseVsBuy   LeaseVsBuy       `json:"lease_vs_buy"`
	Depreciation Projection       `json:"depreciation"`
	Interest     InterestAnalysis `json:"interest"`
	Scenarios    []Scenario       `json:"scenarios"`
	Tips         []NegotiationTip `json:"tips"`
}

// Analyze runs every presentation computation for res.
func Analyze(res *model.EvaluationResult) Analysis {
	m := ComputeMetrics(res)
	return Analysis{
		Metrics:      m,
		LeaseVsBuy:   CompareLeaseVsBuy(res),
		Depreciation: ProjectDepreciation(res, m),
		Interest:     AnalyzeInterest(res),
		Scenarios:    AlternativeScenarios(res),
		Tips:         NegotiationTips(res),
	}
}
