package analysis

import (
	"math"

	"leasescore/internal/model"
)

// CreditTier is a typical rate for a credit score band.
type CreditTier struct {
	Name        string  `json:"name"`
	APR         float64 `json:"apr"`
	MoneyFactor float64 `json:"money_factor"`
}

// CreditTiers are ordered best first.
var CreditTiers = []CreditTier{
	{"Excellent (750+)", 4.5, 0.00188},
	{"Good (700-749)", 5.5, 0.00229},
	{"Fair (650-699)", 6.5, 0.00271},
	{"Poor (600-649)", 8.0, 0.00333},
	{"Very Poor (<600)", 10.0, 0.00417},
}

const (
	fallbackTier = 2 // Fair
	goodTier     = 1
)

// TierRate is a credit tier applied to the deal.
type TierRate struct {
	CreditTier
	MonthlyInterest float64 `json:"monthly_interest"`
	Current         bool    `json:"current"`
}

// InterestAnalysis places the deal's APR among the credit tiers.
type InterestAnalysis struct {
	APR           float64    `json:"apr"`
	MoneyFactor   float64    `json:"money_factor"`
	TotalInterest float64    `json:"total_interest"`
	EstimatedTier CreditTier `json:"estimated_tier"`
	Tiers         []TierRate `json:"tiers"`
	// PotentialSavings is the interest saved over the term at the "Good" tier rate. It is set
	// only when the APR is above 6%.
	PotentialSavings float64 `json:"potential_savings,omitempty"`
}

// AnalyzeInterest compares the deal's rate with each credit tier. Tier interest is charged on
// the price net of trade-in plus the residual; the down payment and fees are left out.
func AnalyzeInterest(res *model.EvaluationResult) InterestAnalysis {
	in := res.Inputs
	apr := in.APR()
	basis := in.NegotiatedPrice - in.TradeInValue + in.Residual()

	out := InterestAnalysis{
		APR:           apr,
		MoneyFactor:   in.MF(),
		TotalInterest: res.Derived.TotalInterest,
		EstimatedTier: CreditTiers[EstimateTier(apr)],
		Tiers:         make([]TierRate, 0, len(CreditTiers)),
	}
	for _, t := range CreditTiers {
		out.Tiers = append(out.Tiers, TierRate{
			CreditTier:      t,
			MonthlyInterest: basis * t.MoneyFactor,
			Current:         math.Abs(t.APR-apr) < 1,
		})
	}
	if apr > 6 {
		out.PotentialSavings = res.Derived.TotalInterest - CreditTiers[goodTier].MoneyFactor*basis*in.Term()
	}
	return out
}

// EstimateTier returns the index of the first tier within one point of apr, or the Fair tier.
func EstimateTier(apr float64) int {
	for i, t := range CreditTiers {
		if math.Abs(t.APR-apr) < 1 {
			return i
		}
	}
	return fallbackTier
}
