package analysis

import (
	"math"
	"slices"

	"leasescore/internal/leasemath"
	"leasescore/internal/model"
)

// TypicalMoneyFactor is the reference money factor for MFQuality.
const TypicalMoneyFactor = 0.00250

// Names of the metrics whose denominator can be zero for a valid deal.
const (
	MetricEffectiveAPR                = "effective_apr"
	MetricInterestToDepreciationRatio = "interest_to_depreciation_ratio"
	MetricUpfrontToTotalRatio         = "upfront_to_total_ratio"
	MetricPaymentEfficiency           = "payment_efficiency"
	MetricDiscountEffectiveness       = "discount_effectiveness"
	MetricTaxBurdenPercent            = "tax_burden_percent"
)

// AdvancedMetrics are presentation figures derived from a finished evaluation.
// Percent-valued fields are in percent. A metric listed in Undefined holds 0.
type AdvancedMetrics struct {
	// EffectiveAPR spreads the total lease cost above the financed price over the term.
	EffectiveAPR       float64 `json:"effective_apr"`
	CostPerMile        float64 `json:"cost_per_mile"`
	MonthlyCostPercent float64 `json:"monthly_cost_percent"`

	DepreciationRate            float64 `json:"depreciation_rate"`
	AnnualDepreciationRate      float64 `json:"annual_depreciation_rate"`
	InterestToDepreciationRatio float64 `json:"interest_to_depreciation_ratio"`

	UpfrontCost         float64 `json:"upfront_cost"`
	UpfrontToTotalRatio float64 `json:"upfront_to_total_ratio"`

	PaymentEfficiency     float64 `json:"payment_efficiency"`
	ResidualStrength      float64 `json:"residual_strength"`
	DiscountEffectiveness float64 `json:"discount_effectiveness"`

	TotalTaxPaid     float64 `json:"total_tax_paid"`
	TaxBurdenPercent float64 `json:"tax_burden_percent"`

	// MFQuality is how far the money factor is below TypicalMoneyFactor, in percent.
	MFQuality      float64 `json:"mf_quality"`
	DealVelocity   float64 `json:"deal_velocity"`
	CostToOwnRatio float64 `json:"cost_to_own_ratio"`

	// Undefined names the metrics that have no value for this deal, e.g. the
	// interest-to-depreciation ratio when nothing depreciates.
	Undefined []string `json:"undefined,omitempty"`
}

// IsDefined reports whether the metric called name has a value.
func (m AdvancedMetrics) IsDefined(name string) bool {
	return !slices.Contains(m.Undefined, name)
}

// ratio returns num/den, or records name as undefined and returns 0 when the quotient is
// not a finite number.
func (m *AdvancedMetrics) ratio(name string, num, den float64) float64 {
	v := num / den
	if den == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		m.Undefined = append(m.Undefined, name)
		return 0
	}
	return v
}

// ComputeMetrics derives AdvancedMetrics from an evaluation result.
func ComputeMetrics(res *model.EvaluationResult) AdvancedMetrics {
	in, d := res.Inputs, res.Derived
	term := in.Term()
	residual := in.Residual()
	financed := in.NegotiatedPrice - in.TradeInValue

	m := AdvancedMetrics{}
	m.EffectiveAPR = m.ratio(MetricEffectiveAPR, d.TotalCost-financed, financed) / (term / 12) * 100
	m.CostPerMile = d.TotalCost / leasemath.EstimatedMiles(in.LeaseTermMonths)
	m.MonthlyCostPercent = d.TotalMonthlyPayment / in.NegotiatedPrice * 100

	m.DepreciationRate = (in.NegotiatedPrice - residual) / in.NegotiatedPrice * 100
	m.AnnualDepreciationRate = m.DepreciationRate / term * 12
	m.InterestToDepreciationRatio = m.ratio(MetricInterestToDepreciationRatio, d.TotalInterest, d.TotalDepreciation)

	m.UpfrontCost = UpfrontCost(in)
	m.UpfrontToTotalRatio = m.ratio(MetricUpfrontToTotalRatio, m.UpfrontCost, d.TotalCost) * 100

	m.PaymentEfficiency = m.ratio(MetricPaymentEfficiency, d.MonthlyDepreciation, d.TotalMonthlyPayment) * 100
	m.ResidualStrength = residual / in.MSRP * 100
	m.DiscountEffectiveness = m.ratio(MetricDiscountEffectiveness, d.SavingsPercentage, d.PaymentToMSRPRatio)

	m.TotalTaxPaid = d.MonthlyTax*term + in.UpfrontTax
	m.TaxBurdenPercent = m.ratio(MetricTaxBurdenPercent, m.TotalTaxPaid, d.TotalCost) * 100

	m.MFQuality = (TypicalMoneyFactor - in.MF()) / TypicalMoneyFactor * 100
	m.DealVelocity = d.TotalDepreciation / in.NegotiatedPrice * 100
	m.CostToOwnRatio = d.CostToOwnAfterLease / in.MSRP * 100
	return m
}

// UpfrontCost is cash due at signing: down payment, upfront tax and acquisition fee.
func UpfrontCost(in model.DealInputs) float64 {
	return in.DownPayment + in.UpfrontTax + in.AcqFee()
}
