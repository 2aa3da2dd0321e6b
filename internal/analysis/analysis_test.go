package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasescore/internal/engine"
	"leasescore/internal/model"
)

func scenarioA() model.DealInputs {
	return model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 37000,
		MonthlyPayment:  350,
		LeaseTermMonths: 36,
		SalesTaxPercent: 7,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(5.0),
	}
}

func evaluate(t *testing.T, in model.DealInputs) *model.EvaluationResult {
	t.Helper()
	res, err := engine.New().Evaluate(in)
	require.NoError(t, err)
	return res
}

func TestComputeMetricsScenarioA(t *testing.T) {
	m := ComputeMetrics(evaluate(t, scenarioA()))

	assert.InDelta(t, -21.18739, m.EffectiveAPR, 1e-4)
	assert.InDelta(t, 0.3745, m.CostPerMile, 1e-9)
	assert.InDelta(t, 1.012162, m.MonthlyCostPercent, 1e-6)
	assert.InDelta(t, 40, m.DepreciationRate, 1e-9)
	assert.InDelta(t, 13.3333, m.AnnualDepreciationRate, 1e-4)
	assert.InDelta(t, 0.291304, m.InterestToDepreciationRatio, 1e-6)
	assert.InDelta(t, 595, m.UpfrontCost, 1e-9)
	assert.InDelta(t, 4.4133, m.UpfrontToTotalRatio, 1e-4)
	assert.InDelta(t, 114.1893, m.PaymentEfficiency, 1e-3)
	assert.InDelta(t, 55.5, m.ResidualStrength, 1e-9)
	assert.InDelta(t, 882, m.TotalTaxPaid, 1e-9)
	assert.InDelta(t, 6.5421, m.TaxBurdenPercent, 1e-4)
	assert.InDelta(t, 16.6667, m.MFQuality, 1e-4)
	assert.InDelta(t, 41.6081, m.DealVelocity, 1e-4)
	assert.InDelta(t, 89.205, m.CostToOwnRatio, 1e-9)
	assert.Empty(t, m.Undefined)
}

func TestComputeMetricsZeroDenominators(t *testing.T) {
	in := scenarioA()
	in.ResidualValue = model.Float(37595)
	m := ComputeMetrics(evaluate(t, in))
	assert.Equal(t, []string{MetricInterestToDepreciationRatio}, m.Undefined)
	assert.Equal(t, 0.0, m.InterestToDepreciationRatio)
	assert.False(t, m.IsDefined(MetricInterestToDepreciationRatio))
	assert.True(t, m.IsDefined(MetricEffectiveAPR))

	in = scenarioA()
	in.TradeInValue = 37000
	m = ComputeMetrics(evaluate(t, in))
	assert.Equal(t, []string{MetricEffectiveAPR}, m.Undefined)
	assert.Equal(t, 0.0, m.EffectiveAPR)
}

func TestCompareLeaseVsBuyScenarioA(t *testing.T) {
	lb := CompareLeaseVsBuy(evaluate(t, scenarioA()))

	assert.InDelta(t, 37000, lb.LoanAmount, 1e-9)
	assert.InDelta(t, 1108.9232, lb.MonthlyLoanPayment, 1e-4)
	assert.InDelta(t, 17721.2349, lb.NetCostToBuy, 1e-3)
	assert.True(t, lb.LeaseIsCheaper)
	assert.InDelta(t, 4239.2349, lb.Savings, 1e-3)
	require.True(t, lb.HasBreakeven)
	assert.InDelta(t, 5.7722, lb.BreakevenMonths, 1e-4)

	require.Len(t, lb.CostOverTime, 3)
	assert.Equal(t, 12, lb.CostOverTime[0].Months)
	assert.InDelta(t, 5089, lb.CostOverTime[0].LeaseCost, 1e-9)
	assert.InDelta(t, -6672.9217, lb.CostOverTime[0].BuyNetCost, 1e-3)
	assert.Equal(t, 36, lb.CostOverTime[2].Months)
	assert.InDelta(t, lb.Savings, lb.CostOverTime[2].Difference, 1e-9)
}

func TestAmortizedPayment(t *testing.T) {
	assert.InDelta(t, 1000, AmortizedPayment(36000, 0, 36), 1e-9)
	assert.Equal(t, 0.0, AmortizedPayment(36000, 5, 0))
	assert.InDelta(t, 1000, AmortizedPayment(36000, 1e-30, 36), 1e-9)
	// 20k over 60 months at 6%
	assert.InDelta(t, 386.66, AmortizedPayment(20000, 6, 60), 1e-2)
}

func TestProjectDepreciation(t *testing.T) {
	res := evaluate(t, scenarioA())
	p := ProjectDepreciation(res, ComputeMetrics(res))

	require.Len(t, p.Years, 4)
	assert.InDelta(t, 37000, p.Years[0].Value, 1e-9)
	assert.Equal(t, 0.0, p.Years[0].Depreciation)
	assert.InDelta(t, 32066.6667, p.Years[1].Value, 1e-3)
	assert.InDelta(t, 24085.6296, p.Years[3].Value, 1e-3)
	assert.InDelta(t, 14800, p.TotalDepreciation, 1e-9)
	assert.Equal(t, OutlookExcellent, p.Outlook)

	in := scenarioA()
	in.LeaseTermMonths = 39
	res = evaluate(t, in)
	assert.Len(t, ProjectDepreciation(res, ComputeMetrics(res)).Years, 5)
}

func TestOutlookFor(t *testing.T) {
	assert.Equal(t, OutlookExcellent, OutlookFor(14.9))
	assert.Equal(t, OutlookAverage, OutlookFor(15))
	assert.Equal(t, OutlookHigh, OutlookFor(20))
}

func TestAnalyzeInterest(t *testing.T) {
	ia := AnalyzeInterest(evaluate(t, scenarioA()))
	assert.Equal(t, "Excellent (750+)", ia.EstimatedTier.Name)
	require.Len(t, ia.Tiers, 5)
	assert.True(t, ia.Tiers[0].Current)
	assert.True(t, ia.Tiers[1].Current)
	assert.InDelta(t, 59200*0.00188, ia.Tiers[0].MonthlyInterest, 1e-9)
	assert.Zero(t, ia.PotentialSavings)

	in := scenarioA()
	in.APRPercent = model.Float(12)
	ia = AnalyzeInterest(evaluate(t, in))
	assert.Equal(t, "Fair (650-699)", ia.EstimatedTier.Name)
	assert.Greater(t, ia.PotentialSavings, 0.0)
}

func TestEstimateTier(t *testing.T) {
	assert.Equal(t, 3, EstimateTier(8.2))
	assert.Equal(t, 4, EstimateTier(10.5))
	assert.Equal(t, fallbackTier, EstimateTier(2))
}

func TestAlternativeScenarios(t *testing.T) {
	res := evaluate(t, scenarioA())
	sc := AlternativeScenarios(res)
	require.Len(t, sc, 3)

	assert.Equal(t, 48, sc[0].TermMonths)
	assert.InDelta(t, 374.5*0.85, sc[0].MonthlyPayment, 1e-9)
	assert.InDelta(t, 374.5*0.85*48+595, sc[0].TotalCost, 1e-6)

	assert.InDelta(t, 3000, sc[1].DownPayment, 1e-9)
	assert.InDelta(t, 374.5-3000.0/36, sc[1].MonthlyPayment, 1e-9)
	assert.NotEmpty(t, sc[1].Warning)

	assert.InDelta(t, 37000*0.93, sc[2].SellingPrice, 1e-9)
	assert.Less(t, sc[2].Delta, 0.0)
}

func TestNegotiationTips(t *testing.T) {
	tips := NegotiationTips(evaluate(t, scenarioA()))
	require.Len(t, tips, 1)
	assert.Equal(t, PriorityLow, tips[0].Priority)
	assert.Len(t, tips[0].Shown(), DisplayedTactics)

	tips = NegotiationTips(evaluate(t, model.DealInputs{
		MSRP: 40000, NegotiatedPrice: 39500, MonthlyPayment: 500, DownPayment: 2000,
		RateMode: model.RateModeAPR, APRPercent: model.Float(7),
	}))
	require.Len(t, tips, 4)
	assert.Equal(t, "Price Negotiation", tips[0].Strategy)
	assert.Equal(t, PriorityHigh, tips[0].Priority)
	assert.Equal(t, "Interest Rate Reduction", tips[1].Strategy)
	assert.Equal(t, "Down Payment Elimination", tips[2].Strategy)
	assert.Equal(t, "Fee Reduction", tips[3].Strategy)
}

func TestRank(t *testing.T) {
	good := evaluate(t, scenarioA())
	weak := evaluate(t, model.DealInputs{MSRP: 40000, NegotiatedPrice: 40000, MonthlyPayment: 700, DownPayment: 5000})

	ranked := Rank([]NamedResult{
		{Name: "weak", Result: weak},
		{Name: "missing"},
		{Name: "good", Result: good},
	})
	require.Len(t, ranked, 2)
	assert.Equal(t, "good", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "weak", ranked[1].Name)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestAnalyze(t *testing.T) {
	a := Analyze(evaluate(t, scenarioA()))
	assert.Len(t, a.Scenarios, 3)
	assert.NotEmpty(t, a.Tips)
	assert.Len(t, a.Depreciation.Years, 4)
}
