package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasescore/internal/leasemath"
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
	}.Normalize()
}

func score(in model.DealInputs) model.ScoreBreakdown {
	return Score(in, leasemath.Derive(in))
}

func TestScoreScenarioA(t *testing.T) {
	s := score(scenarioA())

	assert.Equal(t, 1.25, s.OnePercent.Points)
	assert.Equal(t, model.LabelGreat, s.OnePercent.Label)
	assert.Equal(t, 1.0, s.DownPayment.Points)
	assert.Equal(t, model.LabelExcellent, s.DownPayment.Label)
	assert.Equal(t, 1.0, s.Negotiation.Points)
	assert.Equal(t, model.LabelGreat, s.Negotiation.Label)
	assert.Equal(t, 3.25, s.TotalScore)
	assert.Equal(t, model.RatingGreat, s.DealRating)
	assert.Equal(t, model.ClassGood, s.DealClass)

	require.Len(t, s.Insights, 4)
	assert.Equal(t, model.CategoryOnePercent, s.Insights[0].Category)
	assert.Equal(t, model.CategoryDownPayment, s.Insights[1].Category)
	assert.Equal(t, model.CategoryNegotiation, s.Insights[2].Category)
	assert.Equal(t, model.CategoryResidual, s.Insights[3].Category)
	assert.Equal(t, "Good negotiation with 7.5% discount from MSRP ($3,000.00).", s.Insights[2].Message)
	assert.Equal(t, model.InsightInfo, s.Insights[3].Type)
}

func TestOnePercentTierBoundaries(t *testing.T) {
	cases := []struct {
		ratio  float64
		points float64
		label  model.ScoreLabel
	}{
		{0.5, 1.5, model.LabelExcellent},
		{0.8, 1.5, model.LabelExcellent},
		{0.81, 1.25, model.LabelGreat},
		{1.0, 1.25, model.LabelGreat},
		{1.01, 0.75, model.LabelGood},
		{1.2, 0.75, model.LabelGood},
		{1.21, 0.25, model.LabelFair},
		{1.5, 0.25, model.LabelFair},
		{1.51, 0, model.LabelPoor},
	}
	for _, c := range cases {
		tier := OnePercentTier(c.ratio)
		assert.Equal(t, c.points, tier.Points, "ratio %v", c.ratio)
		assert.Equal(t, c.label, tier.Label, "ratio %v", c.ratio)
	}
}

func TestNegotiationTierBoundaries(t *testing.T) {
	cases := []struct {
		pct    float64
		points float64
	}{
		{12, 1.5}, {10, 1.5}, {9.99, 1.0}, {7, 1.0}, {5, 0.75}, {3, 0.5}, {2.9, 0}, {0, 0}, {-4, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.points, NegotiationTier(c.pct).Points, "savings %v%%", c.pct)
	}
}

func TestDownPaymentTier(t *testing.T) {
	assert.Equal(t, model.LabelExcellent, DownPaymentTier(0, 40000).Label)
	assert.Equal(t, model.LabelGood, DownPaymentTier(2000, 40000).Label)
	assert.Equal(t, model.LabelPoor, DownPaymentTier(2001, 40000).Label)
}

func TestRatingFor(t *testing.T) {
	assert.Equal(t, model.RatingExceptional, RatingFor(4.0))
	assert.Equal(t, model.RatingExceptional, RatingFor(3.5))
	assert.Equal(t, model.RatingGreat, RatingFor(3.25))
	assert.Equal(t, model.RatingGood, RatingFor(2.5))
	assert.Equal(t, model.RatingFair, RatingFor(2.0))
	assert.Equal(t, model.RatingBelowAverage, RatingFor(1.75))
	assert.Equal(t, model.RatingPoor, RatingFor(1.25))
	assert.Equal(t, model.RatingPoor, RatingFor(0))
}

func TestScoreOverMSRPAndHighAPR(t *testing.T) {
	in := model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 42000,
		MonthlyPayment:  700,
		DownPayment:     5000,
		LeaseTermMonths: 36,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(9.0),
	}.Normalize()

	s := score(in)
	assert.Equal(t, 0.0, s.TotalScore)
	assert.Equal(t, model.RatingPoor, s.DealRating)
	assert.Equal(t, model.ClassBad, s.DealClass)

	require.Len(t, s.Insights, 5)
	assert.Equal(t, "You're paying 5.0% OVER MSRP. This is a bad deal - negotiate down to MSRP or below.", s.Insights[2].Message)
	assert.Equal(t, "Down payment of $5,000.00 is risky. If the car is totaled, you lose this money.", s.Insights[1].Message)
	assert.Equal(t, model.CategoryAPR, s.Insights[3].Category)
	assert.Equal(t, model.InsightWarning, s.Insights[3].Type)
}

func TestScoreResidualAboveNegotiatedPriceIsCritical(t *testing.T) {
	in := scenarioA()
	in.ResidualValue = model.Float(40000)
	s := score(in)

	last := s.Insights[len(s.Insights)-1]
	assert.Equal(t, model.CategoryResidual, last.Category)
	assert.Equal(t, model.InsightCritical, last.Type)
}

func TestScoreBounds(t *testing.T) {
	for _, payment := range []float64{1, 200, 400, 600, 1000, 5000} {
		for _, price := range []float64{30000, 40000, 50000} {
			for _, down := range []float64{0, 1000, 10000} {
				in := model.DealInputs{MSRP: 40000, NegotiatedPrice: price, MonthlyPayment: payment, DownPayment: down}.Normalize()
				s := score(in)
				assert.GreaterOrEqual(t, s.TotalScore, 0.0)
				assert.LessOrEqual(t, s.TotalScore, model.MaxTotalScore)
			}
		}
	}
}
