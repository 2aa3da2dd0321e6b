package engine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestEvaluateScenarioA(t *testing.T) {
	res, err := New().Evaluate(scenarioA())
	require.NoError(t, err)

	assert.InDelta(t, 5.0/2400, res.Inputs.MF(), 1e-12)
	assert.InDelta(t, 22200, res.Inputs.Residual(), 1e-9)
	assert.Equal(t, 595.0, res.Inputs.AcqFee())
	assert.InDelta(t, 37595, res.Derived.NetCapCost, 1e-9)
	assert.Equal(t, 3.25, res.Score.TotalScore)
	assert.Equal(t, model.RatingGreat, res.Score.DealRating)
	assert.Equal(t, 80.0, res.Benchmark.MarketPositionScore)
	assert.Empty(t, res.Risks)
	assert.Empty(t, res.Optimizations)
}

func TestEvaluateRejectsInvalidInput(t *testing.T) {
	res, err := New().Evaluate(model.DealInputs{MSRP: 0, NegotiatedPrice: 30000, MonthlyPayment: 300})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	assert.Nil(t, res)
}

func TestEvaluateHighDownPaymentRisk(t *testing.T) {
	in := scenarioA()
	in.DownPayment = 40000 * 0.12

	res, err := New().Evaluate(in)
	require.NoError(t, err)

	var found bool
	for _, r := range res.Risks {
		if r.Category == "Financial Risk" {
			found = true
			assert.Equal(t, model.RiskHigh, r.Level)
		}
	}
	assert.True(t, found, "expected a Financial Risk finding")
}

func TestEvaluateResidualAboveNegotiatedPrice(t *testing.T) {
	in := scenarioA()
	in.ResidualValue = model.Float(45000)

	res, err := New().Evaluate(in)
	require.NoError(t, err)
	assert.Greater(t, res.Derived.ResidualPercent, 100.0)

	var critical bool
	for _, ins := range res.Score.Insights {
		if ins.Type == model.InsightCritical {
			critical = true
		}
	}
	assert.True(t, critical)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	e := New()
	a, err := e.Evaluate(scenarioA())
	require.NoError(t, err)
	b, err := e.Evaluate(scenarioA())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestEvaluateDoesNotMutateCaller(t *testing.T) {
	in := scenarioA()
	_, err := New().Evaluate(in)
	require.NoError(t, err)
	assert.Nil(t, in.ResidualValue)
	assert.Nil(t, in.MoneyFactor)
	assert.Equal(t, 5.0, *in.APRPercent)
}

func TestEvaluateAllKeepsOrderAndErrors(t *testing.T) {
	deals := []NamedDeal{
		{Name: "good", Inputs: scenarioA()},
		{Name: "broken", Inputs: model.DealInputs{MSRP: 0, NegotiatedPrice: 1, MonthlyPayment: 1}},
		{Name: "also-good", Inputs: scenarioA()},
	}
	out := New().EvaluateAll(deals)
	require.Len(t, out, 3)

	assert.Equal(t, "good", out[0].Name)
	assert.NoError(t, out[0].Err)
	require.NotNil(t, out[0].Result)

	assert.Equal(t, "broken", out[1].Name)
	assert.ErrorIs(t, out[1].Err, model.ErrInvalidInput)
	assert.Nil(t, out[1].Result)

	assert.Equal(t, out[0].Result.Score, out[2].Result.Score)
}
