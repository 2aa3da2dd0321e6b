package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasescore/internal/leasemath"
	"leasescore/internal/model"
)

func find(in model.DealInputs) []model.OptimizationOpportunity {
	in = in.Normalize()
	return Find(in, leasemath.Derive(in))
}

func TestFindScenarioAHasNoOpportunities(t *testing.T) {
	opps := find(model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 37000,
		MonthlyPayment:  350,
		LeaseTermMonths: 36,
		SalesTaxPercent: 7,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(5.0),
	})
	assert.NotNil(t, opps)
	assert.Empty(t, opps)
}

func TestFindAllOpportunities(t *testing.T) {
	// 30000 MSRP, 29000 price, $400/mo, $1,200 down, 7.2% APR over 36 months
	opps := find(model.DealInputs{
		MSRP:            30000,
		NegotiatedPrice: 29000,
		MonthlyPayment:  400,
		DownPayment:     1200,
		LeaseTermMonths: 36,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(7.2),
	})
	require.Len(t, opps, 4)

	pay := opps[0]
	assert.Equal(t, "Payment Reduction", pay.Category)
	assert.Equal(t, model.UnitCurrency, pay.Unit)
	assert.InDelta(t, 300, pay.Target, 1e-9)
	assert.InDelta(t, 3600, pay.EstimatedSavings, 1e-9)
	assert.Equal(t, PaymentActions, pay.Actions)

	neg := opps[1]
	assert.Equal(t, "Price Negotiation", neg.Category)
	assert.Equal(t, model.SavingsOnPrice, neg.SavingsKind)
	assert.InDelta(t, 7, neg.Target, 1e-9)
	assert.InDelta(t, 1100, neg.EstimatedSavings, 1e-9)

	down := opps[2]
	assert.Equal(t, "Down Payment", down.Category)
	assert.Equal(t, model.SavingsProtectedPrincipal, down.SavingsKind)
	assert.InDelta(t, 1200, down.EstimatedSavings, 1e-9)
	assert.InDelta(t, 1200.0/36, down.MonthlyIncrease, 1e-9)

	rate := opps[3]
	assert.Equal(t, "Interest Rate", rate.Category)
	assert.InDelta(t, 5.5, rate.Target, 1e-9)
	// net cap 28395, residual 17400: (45795) * (7.2-5.5)/2400 * 36
	assert.InDelta(t, 45795*1.7/2400*36, rate.EstimatedSavings, 1e-6)
	assert.Equal(t, RateActions, rate.Actions)
}

func TestFindActionsAreCopies(t *testing.T) {
	in := model.DealInputs{MSRP: 30000, NegotiatedPrice: 30000, MonthlyPayment: 250}
	opps := find(in)
	require.NotEmpty(t, opps)
	opps[0].Actions[0] = "changed"
	assert.Equal(t, "Get quotes from multiple dealers", NegotiationActions[0])
}

func TestFindAPRThresholdIsExclusive(t *testing.T) {
	// APR exactly 6 does not trigger
	opps := find(model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 36000,
		MonthlyPayment:  300,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(6.0),
	})
	assert.Empty(t, opps)
}
