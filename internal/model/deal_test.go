package model

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validDeal() DealInputs {
	return DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 37000,
		MonthlyPayment:  350,
		LeaseTermMonths: 36,
		SalesTaxPercent: 7,
		RateMode:        RateModeAPR,
		APRPercent:      Float(5.0),
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validDeal().Validate())

	cases := map[string]func(d *DealInputs){
		"zero msrp":             func(d *DealInputs) { d.MSRP = 0 },
		"negative msrp":         func(d *DealInputs) { d.MSRP = -1 },
		"zero negotiated price": func(d *DealInputs) { d.NegotiatedPrice = 0 },
		"zero monthly payment":  func(d *DealInputs) { d.MonthlyPayment = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			d := validDeal()
			mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestValidateIgnoresSecondaryFields(t *testing.T) {
	d := validDeal()
	d.TradeInValue = -5000
	d.DownPayment = -1
	d.ResidualValue = Float(99999)
	assert.NoError(t, d.Validate())
}

func TestNormalizeDefaults(t *testing.T) {
	d := DealInputs{MSRP: 40000, NegotiatedPrice: 37000, MonthlyPayment: 350}
	n := d.Normalize()

	assert.Equal(t, DefaultLeaseTermMonths, n.LeaseTermMonths)
	assert.InDelta(t, 22200, n.Residual(), 1e-9)
	assert.InDelta(t, 595, n.AcqFee(), 1e-9)
	assert.Equal(t, RateModeMoneyFactor, n.RateMode)
	assert.InDelta(t, 0.0025, n.MF(), 1e-12)
	assert.InDelta(t, 6.0, n.APR(), 1e-12)

	// the caller's value is untouched
	assert.Nil(t, d.ResidualValue)
	assert.Equal(t, 0, d.LeaseTermMonths)
}

func TestNormalizeZeroResidualDefaults(t *testing.T) {
	d := validDeal()
	d.ResidualValue = Float(0)
	assert.InDelta(t, 22200, d.Normalize().Residual(), 1e-9)
}

func TestNormalizeKeepsExplicitZeroAcquisitionFee(t *testing.T) {
	d := validDeal()
	d.AcquisitionFee = Float(0)
	assert.Equal(t, 0.0, d.Normalize().AcqFee())
}

func TestNormalizeRateModes(t *testing.T) {
	t.Run("apr authoritative", func(t *testing.T) {
		d := validDeal()
		d.MoneyFactor = Float(0.009) // ignored in APR mode
		n := d.Normalize()
		assert.InDelta(t, 5.0, n.APR(), 1e-12)
		assert.InDelta(t, 5.0/2400, n.MF(), 1e-12)
	})
	t.Run("apr default", func(t *testing.T) {
		d := validDeal()
		d.APRPercent = nil
		n := d.Normalize()
		assert.InDelta(t, 6.0, n.APR(), 1e-12)
		assert.InDelta(t, 0.0025, n.MF(), 1e-12)
	})
	t.Run("money factor authoritative", func(t *testing.T) {
		d := validDeal()
		d.RateMode = RateModeMoneyFactor
		d.MoneyFactor = Float(0.00125)
		d.APRPercent = Float(12) // ignored
		n := d.Normalize()
		assert.InDelta(t, 0.00125, n.MF(), 1e-12)
		assert.InDelta(t, 3.0, n.APR(), 1e-12)
	})
}

func TestParseRateMode(t *testing.T) {
	for in, want := range map[string]RateMode{
		"apr":          RateModeAPR,
		"APR":          RateModeAPR,
		" Apr ":        RateModeAPR,
		"money_factor": RateModeMoneyFactor,
		"MoneyFactor":  RateModeMoneyFactor,
		"moneyFactor":  RateModeMoneyFactor,
		"money-factor": RateModeMoneyFactor,
		"MF":           RateModeMoneyFactor,
		"":             "",
	} {
		got, err := ParseRateMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseRateMode("lease")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestNormalizeAcceptsRateModeSpellings(t *testing.T) {
	d := validDeal()
	d.RateMode = "APR"
	d.APRPercent = Float(9.5)
	d.MoneyFactor = Float(0.001) // ignored in APR mode
	n := d.Normalize()
	assert.Equal(t, RateModeAPR, n.RateMode)
	assert.InDelta(t, 9.5, n.APR(), 1e-12)
	assert.InDelta(t, 9.5/2400, n.MF(), 1e-12)

	d.RateMode = "MoneyFactor"
	n = d.Normalize()
	assert.Equal(t, RateModeMoneyFactor, n.RateMode)
	assert.InDelta(t, 0.001, n.MF(), 1e-12)
	assert.InDelta(t, 2.4, n.APR(), 1e-12)
}

func TestValidateRejectsUnknownRateMode(t *testing.T) {
	d := validDeal()
	d.RateMode = "lease"
	err := d.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRateModeDecoding(t *testing.T) {
	var d DealInputs
	require.NoError(t, json.Unmarshal([]byte(`{"rate_mode":"APR","apr_percent":9.5}`), &d))
	assert.Equal(t, RateModeAPR, d.RateMode)

	d = DealInputs{}
	require.NoError(t, json.Unmarshal([]byte(`{"rate_mode":"moneyFactor"}`), &d))
	assert.Equal(t, RateModeMoneyFactor, d.RateMode)

	d = DealInputs{}
	require.NoError(t, json.Unmarshal([]byte(`{"msrp":1}`), &d))
	assert.Equal(t, RateMode(""), d.RateMode)

	assert.Error(t, json.Unmarshal([]byte(`{"rate_mode":"lease"}`), &DealInputs{}))

	d = DealInputs{}
	require.NoError(t, yaml.Unmarshal([]byte("rate_mode: MoneyFactor\nmoney_factor: 0.002\n"), &d))
	assert.Equal(t, RateModeMoneyFactor, d.RateMode)

	d = DealInputs{}
	require.NoError(t, yaml.Unmarshal([]byte("rate_mode: APR\n"), &d))
	assert.Equal(t, RateModeAPR, d.RateMode)

	assert.Error(t, yaml.Unmarshal([]byte("rate_mode: lease\n"), &DealInputs{}))
}

func TestNormalizeDoesNotAliasPointers(t *testing.T) {
	d := validDeal()
	d.ResidualValue = Float(20000)
	n := d.Normalize()
	*n.ResidualValue = 1
	assert.Equal(t, 20000.0, *d.ResidualValue)
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, ClassGood, ClassFor(RatingExceptional))
	assert.Equal(t, ClassGood, ClassFor(RatingGood))
	assert.Equal(t, ClassNeutral, ClassFor(RatingFair))
	assert.Equal(t, ClassBad, ClassFor(RatingBelowAverage))
	assert.Equal(t, ClassBad, ClassFor(RatingPoor))
}
