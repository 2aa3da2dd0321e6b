package model

import (
	"errors"
	"fmt"
	"strings"

	"leasescore/internal/rates"
)

// ErrInvalidInput is returned when one of the primary deal fields is missing or non-positive.
// No result is produced when it is returned.
var ErrInvalidInput = errors.New("invalid input")

// Defaults applied by Normalize.
const (
	DefaultLeaseTermMonths  = 36
	DefaultAcquisitionFee   = 595.0
	DefaultMoneyFactor      = 0.00250
	DefaultAPRPercent       = 6.0
	DefaultResidualFraction = 0.60
)

// RateMode says which of MoneyFactor / APRPercent the user supplied.
type RateMode string

const (
	RateModeMoneyFactor RateMode = "money_factor"
	RateModeAPR         RateMode = "apr"
)

// ParseRateMode accepts the canonical names and their common spellings, ignoring case,
// underscores and dashes: "apr", "APR", "money_factor", "MoneyFactor", "moneyFactor", "mf".
// An empty string stays empty and is treated as money factor by Normalize.
func ParseRateMode(s string) (RateMode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
	switch key {
	case "":
		return "", nil
	case "apr":
		return RateModeAPR, nil
	case "moneyfactor", "mf":
		return RateModeMoneyFactor, nil
	}
	return "", fmt.Errorf("%w: unknown rate_mode %q, want apr or money_factor", ErrInvalidInput, s)
}

// UnmarshalText lets JSON and YAML decoding accept any spelling ParseRateMode does and
// reject everything else.
func (m *RateMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRateMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// DealInputs is the raw deal as collected from the user.
//
// Optional fields are pointers so that "not supplied" can be told apart from an explicit
// zero. Monetary values are dollars, rates are percents except MoneyFactor.
type DealInputs struct {
	MSRP            float64 `json:"msrp" yaml:"msrp"`
	NegotiatedPrice float64 `json:"negotiated_price" yaml:"negotiated_price"`
	// MonthlyPayment is the pre-tax payment quoted by the dealer.
	MonthlyPayment float64 `json:"monthly_payment" yaml:"monthly_payment"`

	DownPayment     float64 `json:"down_payment" yaml:"down_payment"`
	LeaseTermMonths int     `json:"lease_term_months" yaml:"lease_term_months"`
	SalesTaxPercent float64 `json:"sales_tax_percent" yaml:"sales_tax_percent"`

	// ResidualValue defaults to 60% of NegotiatedPrice when nil or zero.
	ResidualValue  *float64 `json:"residual_value,omitempty" yaml:"residual_value,omitempty"`
	TradeInValue   float64  `json:"trade_in_value" yaml:"trade_in_value"`
	UpfrontTax     float64  `json:"upfront_tax" yaml:"upfront_tax"`
	AcquisitionFee *float64 `json:"acquisition_fee,omitempty" yaml:"acquisition_fee,omitempty"`

	RateMode    RateMode `json:"rate_mode" yaml:"rate_mode"`
	MoneyFactor *float64 `json:"money_factor,omitempty" yaml:"money_factor,omitempty"`
	APRPercent  *float64 `json:"apr_percent,omitempty" yaml:"apr_percent,omitempty"`
}

// Float returns a pointer to v. Handy for building DealInputs literals.
func Float(v float64) *float64 { return &v }

// Validate enforces the hard requirements on a deal: positive MSRP, negotiated price and
// monthly payment, and a rate mode ParseRateMode understands. All other fields are defaulted
// or taken as given.
func (d DealInputs) Validate() error {
	if d.MSRP <= 0 {
		return fmt.Errorf("%w: msrp must be > 0", ErrInvalidInput)
	}
	if d.NegotiatedPrice <= 0 {
		return fmt.Errorf("%w: negotiated_price must be > 0", ErrInvalidInput)
	}
	if d.MonthlyPayment <= 0 {
		return fmt.Errorf("%w: monthly_payment must be > 0", ErrInvalidInput)
	}
	if _, err := ParseRateMode(string(d.RateMode)); err != nil {
		return err
	}
	return nil
}

// Normalize returns a copy of d with every default applied. After Normalize all pointer
// fields are non-nil and MoneyFactor/APRPercent agree with each other.
func (d DealInputs) Normalize() DealInputs {
	out := d

	if out.LeaseTermMonths <= 0 {
		out.LeaseTermMonths = DefaultLeaseTermMonths
	}
	if out.ResidualValue == nil || *out.ResidualValue == 0 {
		out.ResidualValue = Float(out.NegotiatedPrice * DefaultResidualFraction)
	} else {
		out.ResidualValue = Float(*out.ResidualValue)
	}
	if out.AcquisitionFee == nil {
		out.AcquisitionFee = Float(DefaultAcquisitionFee)
	} else {
		out.AcquisitionFee = Float(*out.AcquisitionFee)
	}

	mode, _ := ParseRateMode(string(out.RateMode))
	switch mode {
	case RateModeAPR:
		out.RateMode = RateModeAPR
		apr := DefaultAPRPercent
		if out.APRPercent != nil && *out.APRPercent != 0 {
			apr = *out.APRPercent
		}
		out.APRPercent = Float(apr)
		out.MoneyFactor = Float(rates.MoneyFactorFromAPR(apr))
	default:
		out.RateMode = RateModeMoneyFactor
		mf := DefaultMoneyFactor
		if out.MoneyFactor != nil && *out.MoneyFactor != 0 {
			mf = *out.MoneyFactor
		}
		out.MoneyFactor = Float(mf)
		out.APRPercent = Float(rates.APRFromMoneyFactor(mf))
	}
	return out
}

// Residual returns the residual value, or 0 when unset. Call on normalized inputs.
func (d DealInputs) Residual() float64 { return deref(d.ResidualValue) }

// AcqFee returns the acquisition fee, or 0 when unset. Call on normalized inputs.
func (d DealInputs) AcqFee() float64 { return deref(d.AcquisitionFee) }

// MF returns the money factor, or 0 when unset. Call on normalized inputs.
func (d DealInputs) MF() float64 { return deref(d.MoneyFactor) }

// APR returns the APR in percent, or 0 when unset. Call on normalized inputs.
func (d DealInputs) APR() float64 { return deref(d.APRPercent) }

// Term returns the lease term in months as a float64 for arithmetic.
func (d DealInputs) Term() float64 { return float64(d.LeaseTermMonths) }

func deref(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
