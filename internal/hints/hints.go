// Package hints produces short status messages for a single form field while a deal is being
// entered. It reads the same thresholds the scoring engine uses; nothing here affects a score.
package hints

import (
	"errors"
	"fmt"
	"math"

	"leasescore/internal/model"
	"leasescore/internal/money"
	"leasescore/internal/rates"
	"leasescore/internal/scoring"
)

// ErrUnknownField is returned for a field name ForField does not handle.
var ErrUnknownField = errors.New("unknown field")

type Status string

const (
	StatusValid   Status = "valid"
	StatusInfo    Status = "info"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
	// StatusNone means there is nothing to say yet, e.g. MSRP is still empty.
	StatusNone Status = "none"
)

// Hint is the feedback for one field.
type Hint struct {
	Field   string `json:"field"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Field names accepted by ForField. They match the JSON names of model.DealInputs.
const (
	FieldMSRP            = "msrp"
	FieldNegotiatedPrice = "negotiated_price"
	FieldMonthlyPayment  = "monthly_payment"
	FieldDownPayment     = "down_payment"
	FieldMoneyFactor     = "money_factor"
	FieldAPR             = "apr_percent"
	FieldResidualValue   = "residual_value"
)

// Fields lists every supported field in form order.
var Fields = []string{
	FieldMSRP, FieldNegotiatedPrice, FieldMonthlyPayment, FieldDownPayment,
	FieldMoneyFactor, FieldAPR, FieldResidualValue,
}

// ForField returns the hint for field given the raw (not normalized) inputs.
func ForField(field string, in model.DealInputs) (Hint, error) {
	var h Hint
	switch field {
	case FieldMSRP:
		h = msrpHint(in)
	case FieldNegotiatedPrice:
		h = negotiatedPriceHint(in)
	case FieldMonthlyPayment:
		h = monthlyPaymentHint(in)
	case FieldDownPayment:
		h = downPaymentHint(in)
	case FieldMoneyFactor:
		h = moneyFactorHint(in)
	case FieldAPR:
		h = aprHint(in)
	case FieldResidualValue:
		h = residualHint(in)
	default:
		return Hint{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	h.Field = field
	return h, nil
}

// All returns hints for every supported field.
func All(in model.DealInputs) []Hint {
	out := make([]Hint, 0, len(Fields))
	for _, f := range Fields {
		h, _ := ForField(f, in)
		out = append(out, h)
	}
	return out
}

func none() Hint { return Hint{Status: StatusNone} }

func msrpHint(in model.DealInputs) Hint {
	if in.MSRP > 0 {
		return Hint{Status: StatusValid}
	}
	return none()
}

func negotiatedPriceHint(in model.DealInputs) Hint {
	price, msrp := in.NegotiatedPrice, in.MSRP
	if price <= 0 || msrp <= 0 {
		return none()
	}
	discount := (msrp - price) / msrp * 100
	over := money.Percent(math.Abs(discount), 1)
	off := money.Percent(discount, 1) + " off MSRP (" + money.Format(msrp-price) + ")"

	switch {
	case price > msrp*1.5:
		return Hint{Status: StatusError, Message: "DANGER! Paying " + over + " OVER MSRP - This is a terrible deal!"}
	case price > msrp*1.3:
		return Hint{Status: StatusError, Message: "WARNING! Paying " + over + " over MSRP - Very bad deal!"}
	case price > msrp*1.1:
		return Hint{Status: StatusWarning, Message: "Paying " + over + " over MSRP - Bad deal"}
	case discount >= 10:
		return Hint{Status: StatusValid, Message: "Excellent! " + off}
	case discount >= 5:
		return Hint{Status: StatusValid, Message: "Good discount: " + off}
	case discount >= 0:
		return Hint{Status: StatusInfo, Message: off}
	default:
		return Hint{Status: StatusWarning, Message: "Paying " + over + " over MSRP"}
	}
}

// onePercentStatus maps scoring labels to field statuses.
var onePercentStatus = map[model.ScoreLabel]Status{
	model.LabelExcellent: StatusValid,
	model.LabelGreat:     StatusValid,
	model.LabelGood:      StatusInfo,
	model.LabelFair:      StatusWarning,
	model.LabelPoor:      StatusError,
}

var onePercentSuffix = map[model.ScoreLabel]string{
	model.LabelExcellent: " (well below 1% rule)",
	model.LabelGreat:     " (meets 1% rule)",
	model.LabelGood:      " (slightly above 1% rule)",
	model.LabelFair:      " (above 1% rule)",
	model.LabelPoor:      " - This is a terrible deal!",
}

func monthlyPaymentHint(in model.DealInputs) Hint {
	payment, msrp := in.MonthlyPayment, in.MSRP
	if payment <= 0 || msrp <= 0 {
		return none()
	}
	switch {
	case payment > msrp*0.1:
		return Hint{Status: StatusError, Message: "DANGER! " + money.Format(payment) +
			"/month seems impossibly high - Did you mean to enter this as the car price?"}
	case payment > msrp*0.05:
		return Hint{Status: StatusError, Message: "WARNING! " + money.Format(payment) +
			"/month is extremely high - Please verify this is correct"}
	}

	ratio := payment * (1 + in.SalesTaxPercent/100) / msrp * 100
	tier := scoring.OnePercentTier(ratio)
	msg := money.Percent(ratio, 2) + " of MSRP" + onePercentSuffix[tier.Label]
	switch tier.Label {
	case model.LabelExcellent:
		msg = "Excellent! " + msg
	case model.LabelGreat:
		msg = "Great! " + msg
	}
	return Hint{Status: onePercentStatus[tier.Label], Message: msg}
}

func downPaymentHint(in model.DealInputs) Hint {
	if in.DownPayment == 0 {
		return Hint{Status: StatusValid, Message: "Perfect! Zero down is ideal for leases"}
	}
	if in.DownPayment < 0 || in.MSRP <= 0 {
		return none()
	}
	switch scoring.DownPaymentTier(in.DownPayment, in.MSRP).Label {
	case model.LabelGood:
		return Hint{Status: StatusInfo, Message: "Low down payment is acceptable"}
	default:
		return Hint{Status: StatusWarning, Message: "High down payment is risky on a lease"}
	}
}

func moneyFactorHint(in model.DealInputs) Hint {
	if in.MoneyFactor == nil || *in.MoneyFactor <= 0 {
		return none()
	}
	apr := rates.APRFromMoneyFactor(*in.MoneyFactor)
	return Hint{Status: rateStatus(apr), Message: "APR equivalent: " + money.Percent(apr, 2)}
}

func aprHint(in model.DealInputs) Hint {
	if in.APRPercent == nil || *in.APRPercent <= 0 {
		return none()
	}
	apr := *in.APRPercent
	return Hint{Status: rateStatus(apr), Message: "Money factor equivalent: " + money.Fixed(rates.MoneyFactorFromAPR(apr), 5)}
}

func rateStatus(apr float64) Status {
	switch {
	case apr < scoring.LowAPR:
		return StatusValid
	case apr > scoring.HighAPR:
		return StatusWarning
	default:
		return StatusInfo
	}
}

func residualHint(in model.DealInputs) Hint {
	if in.ResidualValue == nil || *in.ResidualValue == 0 {
		return Hint{Status: StatusInfo, Message: "Will auto-calculate as 60% of negotiated price"}
	}
	value, price := *in.ResidualValue, in.NegotiatedPrice
	if value < 0 || price <= 0 {
		return none()
	}
	pct := value / price * 100
	p := money.Percent(pct, 0) + " of negotiated price"
	switch {
	case pct > 150:
		return Hint{Status: StatusError, Message: "DANGER! " + p + " - This is impossible!"}
	case pct > 100:
		return Hint{Status: StatusError, Message: "WARNING! " + p + " - Residual can't be higher than price!"}
	case pct > 70:
		return Hint{Status: StatusValid, Message: p + " - excellent"}
	case pct >= 50:
		return Hint{Status: StatusInfo, Message: p + " - typical"}
	default:
		return Hint{Status: StatusWarning, Message: p + " - low"}
	}
}
