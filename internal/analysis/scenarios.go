package analysis

import (
	"leasescore/internal/model"
)

// Scenario is a rough what-if estimate built by scaling the current payment.
type Scenario struct {
	Name           string  `json:"name"`
	TermMonths     int     `json:"term_months"`
	SellingPrice   float64 `json:"selling_price,omitempty"`
	DownPayment    float64 `json:"down_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalCost      float64 `json:"total_cost"`
	// Delta is scenario total cost minus current total cost; negative saves money.
	Delta float64 `json:"delta"`
	// Warning is set when the scenario puts more cash at risk.
	Warning string `json:"warning,omitempty"`
}

// Scenario parameters.
const (
	ExtraTermMonths       = 12
	LongerTermPaymentRate = 0.85
	ExtraDownPayment      = 3000.0
	BetterPriceRate       = 0.93
)

// AlternativeScenarios estimates a longer term, a larger down payment and a better negotiated
// price. These are heuristics, not re-evaluations.
func AlternativeScenarios(res *model.EvaluationResult) []Scenario {
	in, d := res.Inputs, res.Derived
	term := in.Term()
	upfront := UpfrontCost(in)

	longerTerm := in.LeaseTermMonths + ExtraTermMonths
	longerPayment := d.TotalMonthlyPayment * LongerTermPaymentRate
	longer := Scenario{
		Name:           "Extend Term",
		TermMonths:     longerTerm,
		DownPayment:    in.DownPayment,
		MonthlyPayment: longerPayment,
		TotalCost:      longerPayment*float64(longerTerm) + upfront,
	}

	higherDown := in.DownPayment + ExtraDownPayment
	lowerPayment := d.TotalMonthlyPayment - ExtraDownPayment/term
	more := Scenario{
		Name:           "More Down",
		TermMonths:     in.LeaseTermMonths,
		DownPayment:    higherDown,
		MonthlyPayment: lowerPayment,
		TotalCost:      lowerPayment*term + higherDown + in.UpfrontTax + in.AcqFee(),
		Warning:        "Risk: lose the down payment if the car is totaled",
	}

	betterPayment := d.TotalMonthlyPayment * BetterPriceRate
	better := Scenario{
		Name:           "Better Negotiation",
		TermMonths:     in.LeaseTermMonths,
		SellingPrice:   in.NegotiatedPrice * BetterPriceRate,
		DownPayment:    in.DownPayment,
		MonthlyPayment: betterPayment,
		TotalCost:      betterPayment*term + upfront,
	}

	out := []Scenario{longer, more, better}
	for i := range out {
		out[i].Delta = out[i].TotalCost - d.TotalCost
	}
	return out
}
