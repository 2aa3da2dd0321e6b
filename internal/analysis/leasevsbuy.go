package analysis

import (
	"math"

	"leasescore/internal/model"
)

// CostPoint compares lease and net buy cost after a number of months.
type CostPoint struct {
	Months     int     `json:"months"`
	LeaseCost  float64 `json:"lease_cost"`
	BuyNetCost float64 `json:"buy_net_cost"`
	Difference float64 `json:"difference"`
}

// LeaseVsBuy compares the lease with financing the same car at the same APR over the same term.
type LeaseVsBuy struct {
	LoanAmount         float64 `json:"loan_amount"`
	MonthlyLoanPayment float64 `json:"monthly_loan_payment"`
	TotalLoanPayments  float64 `json:"total_loan_payments"`
	TotalCostToBuy     float64 `json:"total_cost_to_buy"`
	// NetCostToBuy subtracts the value of the car you keep (the residual).
	NetCostToBuy float64 `json:"net_cost_to_buy"`

	LeaseTotalCost float64 `json:"lease_total_cost"`
	LeaseIsCheaper bool    `json:"lease_is_cheaper"`
	// Savings is what the cheaper option saves over the other.
	Savings float64 `json:"savings"`

	MonthlyDifference float64 `json:"monthly_difference"`
	// BreakevenMonths is only meaningful when HasBreakeven is set; equal monthly payments
	// never break even.
	BreakevenMonths float64     `json:"breakeven_months"`
	HasBreakeven    bool        `json:"has_breakeven"`
	CostOverTime    []CostPoint `json:"cost_over_time"`
}

// Residual value retained after one and two years, as a share of the end-of-term residual.
var interimResidualShare = []struct {
	months int
	share  float64
}{
	{12, 0.9},
	{24, 0.8},
}

// CompareLeaseVsBuy builds the lease-versus-finance comparison for res.
func CompareLeaseVsBuy(res *model.EvaluationResult) LeaseVsBuy {
	in, d := res.Inputs, res.Derived
	term := in.LeaseTermMonths
	residual := in.Residual()

	out := LeaseVsBuy{}
	out.LoanAmount = in.NegotiatedPrice - in.TradeInValue - in.DownPayment
	out.MonthlyLoanPayment = AmortizedPayment(out.LoanAmount, in.APR(), term)
	out.TotalLoanPayments = out.MonthlyLoanPayment * float64(term)
	out.TotalCostToBuy = out.TotalLoanPayments + in.DownPayment + in.UpfrontTax
	out.NetCostToBuy = out.TotalCostToBuy - residual

	out.LeaseTotalCost = d.TotalCost
	out.LeaseIsCheaper = d.TotalCost < out.NetCostToBuy
	out.Savings = math.Abs(out.NetCostToBuy - d.TotalCost)

	out.MonthlyDifference = math.Abs(d.TotalMonthlyPayment - out.MonthlyLoanPayment)
	if out.MonthlyDifference > 0 {
		out.BreakevenMonths = math.Abs((d.TotalCost - out.NetCostToBuy) / out.MonthlyDifference)
		out.HasBreakeven = true
	}

	upfront := UpfrontCost(in)
	for _, p := range interimResidualShare {
		lease := d.TotalMonthlyPayment*float64(p.months) + upfront
		buy := out.MonthlyLoanPayment*float64(p.months) + in.DownPayment + in.UpfrontTax - residual*p.share
		out.CostOverTime = append(out.CostOverTime, CostPoint{
			Months: p.months, LeaseCost: lease, BuyNetCost: buy, Difference: math.Abs(lease - buy),
		})
	}
	out.CostOverTime = append(out.CostOverTime, CostPoint{
		Months:     term,
		LeaseCost:  d.TotalCost,
		BuyNetCost: out.NetCostToBuy,
		Difference: out.Savings,
	})
	return out
}

// AmortizedPayment is the fixed monthly payment of a loan of principal at aprPercent over
// months. A zero (or vanishingly small) rate spreads the principal evenly.
func AmortizedPayment(principal, aprPercent float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	n := float64(months)
	r := aprPercent / 100 / 12
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	if growth == 1 {
		return principal / n
	}
	return principal * (r * growth) / (growth - 1)
}
