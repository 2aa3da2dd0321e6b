// Package optimize suggests target states for a deal and estimates what reaching them is worth.
package optimize

import (
	"leasescore/internal/leasemath"
	"leasescore/internal/model"
	"leasescore/internal/money"
	"leasescore/internal/rates"
)

// Targets used by the opportunity rules.
const (
	TargetPaymentRatio = 0.01 // payment as a fraction of MSRP
	TargetDiscount     = 0.07 // discount as a fraction of MSRP
	TargetAPRPercent   = 5.5
	// APRThreshold is the rate above which a better rate is suggested.
	APRThreshold = 6.0
)

// Ordered tactic lists, one per category.
var (
	PaymentActions = []string{
		"Negotiate a lower selling price",
		"Increase down payment (if comfortable with risk)",
		"Extend lease term to 48 months",
		"Look for manufacturer incentives",
	}
	NegotiationActions = []string{
		"Get quotes from multiple dealers",
		"Time purchase for end of month/quarter",
		"Research dealer invoice price",
		"Negotiate selling price, not monthly payment",
	}
	DownPaymentActions = []string{
		"Roll down payment into monthly payments",
		"Keep cash for emergency fund",
		"Invest the money instead (potential returns)",
		"Maintain liquidity for better opportunities",
	}
	RateActions = []string{
		"Improve credit score before applying",
		"Shop multiple lenders/banks",
		"Consider credit union financing",
		"Negotiate money factor with dealer",
	}
)

type rule func(in model.DealInputs, d model.DerivedFinancials) (model.OptimizationOpportunity, bool)

var rules = []rule{paymentReduction, priceNegotiation, downPayment, interestRate}

// Find returns every opportunity that applies, in rule order.
func Find(in model.DealInputs, d model.DerivedFinancials) []model.OptimizationOpportunity {
	out := make([]model.OptimizationOpportunity, 0, len(rules))
	for _, r := range rules {
		if opp, ok := r(in, d); ok {
			out = append(out, opp)
		}
	}
	return out
}

func paymentReduction(in model.DealInputs, d model.DerivedFinancials) (model.OptimizationOpportunity, bool) {
	if d.PaymentToMSRPRatio <= 1.0 {
		return model.OptimizationOpportunity{}, false
	}
	target := in.MSRP * TargetPaymentRatio
	return model.OptimizationOpportunity{
		Category:         "Payment Reduction",
		Title:            "Achieve 1% Rule Target",
		Current:          d.TotalMonthlyPayment,
		Target:           target,
		Unit:             model.UnitCurrency,
		EstimatedSavings: (d.TotalMonthlyPayment - target) * in.Term(),
		SavingsKind:      model.SavingsOverTerm,
		Description: "Reduce monthly payment from " + money.Format(d.TotalMonthlyPayment) +
			" to " + money.Format(target) + " to meet the 1% rule.",
		Actions: clone(PaymentActions),
	}, true
}

func priceNegotiation(in model.DealInputs, d model.DerivedFinancials) (model.OptimizationOpportunity, bool) {
	if d.SavingsPercentage >= 7 {
		return model.OptimizationOpportunity{}, false
	}
	target := in.MSRP * TargetDiscount
	return model.OptimizationOpportunity{
		Category:         "Price Negotiation",
		Title:            "Improve Negotiation Discount",
		Current:          d.SavingsPercentage,
		Target:           TargetDiscount * 100,
		Unit:             model.UnitPercent,
		EstimatedSavings: target - d.SavingsFromMSRP,
		SavingsKind:      model.SavingsOnPrice,
		Description: "Negotiate " + money.Format(target-d.SavingsFromMSRP) +
			" more off the selling price to reach a 7% discount (" + money.Format(target) + ").",
		Actions: clone(NegotiationActions),
	}, true
}

func downPayment(in model.DealInputs, _ model.DerivedFinancials) (model.OptimizationOpportunity, bool) {
	if in.DownPayment <= 0 {
		return model.OptimizationOpportunity{}, false
	}
	increase := in.DownPayment / in.Term()
	return model.OptimizationOpportunity{
		Category:         "Down Payment",
		Title:            "Eliminate Down Payment Risk",
		Current:          in.DownPayment,
		Target:           0,
		Unit:             model.UnitCurrency,
		EstimatedSavings: in.DownPayment,
		SavingsKind:      model.SavingsProtectedPrincipal,
		MonthlyIncrease:  increase,
		Description: "Protect " + money.Format(in.DownPayment) +
			" from loss if the vehicle is totaled. Monthly payment would increase by about " +
			money.Format(increase) + ".",
		Actions: clone(DownPaymentActions),
	}, true
}

func interestRate(in model.DealInputs, d model.DerivedFinancials) (model.OptimizationOpportunity, bool) {
	if in.APR() <= APRThreshold {
		return model.OptimizationOpportunity{}, false
	}
	targetInterest := leasemath.MonthlyInterestAt(d.NetCapCost, in.Residual(), rates.MoneyFactorFromAPR(TargetAPRPercent))
	monthly := d.MonthlyInterest - targetInterest
	return model.OptimizationOpportunity{
		Category:         "Interest Rate",
		Title:            "Secure Better Interest Rate",
		Current:          in.APR(),
		Target:           TargetAPRPercent,
		Unit:             model.UnitPercent,
		EstimatedSavings: monthly * in.Term(),
		SavingsKind:      model.SavingsOverTerm,
		Description: "Lowering APR from " + money.Percent(in.APR(), 2) + " to " +
			money.Percent(TargetAPRPercent, 1) + " saves about " + money.Format(monthly) + " per month.",
		Actions: clone(RateActions),
	}, true
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
