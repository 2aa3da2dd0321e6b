// Package leasemath derives the financial figures of a lease from its normalized inputs.
package leasemath

import "leasescore/internal/model"

// Derive computes DerivedFinancials for in. in must already be normalized and validated:
// term, MSRP and negotiated price are assumed to be positive.
func Derive(in model.DealInputs) model.DerivedFinancials {
	term := in.Term()
	residual := in.Residual()

	netCapCost := NetCapCost(in)
	monthlyDepreciation := (netCapCost - residual) / term
	monthlyInterest := MonthlyInterestAt(netCapCost, residual, in.MF())
	monthlyTax := in.MonthlyPayment * (in.SalesTaxPercent / 100)
	totalMonthlyPayment := in.MonthlyPayment + monthlyTax

	totalPayments := totalMonthlyPayment * term
	totalCost := in.DownPayment + in.UpfrontTax + totalPayments
	savingsFromMSRP := in.MSRP - in.NegotiatedPrice

	return model.DerivedFinancials{
		NetCapCost:          netCapCost,
		MonthlyDepreciation: monthlyDepreciation,
		MonthlyInterest:     monthlyInterest,
		BasePayment:         monthlyDepreciation + monthlyInterest,
		MonthlyTax:          monthlyTax,
		TotalMonthlyPayment: totalMonthlyPayment,
		TotalPayments:       totalPayments,
		TotalDepreciation:   monthlyDepreciation * term,
		TotalInterest:       monthlyInterest * term,
		TotalCost:           totalCost,
		CostToOwnAfterLease: totalCost + residual,
		SavingsFromMSRP:     savingsFromMSRP,
		SavingsPercentage:   savingsFromMSRP / in.MSRP * 100,
		PaymentToMSRPRatio:  totalMonthlyPayment / in.MSRP * 100,
		ResidualPercent:     residual / in.NegotiatedPrice * 100,
	}
}

// NetCapCost is the capitalized cost after trade-in and cash down, plus the acquisition fee.
func NetCapCost(in model.DealInputs) float64 {
	return in.NegotiatedPrice - in.TradeInValue - in.DownPayment + in.AcqFee()
}

// MonthlyInterestAt is the monthly rent charge for a lease with the given capitalized cost,
// residual and money factor.
func MonthlyInterestAt(netCapCost, residual, moneyFactor float64) float64 {
	return (netCapCost + residual) * moneyFactor
}

// EstimatedMiles is the mileage of a standard 12k miles/year allowance over termMonths.
func EstimatedMiles(termMonths int) float64 {
	return float64(termMonths) / 12 * AnnualMileage
}

// AnnualMileage is the standard yearly allowance assumed for mileage-based metrics.
const AnnualMileage = 12000.0
