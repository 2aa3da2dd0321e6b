// Package risk runs a fixed, ordered rule table over a derived deal and reports every rule
// that matches.
package risk

import (
	"leasescore/internal/leasemath"
	"leasescore/internal/model"
	"leasescore/internal/money"
)

// Limits used by the rule table.
const (
	// StandardMileageLimit is the total mileage above which the usage rule fires.
	StandardMileageLimit = 36000.0
	// CostToOwnLimit is the cost-to-own share of MSRP, in percent, above which buying is suggested.
	CostToOwnLimit = 120.0
)

// Rule is one entry of the risk table.
type Rule struct {
	Category       string
	Title          string
	Impact         string
	Recommendation string

	// Applies reports whether the rule fires.
	Applies func(in model.DealInputs, d model.DerivedFinancials) bool
	// Level grades a firing rule.
	Level func(in model.DealInputs, d model.DerivedFinancials) model.RiskLevel
	// Describe renders the finding's description.
	Describe func(in model.DealInputs, d model.DerivedFinancials) string
}

// Rules is evaluated top to bottom. Order is stable and is the order of the findings.
var Rules = []Rule{
	{
		Category:       "Financial Risk",
		Title:          "High Down Payment Risk",
		Impact:         "High",
		Recommendation: "Consider reducing down payment to $0 and keeping cash for emergencies.",
		Applies: func(in model.DealInputs, _ model.DerivedFinancials) bool {
			return in.DownPayment > in.MSRP*0.05
		},
		Level: func(in model.DealInputs, _ model.DerivedFinancials) model.RiskLevel {
			return highIf(in.DownPayment > in.MSRP*0.10)
		},
		Describe: func(in model.DealInputs, _ model.DerivedFinancials) string {
			return "You have " + money.FormatWhole(in.DownPayment) +
				" at risk. If the vehicle is totaled or stolen, you lose this money."
		},
	},
	{
		Category:       "Deal Quality",
		Title:          "Above-Market Payment",
		Impact:         "High",
		Recommendation: "Negotiate a lower monthly payment or consider a different vehicle.",
		Applies: func(_ model.DealInputs, d model.DerivedFinancials) bool {
			return d.PaymentToMSRPRatio > 1.2
		},
		Level: func(_ model.DealInputs, d model.DerivedFinancials) model.RiskLevel {
			return highIf(d.PaymentToMSRPRatio > 1.5)
		},
		Describe: func(_ model.DealInputs, d model.DerivedFinancials) string {
			return "Your payment is " + money.Percent(d.PaymentToMSRPRatio, 2) +
				" of MSRP, significantly above the 1% rule benchmark."
		},
	},
	{
		Category:       "Negotiation",
		Title:          "Weak Negotiation Position",
		Impact:         "Medium",
		Recommendation: "Negotiate the selling price more aggressively before finalizing.",
		Applies: func(_ model.DealInputs, d model.DerivedFinancials) bool {
			return d.SavingsPercentage < 3
		},
		Level: func(_ model.DealInputs, d model.DerivedFinancials) model.RiskLevel {
			return highIf(d.SavingsPercentage < 0)
		},
		Describe: func(_ model.DealInputs, d model.DerivedFinancials) string {
			return "Only " + money.Percent(d.SavingsPercentage, 1) +
				" discount from MSRP. You're leaving money on the table."
		},
	},
	{
		Category:       "Interest Rate",
		Title:          "Above-Market Interest Rate",
		Impact:         "Medium",
		Recommendation: "Shop around for better rates or improve credit score before leasing.",
		Applies: func(in model.DealInputs, _ model.DerivedFinancials) bool {
			return in.APR() > 7
		},
		Level: func(in model.DealInputs, _ model.DerivedFinancials) model.RiskLevel {
			return highIf(in.APR() > 9)
		},
		Describe: func(in model.DealInputs, _ model.DerivedFinancials) string {
			return "APR of " + money.Percent(in.APR(), 2) + " is higher than typical market rates (5-7%)."
		},
	},
	{
		Category:       "Depreciation",
		Title:          "High Depreciation Rate",
		Impact:         "High",
		Recommendation: "Consider vehicles with higher residual values to reduce monthly payments.",
		Applies: func(_ model.DealInputs, d model.DerivedFinancials) bool {
			return d.ResidualPercent < 50
		},
		Level: func(_ model.DealInputs, d model.DerivedFinancials) model.RiskLevel {
			return highIf(d.ResidualPercent < 40)
		},
		Describe: func(_ model.DealInputs, d model.DerivedFinancials) string {
			return "Residual of " + money.Percent(d.ResidualPercent, 1) + " means you're paying for " +
				money.Percent(100-d.ResidualPercent, 1) + " of the car's value."
		},
	},
	{
		Category:       "Usage",
		Title:          "Potential Mileage Overage",
		Impact:         "Medium",
		Recommendation: "Negotiate higher mileage allowance if you drive more than 12k miles/year.",
		Applies: func(in model.DealInputs, _ model.DerivedFinancials) bool {
			return leasemath.EstimatedMiles(in.LeaseTermMonths) > StandardMileageLimit
		},
		Level: medium,
		Describe: func(in model.DealInputs, _ model.DerivedFinancials) string {
			return "Standard 12k miles/year over " + money.Number(in.Term(), 0) + " months = " +
				money.Number(leasemath.EstimatedMiles(in.LeaseTermMonths), 0) +
				" miles. Verify your mileage allowance."
		},
	},
	{
		Category:       "Long-term Cost",
		Title:          "High Cost-to-Own",
		Impact:         "Medium",
		Recommendation: "Compare with financing options before committing to lease.",
		Applies: func(in model.DealInputs, d model.DerivedFinancials) bool {
			return costToOwnRatio(in, d) > CostToOwnLimit
		},
		Level: medium,
		Describe: func(in model.DealInputs, d model.DerivedFinancials) string {
			return "Total cost to own (" + money.Percent(costToOwnRatio(in, d), 0) +
				" of MSRP) is high. Buying might be more economical."
		},
	},
}

// Assess evaluates every rule against normalized inputs and their derived figures. There is
// no short-circuit; a deal can match all seven rules.
func Assess(in model.DealInputs, d model.DerivedFinancials) []model.RiskFinding {
	findings := make([]model.RiskFinding, 0, len(Rules))
	for _, r := range Rules {
		if !r.Applies(in, d) {
			continue
		}
		findings = append(findings, model.RiskFinding{
			Category:       r.Category,
			Level:          r.Level(in, d),
			Title:          r.Title,
			Description:    r.Describe(in, d),
			Impact:         r.Impact,
			Recommendation: r.Recommendation,
		})
	}
	return findings
}

func costToOwnRatio(in model.DealInputs, d model.DerivedFinancials) float64 {
	return d.CostToOwnAfterLease / in.MSRP * 100
}

func highIf(cond bool) model.RiskLevel {
	if cond {
		return model.RiskHigh
	}
	return model.RiskMedium
}

func medium(model.DealInputs, model.DerivedFinancials) model.RiskLevel { return model.RiskMedium }
