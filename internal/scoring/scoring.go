// Package scoring turns derived lease figures into three sub-scores, a deal rating and an
// ordered list of insights.
package scoring

import (
	"math"

	"leasescore/internal/model"
	"leasescore/internal/money"
)

// facts is what a message template may refer to.
type facts struct {
	in model.DealInputs
	d  model.DerivedFinancials
}

// Score evaluates normalized inputs and their derived figures. Insights are emitted in a
// fixed order: 1% rule, down payment, negotiation, APR, residual.
func Score(in model.DealInputs, d model.DerivedFinancials) model.ScoreBreakdown {
	f := facts{in: in, d: d}
	insights := make([]model.Insight, 0, 5)

	op := onePercentTable[onePercentIndex(d.PaymentToMSRPRatio)]
	insights = append(insights, insight(model.CategoryOnePercent, op.tier.Type, op.message(f)))

	dp := DownPaymentTier(in.DownPayment, in.MSRP)
	insights = append(insights, insight(model.CategoryDownPayment, dp.Type, downPaymentMessage(dp, f)))

	ng := negotiationTable[negotiationIndex(d.SavingsPercentage)]
	insights = append(insights, insight(model.CategoryNegotiation, ng.tier.Type, ng.message(f)))

	if ins, ok := aprInsight(in.APR()); ok {
		insights = append(insights, ins)
	}
	insights = append(insights, residualInsight(d.ResidualPercent))

	total := op.tier.Points + dp.Points + ng.tier.Points
	rating := RatingFor(total)

	return model.ScoreBreakdown{
		OnePercent:  model.SubScore{Points: op.tier.Points, Max: MaxOnePercent, Label: op.tier.Label},
		DownPayment: model.SubScore{Points: dp.Points, Max: MaxDownPayment, Label: dp.Label},
		Negotiation: model.SubScore{Points: ng.tier.Points, Max: MaxNegotiation, Label: ng.tier.Label},
		TotalScore:  total,
		DealRating:  rating,
		DealClass:   model.ClassFor(rating),
		Insights:    insights,
	}
}

func insight(c model.InsightCategory, t model.InsightType, msg string) model.Insight {
	return model.Insight{Category: c, Type: t, Message: msg}
}

func fixed(msg string) func(facts) string {
	return func(facts) string { return msg }
}

func downPaymentMessage(t Tier, f facts) string {
	switch t.Label {
	case model.LabelExcellent:
		return "Perfect! Zero down payment protects you from loss if the car is totaled."
	case model.LabelGood:
		return "Low down payment is acceptable, but zero down is ideal for leases."
	default:
		return "Down payment of " + money.Format(f.in.DownPayment) +
			" is risky. If the car is totaled, you lose this money."
	}
}

func savingsText(f facts) string {
	return money.Percent(f.d.SavingsPercentage, 1) + " off MSRP (" + money.Format(f.d.SavingsFromMSRP) + ")"
}

func excellentNegotiation(f facts) string {
	return "Excellent negotiation! You saved " + savingsText(f) + "."
}

func greatNegotiation(f facts) string {
	return "Good negotiation with " + money.Percent(f.d.SavingsPercentage, 1) +
		" discount from MSRP (" + money.Format(f.d.SavingsFromMSRP) + ")."
}

func goodNegotiation(f facts) string {
	return "Decent discount of " + money.Percent(f.d.SavingsPercentage, 1) +
		" from MSRP (" + money.Format(f.d.SavingsFromMSRP) + ")."
}

func fairNegotiation(f facts) string {
	return "Only " + money.Percent(f.d.SavingsPercentage, 1) + " off MSRP. Try negotiating further."
}

func minimalNegotiation(f facts) string {
	return "Minimal discount from MSRP (" + money.Percent(f.d.SavingsPercentage, 1) +
		"). You should negotiate the price more aggressively."
}

func overMSRP(f facts) string {
	return "You're paying " + money.Percent(math.Abs(f.d.SavingsPercentage), 1) +
		" OVER MSRP. This is a bad deal - negotiate down to MSRP or below."
}

// APR thresholds for the rate insight.
const (
	HighAPR = 8.0
	LowAPR  = 4.0
)

func aprInsight(apr float64) (model.Insight, bool) {
	switch {
	case apr > HighAPR:
		return insight(model.CategoryAPR, model.InsightWarning,
			"Interest rate of "+money.Percent(apr, 2)+" is high. Shop around for better rates."), true
	case apr < LowAPR:
		return insight(model.CategoryAPR, model.InsightGood,
			"Excellent interest rate of "+money.Percent(apr, 2)+"!"), true
	}
	return model.Insight{}, false
}

func residualInsight(pct float64) model.Insight {
	p := money.Percent(pct, 1)
	switch {
	case pct > 100:
		return insight(model.CategoryResidual, model.InsightCritical,
			"Residual value ("+p+") is higher than negotiated price. This is incorrect - please verify your values.")
	case pct > 70:
		return insight(model.CategoryResidual, model.InsightGood,
			"High residual value ("+p+") helps keep payments low.")
	case pct >= 50:
		return insight(model.CategoryResidual, model.InsightInfo,
			"Residual value of "+p+" is typical for most leases.")
	case pct >= 40:
		return insight(model.CategoryResidual, model.InsightWarning,
			"Residual value ("+p+") is on the lower side, resulting in higher depreciation costs.")
	default:
		return insight(model.CategoryResidual, model.InsightWarning,
			"Very low residual value ("+p+") means you're paying for most of the car's depreciation.")
	}
}
