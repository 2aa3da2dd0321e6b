package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"leasescore/internal/analysis"
	"leasescore/internal/benchmark"
	"leasescore/internal/model"
	"leasescore/internal/money"
)

// Markdown renders the full seven-page report.
func (r *Report) Markdown() string {
	w := &mdWriter{}
	w.heading(1, "LeaseScore Deal Report")
	w.para("Generated " + r.GeneratedAt.UTC().Format(time.RFC1123))

	pages := []func(*mdWriter){
		r.executiveSummary,
		r.financialAnalysis,
		r.leaseVsBuy,
		r.marketAnalysis,
		r.interestAndRisk,
		r.optimization,
		r.vehicleAndTerms,
	}
	for _, page := range pages {
		page(w)
	}
	return w.String()
}

func (r *Report) executiveSummary(w *mdWriter) {
	res, m := r.Result, r.Analysis.Metrics
	in, d, s := res.Inputs, res.Derived, res.Score

	w.heading(2, "1. Executive Summary")
	w.para(fmt.Sprintf("**%s** (%s). Overall Score: %s / %s",
		s.DealRating, s.DealClass, money.Fixed(s.TotalScore, 1), money.Fixed(model.MaxTotalScore, 1)))

	w.table([]string{"Metric", "Value", "Detail"}, [][]string{
		{"Monthly Payment", money.Format(d.TotalMonthlyPayment), money.Percent(d.PaymentToMSRPRatio, 2) + " of MSRP"},
		{"Total Lease Cost", money.Format(d.TotalCost), fmt.Sprintf("Over %d months", in.LeaseTermMonths)},
		{"Savings from MSRP", money.Format(d.SavingsFromMSRP), money.Percent(d.SavingsPercentage, 1) + " discount"},
		{"Cost Per Mile", money.Format(m.CostPerMile), "Based on 12k miles/year"},
		{"Effective APR", metric(m, analysis.MetricEffectiveAPR, money.Percent(m.EffectiveAPR, 2)), "Including all costs"},
		{"Depreciation Rate", money.Percent(m.DepreciationRate, 1), money.Percent(m.AnnualDepreciationRate, 1) + " annually"},
		{"Upfront Cost", money.Format(m.UpfrontCost), metric(m, analysis.MetricUpfrontToTotalRatio, money.Percent(m.UpfrontToTotalRatio, 1)) + " of total"},
		{"Cost to Own", money.Format(d.CostToOwnAfterLease), money.Percent(m.CostToOwnRatio, 0) + " of MSRP"},
	})

	w.heading(3, "Score Breakdown")
	bar := func(title string, sub model.SubScore, detail string) []string {
		return []string{
			title, string(sub.Label),
			money.Fixed(sub.Points, 1) + " / " + money.Fixed(sub.Max, 1),
			money.Percent(sub.Points/sub.Max*100, 0), detail,
		}
	}
	w.table([]string{"Factor", "Rating", "Points", "Share", "Detail"}, [][]string{
		bar("1% Rule Compliance", s.OnePercent, money.Percent(d.PaymentToMSRPRatio, 2)+" of MSRP"),
		bar("Down Payment Strategy", s.DownPayment, money.Format(in.DownPayment)),
		bar("Price Negotiation", s.Negotiation, money.Percent(d.SavingsPercentage, 1)+" off MSRP"),
	})

	w.heading(3, "Key Insights")
	items := make([]string, 0, len(s.Insights))
	for _, ins := range s.Insights {
		items = append(items, fmt.Sprintf("**%s** %s", strings.ToUpper(string(ins.Type)), ins.Message))
	}
	w.list(items)
}

func (r *Report) financialAnalysis(w *mdWriter) {
	res, m := r.Result, r.Analysis.Metrics
	in, d := res.Inputs, res.Derived

	w.heading(2, "2. Detailed Financial Analysis")
	w.heading(3, "Monthly Payment Breakdown")
	share := func(v float64) string { return money.Percent(v/d.TotalMonthlyPayment*100, 1) + " of payment" }
	w.table([]string{"Component", "Amount", "Share"}, [][]string{
		{"Depreciation", money.Format(d.MonthlyDepreciation), share(d.MonthlyDepreciation)},
		{"Interest/Finance", money.Format(d.MonthlyInterest), share(d.MonthlyInterest)},
		{"Sales Tax", money.Format(d.MonthlyTax), share(d.MonthlyTax)},
	})

	w.heading(3, "Total Cost")
	ofTotal := func(v float64) string { return money.Percent(v/d.TotalCost*100, 1) }
	totalTax := d.MonthlyTax * in.Term()
	w.table([]string{"Cost Component", "Amount", "% of Total"}, [][]string{
		{"Down Payment", money.Format(in.DownPayment), ofTotal(in.DownPayment)},
		{"Upfront Tax", money.Format(in.UpfrontTax), ofTotal(in.UpfrontTax)},
		{"Acquisition Fee", money.Format(in.AcqFee()), ofTotal(in.AcqFee())},
		{fmt.Sprintf("Monthly Payments (%d months)", in.LeaseTermMonths), money.Format(d.TotalPayments), ofTotal(d.TotalPayments)},
		{"- Depreciation", money.Format(d.TotalDepreciation), ofTotal(d.TotalDepreciation)},
		{"- Interest", money.Format(d.TotalInterest), ofTotal(d.TotalInterest)},
		{"- Sales Tax", money.Format(totalTax), ofTotal(totalTax)},
		{"**Total Lease Cost**", "**" + money.Format(d.TotalCost) + "**", "**100.0%**"},
		{"Residual Value (to purchase)", money.Format(in.Residual()), "-"},
		{"**Cost to Own After Lease**", "**" + money.Format(d.CostToOwnAfterLease) + "**", money.Percent(m.CostToOwnRatio, 1) + " of MSRP"},
	})

	w.heading(3, "Financial Metrics")
	w.table([]string{"Metric", "Value", "Meaning"}, [][]string{
		{"Payment Efficiency", metric(m, analysis.MetricPaymentEfficiency, money.Percent(m.PaymentEfficiency, 1)), "Portion of payment going to depreciation vs interest/tax"},
		{"Interest-to-Depreciation Ratio", metric(m, analysis.MetricInterestToDepreciationRatio, money.Fixed(m.InterestToDepreciationRatio, 3)), "Lower is better - shows interest burden"},
		{"Monthly Cost % of Value", money.Percent(m.MonthlyCostPercent, 2), "Monthly payment as % of vehicle value"},
		{"Tax Burden", metric(m, analysis.MetricTaxBurdenPercent, money.Percent(m.TaxBurdenPercent, 1)), "Total tax: " + money.Format(m.TotalTaxPaid)},
		{"Residual Strength", money.Percent(m.ResidualStrength, 1), "Residual as % of MSRP - higher is better"},
		{"Deal Velocity", money.Percent(m.DealVelocity, 1), "How much of car value you're paying for"},
	})
}

func (r *Report) leaseVsBuy(w *mdWriter) {
	in := r.Result.Inputs
	lb := r.Analysis.LeaseVsBuy

	w.heading(2, "3. Lease vs Buy")
	w.table([]string{"", "Leasing", "Buying (Finance)"}, [][]string{
		{"Monthly Payment", money.Format(r.Result.Derived.TotalMonthlyPayment), money.Format(lb.MonthlyLoanPayment)},
		{"Down Payment", money.Format(in.DownPayment), money.Format(in.DownPayment)},
		{"Total Payments", money.Format(r.Result.Derived.TotalPayments), money.Format(lb.TotalLoanPayments)},
		{"Total Cost", money.Format(lb.LeaseTotalCost), money.Format(lb.TotalCostToBuy)},
		{"Vehicle Value at End", "$0 (return vehicle)", money.Format(in.Residual()) + " (you own it)"},
		{"**Net Cost**", "**" + money.Format(lb.LeaseTotalCost) + "**", "**" + money.Format(lb.NetCostToBuy) + "**"},
	})

	if lb.LeaseIsCheaper {
		w.para(fmt.Sprintf("**Financial Recommendation:** Leasing is more cost-effective for this %d-month period. "+
			"You save **%s** by leasing vs buying.", in.LeaseTermMonths, money.Format(lb.Savings)))
	} else {
		w.para("**Financial Recommendation:** Buying is more cost-effective. You save **" + money.Format(lb.Savings) +
			"** by buying vs leasing, and you own the vehicle at the end.")
	}

	w.heading(3, "Break-Even Point")
	if lb.HasBreakeven {
		w.para(fmt.Sprintf("If you keep the car for **%s months**, the costs equalize. Monthly difference: **%s**.",
			money.Number(math.Ceil(lb.BreakevenMonths), 0), money.Format(lb.MonthlyDifference)))
	} else {
		w.para("Lease and loan payments are identical, so the costs never converge.")
	}
	if lb.LeaseIsCheaper {
		w.para("Leasing saves money in the short term, but buying builds equity.")
	} else {
		w.para("Buying is cheaper even in the short term and you build equity.")
	}

	rows := make([][]string, 0, len(lb.CostOverTime))
	for _, p := range lb.CostOverTime {
		rows = append(rows, []string{
			fmt.Sprintf("%d months", p.Months), money.Format(p.LeaseCost), money.Format(p.BuyNetCost), money.Format(p.Difference),
		})
	}
	w.heading(3, "Cost Over Time")
	w.table([]string{"Timeframe", "Lease Cost", "Buy Cost (Net)", "Difference"}, rows)

	w.heading(3, "Alternative Scenarios")
	rows = make([][]string, 0, len(r.Analysis.Scenarios))
	for _, sc := range r.Analysis.Scenarios {
		impact := "Costs " + money.Format(sc.Delta)
		if sc.Delta < 0 {
			impact = "Saves " + money.Format(-sc.Delta)
		}
		note := sc.Warning
		if sc.SellingPrice > 0 {
			note = "Selling price " + money.Format(sc.SellingPrice)
		}
		rows = append(rows, []string{
			sc.Name, fmt.Sprintf("%d", sc.TermMonths), money.Format(sc.DownPayment),
			money.Format(sc.MonthlyPayment), money.Format(sc.TotalCost), impact, note,
		})
	}
	w.table([]string{"Scenario", "Term", "Down", "Monthly", "Total Cost", "Impact", "Note"}, rows)
}

func (r *Report) marketAnalysis(w *mdWriter) {
	b := r.Result.Benchmark
	dep := r.Analysis.Depreciation

	w.heading(2, "4. Market Analysis")
	w.para(fmt.Sprintf("**Market Position Score:** %s/100 (%s)", money.Fixed(b.MarketPositionScore, 0), positionText(b.Position)))

	rows := make([][]string, 0, len(r.Market))
	for _, v := range r.Market {
		word := "Better by"
		if v.Verdict == benchmark.Worse {
			word = "Worse by"
		}
		rows = append(rows, []string{
			v.Metric, money.Percent(v.Yours, 2), money.Percent(v.Market, 2),
			word + " " + money.Percent(math.Abs(v.Deviation), 2),
		})
	}
	w.table([]string{"Metric", "Your Deal", "Market Avg", "Verdict"}, rows)

	w.heading(3, "Depreciation")
	w.table([]string{"Total Depreciation", "Annual Rate", "Monthly Cost"}, [][]string{
		{money.Format(dep.TotalDepreciation), money.Percent(dep.AnnualRate, 1), money.Format(dep.MonthlyCost)},
	})
	rows = make([][]string, 0, len(dep.Years))
	for _, y := range dep.Years {
		rows = append(rows, []string{
			fmt.Sprintf("Year %d", y.Year), money.Format(y.Value), money.Format(y.Depreciation), money.Percent(y.PercentLost, 1),
		})
	}
	w.table([]string{"Year", "Estimated Value", "Depreciation", "% Lost"}, rows)
	w.para("**Analysis:** " + string(dep.Outlook))
}

func (r *Report) interestAndRisk(w *mdWriter) {
	ia := r.Analysis.Interest

	w.heading(2, "5. Interest Rate & Risk Assessment")
	w.table([]string{"APR", "Money Factor", "Total Interest", "Estimated Credit Tier"}, [][]string{
		{money.Percent(ia.APR, 2), money.Fixed(ia.MoneyFactor, 5), money.Format(ia.TotalInterest), ia.EstimatedTier.Name},
	})

	rows := make([][]string, 0, len(ia.Tiers))
	for _, t := range ia.Tiers {
		name := t.Name
		if t.Current {
			name += " (you)"
		}
		rows = append(rows, []string{name, money.Percent(t.APR, 2), money.Fixed(t.MoneyFactor, 5), money.Format(t.MonthlyInterest)})
	}
	w.heading(3, "Rate Comparison by Credit Tier")
	w.table([]string{"Credit Tier", "Typical APR", "Money Factor", "Monthly Interest"}, rows)

	if ia.APR > 6 {
		good := analysis.CreditTiers[1]
		w.para(fmt.Sprintf("**Potential Savings:** Improving your credit score to get a %s APR could save you approximately %s in interest.",
			money.Percent(good.APR, 1), money.Format(ia.PotentialSavings)))
	} else {
		w.para("**Potential Savings:** You have an excellent interest rate. Well done!")
	}

	w.heading(3, "Risk Analysis")
	if len(r.Result.Risks) == 0 {
		w.para("**No Significant Risks Identified.** Your lease structure appears sound with minimal risk factors.")
		return
	}
	for _, rk := range r.Result.Risks {
		w.heading(4, fmt.Sprintf("%s: %s (%s RISK)", rk.Category, rk.Title, strings.ToUpper(string(rk.Level))))
		w.para(rk.Description)
		w.list([]string{"**Impact:** " + rk.Impact, "**Recommendation:** " + rk.Recommendation})
	}
}

func (r *Report) optimization(w *mdWriter) {
	w.heading(2, "6. Optimization & Negotiation Strategy")
	if len(r.Result.Optimizations) == 0 {
		w.para("**Deal is Well-Optimized.** Your lease terms are competitive. No major optimization opportunities identified.")
	}
	for _, o := range r.Result.Optimizations {
		w.heading(4, o.Title+" ("+o.Category+")")
		w.para(fmt.Sprintf("**%s** -> **%s**. %s", unitValue(o.Unit, o.Current), unitValue(o.Unit, o.Target), savingsText(o)))
		w.para(o.Description)
		w.list(o.Actions)
	}

	w.heading(3, "Negotiation Strategy")
	for _, tip := range r.Analysis.Tips {
		w.heading(4, fmt.Sprintf("%s [%s]", tip.Strategy, tip.Priority))
		w.list(tip.Shown())
	}
	w.heading(4, "Key Principles")
	w.list(analysis.KeyPrinciples)
}

func (r *Report) vehicleAndTerms(w *mdWriter) {
	in, d := r.Result.Inputs, r.Result.Derived

	w.heading(2, "7. Vehicle & Lease Terms")
	w.heading(3, "Vehicle")
	w.table([]string{"Item", "Value"}, [][]string{
		{"MSRP", money.Format(in.MSRP)},
		{"Negotiated Price", money.Format(in.NegotiatedPrice)},
		{"Savings from MSRP", money.Format(d.SavingsFromMSRP) + " (" + money.Percent(d.SavingsPercentage, 1) + ")"},
		{"Trade-in Value", money.Format(in.TradeInValue)},
		{"Residual Value", money.Format(in.Residual()) + " (" + money.Percent(d.ResidualPercent, 1) + ")"},
		{"Net Capitalized Cost", money.Format(d.NetCapCost)},
	})

	w.heading(3, "Lease Terms")
	w.table([]string{"Item", "Value"}, [][]string{
		{"Lease Term", fmt.Sprintf("%d months", in.LeaseTermMonths)},
		{"Down Payment", money.Format(in.DownPayment)},
		{"Monthly Payment (before tax)", money.Format(in.MonthlyPayment)},
		{"Sales Tax Rate", money.Percent(in.SalesTaxPercent, 2)},
		{"Monthly Sales Tax", money.Format(d.MonthlyTax)},
		{"Total Monthly Payment", money.Format(d.TotalMonthlyPayment)},
		{"Upfront Tax", money.Format(in.UpfrontTax)},
		{"Acquisition Fee", money.Format(in.AcqFee())},
	})

	w.heading(3, "Financing")
	w.table([]string{"Item", "Value"}, [][]string{
		{"Money Factor", money.Fixed(in.MF(), 5)},
		{"APR Equivalent", money.Percent(in.APR(), 2)},
		{"Monthly Depreciation", money.Format(d.MonthlyDepreciation)},
		{"Monthly Interest", money.Format(d.MonthlyInterest)},
		{"Theoretical Base Payment", money.Format(d.BasePayment)},
		{"Total Depreciation", money.Format(d.TotalDepreciation)},
		{"Total Interest", money.Format(d.TotalInterest)},
		{"Total Payments", money.Format(d.TotalPayments)},
		{"Total Lease Cost", money.Format(d.TotalCost)},
	})
}

// metric returns text, or n/a when the named metric has no value.
func metric(m analysis.AdvancedMetrics, name, text string) string {
	if !m.IsDefined(name) {
		return money.NotAvailable
	}
	return text
}

func positionText(p model.MarketPosition) string {
	switch p {
	case model.PositionExcellent:
		return "Excellent market position"
	case model.PositionAverage:
		return "Average market position"
	default:
		return "Below market average"
	}
}

func unitValue(u model.ValueUnit, v float64) string {
	if u == model.UnitPercent {
		return money.Percent(v, 2)
	}
	return money.Format(v)
}

func savingsText(o model.OptimizationOpportunity) string {
	switch o.SavingsKind {
	case model.SavingsOnPrice:
		return "Savings: " + money.Format(o.EstimatedSavings) + " off the selling price."
	case model.SavingsProtectedPrincipal:
		return "Protects " + money.Format(o.EstimatedSavings) + " of principal (about " +
			money.Format(o.MonthlyIncrease) + " more per month)."
	default:
		return "Savings: " + money.Format(o.EstimatedSavings) + " over the lease term."
	}
}

// mdWriter accumulates Markdown blocks separated by blank lines.
type mdWriter struct {
	b strings.Builder
}

func (w *mdWriter) String() string { return w.b.String() }

func (w *mdWriter) heading(level int, text string) {
	w.b.WriteString(strings.Repeat("#", level) + " " + text + "\n\n")
}

func (w *mdWriter) para(text string) {
	w.b.WriteString(text + "\n\n")
}

func (w *mdWriter) list(items []string) {
	for _, it := range items {
		w.b.WriteString("- " + it + "\n")
	}
	w.b.WriteString("\n")
}

func (w *mdWriter) table(header []string, rows [][]string) {
	w.row(header)
	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	w.row(sep)
	for _, r := range rows {
		w.row(r)
	}
	w.b.WriteString("\n")
}

func (w *mdWriter) row(cells []string) {
	w.b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
}
