package report

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

// metricRow is one line of the CSV export.
type metricRow struct {
	section string
	metric  string
	value   float64
}

func (r *Report) metricRows() []metricRow {
	in, d, s := r.Result.Inputs, r.Result.Derived, r.Result.Score
	m, b := r.Analysis.Metrics, r.Result.Benchmark
	lb := r.Analysis.LeaseVsBuy

	return []metricRow{
		{"inputs", "msrp", in.MSRP},
		{"inputs", "negotiated_price", in.NegotiatedPrice},
		{"inputs", "monthly_payment", in.MonthlyPayment},
		{"inputs", "down_payment", in.DownPayment},
		{"inputs", "lease_term_months", in.Term()},
		{"inputs", "sales_tax_percent", in.SalesTaxPercent},
		{"inputs", "residual_value", in.Residual()},
		{"inputs", "trade_in_value", in.TradeInValue},
		{"inputs", "upfront_tax", in.UpfrontTax},
		{"inputs", "acquisition_fee", in.AcqFee()},
		{"inputs", "money_factor", in.MF()},
		{"inputs", "apr_percent", in.APR()},

		{"derived", "net_cap_cost", d.NetCapCost},
		{"derived", "monthly_depreciation", d.MonthlyDepreciation},
		{"derived", "monthly_interest", d.MonthlyInterest},
		{"derived", "base_payment", d.BasePayment},
		{"derived", "monthly_tax", d.MonthlyTax},
		{"derived", "total_monthly_payment", d.TotalMonthlyPayment},
		{"derived", "total_payments", d.TotalPayments},
		{"derived", "total_depreciation", d.TotalDepreciation},
		{"derived", "total_interest", d.TotalInterest},
		{"derived", "total_cost", d.TotalCost},
		{"derived", "cost_to_own_after_lease", d.CostToOwnAfterLease},
		{"derived", "savings_from_msrp", d.SavingsFromMSRP},
		{"derived", "savings_percentage", d.SavingsPercentage},
		{"derived", "payment_to_msrp_ratio", d.PaymentToMSRPRatio},
		{"derived", "residual_percent", d.ResidualPercent},

		{"score", "one_percent", s.OnePercent.Points},
		{"score", "down_payment", s.DownPayment.Points},
		{"score", "negotiation", s.Negotiation.Points},
		{"score", "total", s.TotalScore},

		{"benchmark", "payment_vs_market", b.PaymentVsMarket},
		{"benchmark", "discount_vs_market", b.DiscountVsMarket},
		{"benchmark", "residual_vs_market", b.ResidualVsMarket},
		{"benchmark", "apr_vs_market", b.APRVsMarket},
		{"benchmark", "down_payment_vs_market", b.DownPaymentVsMarket},
		{"benchmark", "market_position_score", b.MarketPositionScore},

		{"metrics", "effective_apr", m.EffectiveAPR},
		{"metrics", "cost_per_mile", m.CostPerMile},
		{"metrics", "monthly_cost_percent", m.MonthlyCostPercent},
		{"metrics", "depreciation_rate", m.DepreciationRate},
		{"metrics", "annual_depreciation_rate", m.AnnualDepreciationRate},
		{"metrics", "interest_to_depreciation_ratio", m.InterestToDepreciationRatio},
		{"metrics", "upfront_cost", m.UpfrontCost},
		{"metrics", "upfront_to_total_ratio", m.UpfrontToTotalRatio},
		{"metrics", "payment_efficiency", m.PaymentEfficiency},
		{"metrics", "residual_strength", m.ResidualStrength},
		{"metrics", "discount_effectiveness", m.DiscountEffectiveness},
		{"metrics", "total_tax_paid", m.TotalTaxPaid},
		{"metrics", "tax_burden_percent", m.TaxBurdenPercent},
		{"metrics", "mf_quality", m.MFQuality},
		{"metrics", "deal_velocity", m.DealVelocity},
		{"metrics", "cost_to_own_ratio", m.CostToOwnRatio},

		{"lease_vs_buy", "monthly_loan_payment", lb.MonthlyLoanPayment},
		{"lease_vs_buy", "total_cost_to_buy", lb.TotalCostToBuy},
		{"lease_vs_buy", "net_cost_to_buy", lb.NetCostToBuy},
		{"lease_vs_buy", "savings", lb.Savings},
	}
}

// WriteCSV writes the report's metric table as section,metric,value rows.
func (r *Report) WriteCSV(out io.Writer) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"generated_at", fmtTime(r.GeneratedAt), ""}); err != nil {
		return err
	}
	if err := w.Write([]string{"section", "metric", "value"}); err != nil {
		return err
	}
	if err := w.Write([]string{"score", "deal_rating", string(r.Result.Score.DealRating)}); err != nil {
		return err
	}
	for _, row := range r.metricRows() {
		value := fmtFloat(row.value)
		if row.section == "metrics" && !r.Analysis.Metrics.IsDefined(row.metric) {
			value = ""
		}
		if err := w.Write([]string{row.section, row.metric, value}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// WriteCSVFile writes the metric table to path.
func (r *Report) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return r.WriteCSV(f)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
