package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leasescore/internal/analysis"
	"leasescore/internal/engine"
	"leasescore/internal/model"
)

var fixedClock = func() time.Time { return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC) }

func build(t *testing.T, in model.DealInputs) *Report {
	t.Helper()
	res, err := engine.New().Evaluate(in)
	require.NoError(t, err)
	return NewAssembler(fixedClock).Build(res)
}

func scenarioA() model.DealInputs {
	return model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 37000,
		MonthlyPayment:  350,
		LeaseTermMonths: 36,
		SalesTaxPercent: 7,
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(5.0),
	}
}

func riskyDeal() model.DealInputs {
	return model.DealInputs{
		MSRP:            40000,
		NegotiatedPrice: 41000,
		MonthlyPayment:  700,
		DownPayment:     5000,
		LeaseTermMonths: 48,
		ResidualValue:   model.Float(15000),
		RateMode:        model.RateModeAPR,
		APRPercent:      model.Float(10),
	}
}

func TestMarkdownHasAllPages(t *testing.T) {
	md := build(t, scenarioA()).Markdown()

	for _, h := range []string{
		"## 1. Executive Summary",
		"## 2. Detailed Financial Analysis",
		"## 3. Lease vs Buy",
		"## 4. Market Analysis",
		"## 5. Interest Rate & Risk Assessment",
		"## 6. Optimization & Negotiation Strategy",
		"## 7. Vehicle & Lease Terms",
	} {
		assert.Contains(t, md, h)
	}
	assert.Contains(t, md, "Generated Sat, 14 Mar 2026 15:09:26 UTC")
	assert.Contains(t, md, "**Great Deal** (good). Overall Score: 3.3 / 4.0")
	assert.Contains(t, md, "| Monthly Payment | $374.50 | 0.94% of MSRP |")
	assert.Contains(t, md, "| Net Capitalized Cost | $37,595.00 |")
	assert.Contains(t, md, "No Significant Risks Identified")
	assert.Contains(t, md, "Deal is Well-Optimized")
	assert.Contains(t, md, "Market Position Score:** 80/100 (Excellent market position)")
}

func TestMarkdownListsRisksAndOptimizations(t *testing.T) {
	md := build(t, riskyDeal()).Markdown()

	assert.Contains(t, md, "#### Financial Risk: High Down Payment Risk (HIGH RISK)")
	assert.Contains(t, md, "#### Long-term Cost: High Cost-to-Own (MEDIUM RISK)")
	assert.Contains(t, md, "#### Achieve 1% Rule Target (Payment Reduction)")
	assert.Contains(t, md, "#### Secure Better Interest Rate (Interest Rate)")
	assert.Contains(t, md, "Price Negotiation [HIGH]")
	assert.Contains(t, md, "**Potential Savings:** Improving your credit score")
	assert.NotContains(t, md, "Be prepared to walk away if terms aren't favorable")
}

func TestMarkdownIsDeterministicForFixedClock(t *testing.T) {
	assert.Equal(t, build(t, scenarioA()).Markdown(), build(t, scenarioA()).Markdown())
}

func TestHTML(t *testing.T) {
	out, err := build(t, scenarioA()).HTML()
	require.NoError(t, err)

	page := string(out)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, "<title>LeaseScore Report: Great Deal</title>")
	assert.Contains(t, page, `<body class="deal-good">`)
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "<h2>1. Executive Summary</h2>")
}

func TestWriteCSV(t *testing.T) {
	r := build(t, scenarioA())

	var buf bytes.Buffer
	require.NoError(t, r.WriteCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(records), 3)
	assert.Equal(t, []string{"generated_at", "2026-03-14T15:09:26Z", ""}, records[0])
	assert.Equal(t, []string{"section", "metric", "value"}, records[1])
	assert.Equal(t, []string{"score", "deal_rating", "Great Deal"}, records[2])

	found := map[string]string{}
	for _, rec := range records[3:] {
		found[rec[0]+"."+rec[1]] = rec[2]
	}
	assert.Equal(t, "37595.000000", found["derived.net_cap_cost"])
	assert.Equal(t, "3.250000", found["score.total"])
	assert.Equal(t, "80.000000", found["benchmark.market_position_score"])
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deal.csv")
	require.NoError(t, build(t, scenarioA()).WriteCSVFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "derived,total_monthly_payment,374.500000")
}

func TestRender(t *testing.T) {
	r := build(t, scenarioA())
	for _, f := range []Format{FormatMarkdown, FormatHTML, FormatCSV, FormatJSON} {
		out, err := r.Render(f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, out, f)
	}
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("")
	assert.True(t, ok)
	assert.Equal(t, FormatMarkdown, f)

	f, ok = ParseFormat("html")
	assert.True(t, ok)
	assert.Equal(t, "text/html; charset=utf-8", f.ContentType())

	_, ok = ParseFormat("pdf")
	assert.False(t, ok)
}

func TestRenderJSONWhenMetricsAreUndefined(t *testing.T) {
	noDepreciation := scenarioA()
	noDepreciation.ResidualValue = model.Float(37595)

	fullTradeIn := scenarioA()
	fullTradeIn.TradeInValue = 37000

	cases := []struct {
		name      string
		in        model.DealInputs
		undefined string
	}{
		{"residual equals net cap cost", noDepreciation, analysis.MetricInterestToDepreciationRatio},
		{"trade-in covers the price", fullTradeIn, analysis.MetricEffectiveAPR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := build(t, tc.in)
			assert.Contains(t, r.Analysis.Metrics.Undefined, tc.undefined)

			out, err := r.Render(FormatJSON)
			require.NoError(t, err)

			var decoded struct {
				Analysis struct {
					Metrics map[string]interface{} `json:"metrics"`
				} `json:"analysis"`
			}
			require.NoError(t, json.Unmarshal(out, &decoded))
			assert.Equal(t, 0.0, decoded.Analysis.Metrics[tc.undefined])
			assert.Contains(t, decoded.Analysis.Metrics["undefined"], tc.undefined)

			var buf bytes.Buffer
			require.NoError(t, r.WriteCSV(&buf))
			assert.Contains(t, buf.String(), "metrics,"+tc.undefined+",\n")
		})
	}

	md := build(t, noDepreciation).Markdown()
	assert.Contains(t, md, "| Interest-to-Depreciation Ratio | n/a |")
	md = build(t, fullTradeIn).Markdown()
	assert.Contains(t, md, "| Effective APR | n/a |")
}
