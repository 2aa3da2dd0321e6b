package analysis

import (
	"math"

	"leasescore/internal/model"
)

// YearValue is one row of the depreciation projection.
type YearValue struct {
	Year         int     `json:"year"`
	Value        float64 `json:"value"`
	Depreciation float64 `json:"depreciation"`
	PercentLost  float64 `json:"percent_lost"`
}

// DepreciationOutlook grades the annual depreciation rate.
type DepreciationOutlook string

const (
	OutlookExcellent DepreciationOutlook = "Excellent depreciation rate. This vehicle holds its value well."
	OutlookAverage   DepreciationOutlook = "Average depreciation rate. Typical for most vehicles."
	OutlookHigh      DepreciationOutlook = "High depreciation rate. Consider vehicles with better residual values."
)

// Projection estimates the car's value year by year at the deal's annual depreciation rate.
type Projection struct {
	TotalDepreciation float64             `json:"total_depreciation"`
	AnnualRate        float64             `json:"annual_rate"`
	MonthlyCost       float64             `json:"monthly_cost"`
	Years             []YearValue         `json:"years"`
	Outlook           DepreciationOutlook `json:"outlook"`
}

// ProjectDepreciation compounds the annual depreciation rate from year 0 through the last
// (possibly partial) year of the term.
func ProjectDepreciation(res *model.EvaluationResult, m AdvancedMetrics) Projection {
	in := res.Inputs
	price := in.NegotiatedPrice
	rate := m.AnnualDepreciationRate / 100
	years := int(math.Ceil(in.Term() / 12))

	p := Projection{
		TotalDepreciation: price - in.Residual(),
		AnnualRate:        m.AnnualDepreciationRate,
		MonthlyCost:       res.Derived.MonthlyDepreciation,
		Years:             make([]YearValue, 0, years+1),
		Outlook:           OutlookFor(m.AnnualDepreciationRate),
	}

	remaining := price
	for year := 0; year <= years; year++ {
		row := YearValue{
			Year:        year,
			Value:       remaining,
			PercentLost: (price - remaining) / price * 100,
		}
		if year > 0 {
			row.Depreciation = remaining * rate
		}
		p.Years = append(p.Years, row)
		remaining -= remaining * rate
	}
	return p
}

// OutlookFor grades an annual depreciation rate in percent.
func OutlookFor(annualRate float64) DepreciationOutlook {
	switch {
	case annualRate < 15:
		return OutlookExcellent
	case annualRate < 20:
		return OutlookAverage
	default:
		return OutlookHigh
	}
}
