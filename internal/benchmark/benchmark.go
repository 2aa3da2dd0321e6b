// Package benchmark compares a deal with a fixed market reference.
package benchmark

import (
	"leasescore/internal/model"
)

// Market is the reference every deal is measured against.
var Market = model.MarketReference{
	PaymentRatio: 1.0,
	Discount:     7.0,
	Residual:     60.0,
	APR:          6.0,
	DownPayment:  0,
}

const (
	baseScore = 50.0
	minScore  = 0.0
	maxScore  = 100.0
)

// adjustment is one independent contribution to the market position score.
type adjustment func(in model.DealInputs, d model.DerivedFinancials) float64

var adjustments = []adjustment{
	func(_ model.DealInputs, d model.DerivedFinancials) float64 {
		switch r := d.PaymentToMSRPRatio; {
		case r <= 0.8:
			return 15
		case r <= 1.0:
			return 10
		case r > 1.5:
			return -15
		}
		return 0
	},
	func(_ model.DealInputs, d model.DerivedFinancials) float64 {
		switch s := d.SavingsPercentage; {
		case s >= 10:
			return 15
		case s >= 7:
			return 10
		case s < 3:
			return -10
		}
		return 0
	},
	func(in model.DealInputs, _ model.DerivedFinancials) float64 {
		switch {
		case in.DownPayment == 0:
			return 10
		case in.DownPayment > in.MSRP*0.05:
			return -10
		}
		return 0
	},
	func(in model.DealInputs, _ model.DerivedFinancials) float64 {
		switch apr := in.APR(); {
		case apr < 4:
			return 10
		case apr > 8:
			return -10
		}
		return 0
	},
}

// Compare measures normalized inputs and their derived figures against Market.
func Compare(in model.DealInputs, d model.DerivedFinancials) model.Benchmark {
	score := baseScore
	for _, adj := range adjustments {
		score += adj(in, d)
	}
	score = clamp(score, minScore, maxScore)

	return model.Benchmark{
		Market:              Market,
		PaymentVsMarket:     d.PaymentToMSRPRatio - Market.PaymentRatio,
		DiscountVsMarket:    d.SavingsPercentage - Market.Discount,
		ResidualVsMarket:    d.ResidualPercent - Market.Residual,
		APRVsMarket:         in.APR() - Market.APR,
		DownPaymentVsMarket: in.DownPayment - Market.DownPayment,
		MarketPositionScore: score,
		Position:            PositionFor(score),
	}
}

// PositionFor labels a market position score.
func PositionFor(score float64) model.MarketPosition {
	switch {
	case score >= 70:
		return model.PositionExcellent
	case score >= 50:
		return model.PositionAverage
	default:
		return model.PositionBelowAverage
	}
}

// Verdict says whether a metric beats the market.
type Verdict string

const (
	Better Verdict = "better"
	Worse  Verdict = "worse"
)

// MetricVerdict is one row of the market comparison table.
type MetricVerdict struct {
	Metric    string  `json:"metric"`
	Yours     float64 `json:"yours"`
	Market    float64 `json:"market"`
	Deviation float64 `json:"deviation"`
	Verdict   Verdict `json:"verdict"`
}

// Verdicts returns per-metric verdicts in report order. Lower is better for payment ratio and
// APR, higher is better for discount and residual; ties count as better.
func Verdicts(in model.DealInputs, b model.Benchmark) []MetricVerdict {
	lowerIsBetter := func(dev float64) Verdict {
		if dev <= 0 {
			return Better
		}
		return Worse
	}
	higherIsBetter := func(dev float64) Verdict {
		if dev >= 0 {
			return Better
		}
		return Worse
	}
	return []MetricVerdict{
		{"Payment-to-MSRP Ratio", b.Market.PaymentRatio + b.PaymentVsMarket, b.Market.PaymentRatio, b.PaymentVsMarket, lowerIsBetter(b.PaymentVsMarket)},
		{"Negotiation Discount", b.Market.Discount + b.DiscountVsMarket, b.Market.Discount, b.DiscountVsMarket, higherIsBetter(b.DiscountVsMarket)},
		{"Residual Value", b.Market.Residual + b.ResidualVsMarket, b.Market.Residual, b.ResidualVsMarket, higherIsBetter(b.ResidualVsMarket)},
		{"Interest Rate (APR)", in.APR(), b.Market.APR, b.APRVsMarket, lowerIsBetter(b.APRVsMarket)},
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
