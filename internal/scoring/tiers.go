package scoring

import (
	"math"

	"leasescore/internal/model"
)

// Tier is one step of a score table.
type Tier struct {
	Points float64
	Label  model.ScoreLabel
	Type   model.InsightType
}

// Maximum points per dimension.
const (
	MaxOnePercent  = 1.5
	MaxDownPayment = 1.0
	MaxNegotiation = 1.5
)

// DownPaymentTolerance is the share of MSRP a down payment may reach and still score "Good".
const DownPaymentTolerance = 0.05

// ceilingTier matches when value <= ceiling. Tables are ordered best first.
type ceilingTier struct {
	ceiling float64
	tier    Tier
	message func(f facts) string
}

// floorTier matches when value >= floor. Tables are ordered best first.
type floorTier struct {
	floor   float64
	tier    Tier
	message func(f facts) string
}

var onePercentTable = []ceilingTier{
	{0.8, Tier{1.5, model.LabelExcellent, model.InsightExcellent},
		fixed("Outstanding! Payment is well below 1% of MSRP - this is an exceptional deal.")},
	{1.0, Tier{1.25, model.LabelGreat, model.InsightGood},
		fixed("Great deal! Payment meets the 1% rule benchmark.")},
	{1.2, Tier{0.75, model.LabelGood, model.InsightInfo},
		fixed("Decent deal, but payment is slightly above the 1% rule.")},
	{1.5, Tier{0.25, model.LabelFair, model.InsightWarning},
		fixed("Payment is significantly above 1% of MSRP. Consider negotiating further.")},
	{math.Inf(1), Tier{0, model.LabelPoor, model.InsightCritical},
		fixed("Payment is too high relative to MSRP. This is not a good deal.")},
}

var negotiationTable = []floorTier{
	{10, Tier{1.5, model.LabelExcellent, model.InsightExcellent}, excellentNegotiation},
	{7, Tier{1.0, model.LabelGreat, model.InsightGood}, greatNegotiation},
	{5, Tier{0.75, model.LabelGood, model.InsightInfo}, goodNegotiation},
	{3, Tier{0.5, model.LabelFair, model.InsightWarning}, fairNegotiation},
	{0, Tier{0, model.LabelPoor, model.InsightCritical}, minimalNegotiation},
	{math.Inf(-1), Tier{0, model.LabelPoor, model.InsightCritical}, overMSRP},
}

var ratingTable = []struct {
	floor  float64
	rating model.DealRating
}{
	{3.5, model.RatingExceptional},
	{3.0, model.RatingGreat},
	{2.5, model.RatingGood},
	{2.0, model.RatingFair},
	{1.5, model.RatingBelowAverage},
	{math.Inf(-1), model.RatingPoor},
}

// OnePercentTier scores the total monthly payment as a percent of MSRP. Each ceiling is
// inclusive, so a ratio of exactly 1.0 is still "Great".
func OnePercentTier(ratio float64) Tier {
	return onePercentTable[onePercentIndex(ratio)].tier
}

// NegotiationTier scores the discount off MSRP, in percent. Floors are inclusive.
func NegotiationTier(savingsPercentage float64) Tier {
	return negotiationTable[negotiationIndex(savingsPercentage)].tier
}

// DownPaymentTier scores cash down: zero is ideal, up to 5% of MSRP is acceptable.
func DownPaymentTier(downPayment, msrp float64) Tier {
	switch {
	case downPayment == 0:
		return Tier{1.0, model.LabelExcellent, model.InsightExcellent}
	case downPayment <= msrp*DownPaymentTolerance:
		return Tier{0.5, model.LabelGood, model.InsightInfo}
	default:
		return Tier{0, model.LabelPoor, model.InsightWarning}
	}
}

// RatingFor maps a total score onto the six-tier deal rating.
func RatingFor(total float64) model.DealRating {
	for _, r := range ratingTable {
		if total >= r.floor {
			return r.rating
		}
	}
	return model.RatingPoor
}

func onePercentIndex(ratio float64) int {
	for i, t := range onePercentTable {
		if ratio <= t.ceiling {
			return i
		}
	}
	// NaN falls through every comparison
	return len(onePercentTable) - 1
}

func negotiationIndex(pct float64) int {
	for i, t := range negotiationTable {
		if pct >= t.floor {
			return i
		}
	}
	return len(negotiationTable) - 1
}
