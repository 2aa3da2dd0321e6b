package model

// Labels and enums used in results. Keep these values stable; they are part of the JSON
// handed to report views and stored results.

type ScoreLabel string

const (
	LabelExcellent ScoreLabel = "Excellent"
	LabelGreat     ScoreLabel = "Great"
	LabelGood      ScoreLabel = "Good"
	LabelFair      ScoreLabel = "Fair"
	LabelPoor      ScoreLabel = "Poor"
)

type DealRating string

const (
	RatingExceptional  DealRating = "Exceptional Deal"
	RatingGreat        DealRating = "Great Deal"
	RatingGood         DealRating = "Good Deal"
	RatingFair         DealRating = "Fair Deal"
	RatingBelowAverage DealRating = "Below Average"
	RatingPoor         DealRating = "Poor Deal"
)

type DealClass string

const (
	ClassGood    DealClass = "good"
	ClassNeutral DealClass = "neutral"
	ClassBad     DealClass = "bad"
)

// ClassFor maps a rating onto its display class.
func ClassFor(r DealRating) DealClass {
	switch r {
	case RatingExceptional, RatingGreat, RatingGood:
		return ClassGood
	case RatingFair:
		return ClassNeutral
	default:
		return ClassBad
	}
}

type InsightType string

const (
	InsightExcellent InsightType = "excellent"
	InsightGood      InsightType = "good"
	InsightInfo      InsightType = "info"
	InsightWarning   InsightType = "warning"
	InsightCritical  InsightType = "critical"
)

type InsightCategory string

const (
	CategoryOnePercent  InsightCategory = "one_percent_rule"
	CategoryDownPayment InsightCategory = "down_payment"
	CategoryNegotiation InsightCategory = "negotiation"
	CategoryAPR         InsightCategory = "apr"
	CategoryResidual    InsightCategory = "residual"
)

type RiskLevel string

const (
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type MarketPosition string

const (
	PositionExcellent    MarketPosition = "excellent"
	PositionAverage      MarketPosition = "average"
	PositionBelowAverage MarketPosition = "below_average"
)

// ValueUnit says how OptimizationOpportunity.Current/Target are measured.
type ValueUnit string

const (
	UnitCurrency ValueUnit = "currency"
	UnitPercent  ValueUnit = "percent"
)

// SavingsKind says what OptimizationOpportunity.EstimatedSavings represents.
type SavingsKind string

const (
	// SavingsOverTerm is money saved across the whole lease term.
	SavingsOverTerm SavingsKind = "over_term"
	// SavingsOnPrice is a one-time reduction of the selling price.
	SavingsOnPrice SavingsKind = "on_price"
	// SavingsProtectedPrincipal is cash no longer exposed to loss if the car is totaled.
	SavingsProtectedPrincipal SavingsKind = "protected_principal"
)
