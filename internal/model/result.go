package model

// DerivedFinancials are the figures computed from normalized DealInputs.
// Percent-valued fields are in percent (0.93 means 0.93%).
type DerivedFinancials struct {
	NetCapCost          float64 `json:"net_cap_cost" yaml:"net_cap_cost"`
	MonthlyDepreciation float64 `json:"monthly_depreciation" yaml:"monthly_depreciation"`
	MonthlyInterest     float64 `json:"monthly_interest" yaml:"monthly_interest"`
	// BasePayment is the theoretical pre-tax payment. Display only; it is never reconciled
	// with the quoted MonthlyPayment.
	BasePayment         float64 `json:"base_payment" yaml:"base_payment"`
	MonthlyTax          float64 `json:"monthly_tax" yaml:"monthly_tax"`
	TotalMonthlyPayment float64 `json:"total_monthly_payment" yaml:"total_monthly_payment"`
	TotalPayments       float64 `json:"total_payments" yaml:"total_payments"`
	TotalDepreciation   float64 `json:"total_depreciation" yaml:"total_depreciation"`
	TotalInterest       float64 `json:"total_interest" yaml:"total_interest"`
	TotalCost           float64 `json:"total_cost" yaml:"total_cost"`
	CostToOwnAfterLease float64 `json:"cost_to_own_after_lease" yaml:"cost_to_own_after_lease"`
	SavingsFromMSRP     float64 `json:"savings_from_msrp" yaml:"savings_from_msrp"`
	SavingsPercentage   float64 `json:"savings_percentage" yaml:"savings_percentage"`
	PaymentToMSRPRatio  float64 `json:"payment_to_msrp_ratio" yaml:"payment_to_msrp_ratio"`
	ResidualPercent     float64 `json:"residual_percent" yaml:"residual_percent"`
}

// SubScore is one scored dimension of a deal.
type SubScore struct {
	Points float64    `json:"points" yaml:"points"`
	Max    float64    `json:"max" yaml:"max"`
	Label  ScoreLabel `json:"label" yaml:"label"`
}

// ScoreBreakdown is the output of the scoring engine.
type ScoreBreakdown struct {
	OnePercent  SubScore   `json:"one_percent" yaml:"one_percent"`
	DownPayment SubScore   `json:"down_payment" yaml:"down_payment"`
	Negotiation SubScore   `json:"negotiation" yaml:"negotiation"`
	TotalScore  float64    `json:"total_score" yaml:"total_score"`
	DealRating  DealRating `json:"deal_rating" yaml:"deal_rating"`
	DealClass   DealClass  `json:"deal_class" yaml:"deal_class"`
	Insights    []Insight  `json:"insights" yaml:"insights"`
}

// MaxTotalScore is the best achievable ScoreBreakdown.TotalScore.
const MaxTotalScore = 4.0

// Insight is one observation about the deal, in generation order.
type Insight struct {
	Category InsightCategory `json:"category" yaml:"category"`
	Type     InsightType     `json:"type" yaml:"type"`
	Message  string          `json:"message" yaml:"message"`
}

// MarketReference holds the fixed market averages a deal is compared against.
type MarketReference struct {
	PaymentRatio float64 `json:"payment_ratio" yaml:"payment_ratio"`
	Discount     float64 `json:"discount" yaml:"discount"`
	Residual     float64 `json:"residual" yaml:"residual"`
	APR          float64 `json:"apr" yaml:"apr"`
	DownPayment  float64 `json:"down_payment" yaml:"down_payment"`
}

// Benchmark is the deal measured against the market reference.
// Every *VsMarket field is yours minus market, signed.
type Benchmark struct {
	Market              MarketReference `json:"market" yaml:"market"`
	PaymentVsMarket     float64         `json:"payment_vs_market" yaml:"payment_vs_market"`
	DiscountVsMarket    float64         `json:"discount_vs_market" yaml:"discount_vs_market"`
	ResidualVsMarket    float64         `json:"residual_vs_market" yaml:"residual_vs_market"`
	APRVsMarket         float64         `json:"apr_vs_market" yaml:"apr_vs_market"`
	DownPaymentVsMarket float64         `json:"down_payment_vs_market" yaml:"down_payment_vs_market"`
	MarketPositionScore float64         `json:"market_position_score" yaml:"market_position_score"`
	Position            MarketPosition  `json:"position" yaml:"position"`
}

// RiskFinding is one matched risk rule.
type RiskFinding struct {
	Category       string    `json:"category" yaml:"category"`
	Level          RiskLevel `json:"level" yaml:"level"`
	Title          string    `json:"title" yaml:"title"`
	Description    string    `json:"description" yaml:"description"`
	Impact         string    `json:"impact" yaml:"impact"`
	Recommendation string    `json:"recommendation" yaml:"recommendation"`
}

// OptimizationOpportunity is a suggested target state with its estimated benefit.
type OptimizationOpportunity struct {
	Category string    `json:"category" yaml:"category"`
	Title    string    `json:"title" yaml:"title"`
	Current  float64   `json:"current" yaml:"current"`
	Target   float64   `json:"target" yaml:"target"`
	Unit     ValueUnit `json:"unit" yaml:"unit"`

	EstimatedSavings float64     `json:"estimated_savings" yaml:"estimated_savings"`
	SavingsKind      SavingsKind `json:"savings_kind" yaml:"savings_kind"`
	// MonthlyIncrease is set only when reaching Target raises the monthly payment.
	MonthlyIncrease float64 `json:"monthly_increase,omitempty" yaml:"monthly_increase,omitempty"`

	Description string   `json:"description" yaml:"description"`
	Actions     []string `json:"actions" yaml:"actions"`
}

// EvaluationResult is everything the engine computes for one deal.
// It is created once per evaluation and never mutated afterwards.
type EvaluationResult struct {
	Inputs        DealInputs                `json:"inputs" yaml:"inputs"`
	Derived       DerivedFinancials         `json:"derived" yaml:"derived"`
	Score         ScoreBreakdown            `json:"score" yaml:"score"`
	Benchmark     Benchmark                 `json:"benchmark" yaml:"benchmark"`
	Risks         []RiskFinding             `json:"risks" yaml:"risks"`
	Optimizations []OptimizationOpportunity `json:"optimizations" yaml:"optimizations"`
}
