package analysis

import (
	"leasescore/internal/model"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// NegotiationTip is a prioritized strategy with its tactics.
type NegotiationTip struct {
	Priority Priority `json:"priority"`
	Strategy string   `json:"strategy"`
	Tactics  []string `json:"tactics"`
}

// DisplayedTactics is how many tactics a report shows per tip.
const DisplayedTactics = 4

var (
	priceTactics = []string{
		"Research dealer invoice price (typically 5-10% below MSRP)",
		"Get quotes from at least 3 dealers",
		"Negotiate at month-end or quarter-end for better deals",
		"Focus on selling price, not monthly payment",
		"Be prepared to walk away if terms aren't favorable",
	}
	rateTactics = []string{
		"Check your credit score and correct any errors",
		"Get pre-approved from your bank or credit union",
		"Ask dealer to match or beat your pre-approval rate",
		"Negotiate money factor separately from price",
		"Consider waiting to improve credit score if possible",
	}
	downTactics = []string{
		"Request zero-down payment structure",
		"Roll acquisition fee into monthly payments",
		"Use trade-in value instead of cash down",
		"Keep cash for emergency fund or investments",
		"Negotiate lower monthly payment through price reduction instead",
	}
	feeTactics = []string{
		"Negotiate or waive acquisition fee",
		"Ask about manufacturer incentives and rebates",
		"Request dealer to cover first month's payment",
		"Negotiate free maintenance or service package",
		"Ask for waived disposition fee at lease end",
	}
)

// KeyPrinciples close every negotiation section.
var KeyPrinciples = []string{
	"Negotiate selling price first, not monthly payment",
	"Get everything in writing - verbal promises don't count",
	"Read the entire contract - check for hidden fees or terms",
	"Don't rush - take time to review and compare offers",
	"Be willing to walk away - your best negotiating power",
}

// NegotiationTips returns the strategies that apply to res, highest priority first. Fee
// reduction always applies.
func NegotiationTips(res *model.EvaluationResult) []NegotiationTip {
	var tips []NegotiationTip
	if res.Derived.SavingsPercentage < 7 {
		tips = append(tips, NegotiationTip{PriorityHigh, "Price Negotiation", clone(priceTactics)})
	}
	if res.Inputs.APR() > 6 {
		tips = append(tips, NegotiationTip{PriorityMedium, "Interest Rate Reduction", clone(rateTactics)})
	}
	if res.Inputs.DownPayment > 0 {
		tips = append(tips, NegotiationTip{PriorityMedium, "Down Payment Elimination", clone(downTactics)})
	}
	return append(tips, NegotiationTip{PriorityLow, "Fee Reduction", clone(feeTactics)})
}

// Shown returns the tactics a report displays.
func (t NegotiationTip) Shown() []string {
	if len(t.Tactics) <= DisplayedTactics {
		return t.Tactics
	}
	return t.Tactics[:DisplayedTactics]
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
