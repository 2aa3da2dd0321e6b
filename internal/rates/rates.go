// Package rates converts between a lease money factor and its APR equivalent.
package rates

// MoneyFactorMultiple is the conventional money factor to APR multiplier
// (12 months * 100 percent * 2 for the average-balance approximation).
const MoneyFactorMultiple = 2400.0

// APRFromMoneyFactor returns the APR, in percent, equivalent to mf.
func APRFromMoneyFactor(mf float64) float64 {
	return mf * MoneyFactorMultiple
}

// MoneyFactorFromAPR returns the money factor equivalent to apr (percent).
func MoneyFactorFromAPR(apr float64) float64 {
	return apr / MoneyFactorMultiple
}
