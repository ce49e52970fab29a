// Package budget contains daily-budget use cases: setting and clearing the
// budget, reporting spending status and evaluating additions against it.
package budget

import "github.com/shopspring/decimal"

// EvaluateAddition checks whether adding an item priced candidatePrice to a
// list already totalling currentTotal would push spending past dailyBudget.
// A zero budget means no budget is set and nothing ever exceeds it; an
// unpriced candidate cannot change spending and never trips the gate.
func EvaluateAddition(currentTotal, candidatePrice, dailyBudget decimal.Decimal) (exceeds bool, overage decimal.Decimal) {
	if !dailyBudget.IsPositive() || !candidatePrice.IsPositive() {
		return false, decimal.Zero
	}
	projected := currentTotal.Add(candidatePrice)
	if projected.LessThanOrEqual(dailyBudget) {
		return false, decimal.Zero
	}
	return true, projected.Sub(dailyBudget)
}
