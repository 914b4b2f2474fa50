package advisor

import (
	"fincoach/internal/market"

	"github.com/shopspring/decimal"
)

// Adaptive advisory messages. Exactly one is returned per evaluation.
const (
	AdviceNoIncome       = "Add at least one income entry to unlock personalized investing advice."
	AdviceReduceSpending = "⚠️ Expenses are ~90% of income. Reduce spending before high-risk investments."
	AdviceBuildBuffer    = "💡 Save ≥10% of income before taking market risk."
	AdviceDiversify      = "⚠️ Several suggestions are volatile. Balance with ETFs or bonds."
	AdviceGoodBalance    = "✅ Good balance! Explore more opportunities fitting your horizon."
)

// volatileAt is the 1-month volatility at which a suggestion counts as
// volatile for the diversification rule.
const volatileAt = 0.02

var (
	ninetyPercent = decimal.NewFromFloat(0.9)
	tenPercent    = decimal.NewFromFloat(0.1)
)

// Compose evaluates the single-winner decision tree over a user's totals and
// opportunity list: the first matching rule wins and no messages combine.
// Solvency risk outranks under-saving, which outranks portfolio-risk
// commentary. Missing income aggregates to zero, so the no-income rule
// covers both missing and zero income.
func Compose(income, expenses, savings decimal.Decimal, opportunities []market.Opportunity) string {
	if income.IsZero() {
		return AdviceNoIncome
	}
	if expenses.GreaterThan(income.Mul(ninetyPercent)) {
		return AdviceReduceSpending
	}
	if savings.LessThan(income.Mul(tenPercent)) {
		return AdviceBuildBuffer
	}
	for _, opp := range opportunities {
		if opp.Volatility1M != nil && *opp.Volatility1M >= volatileAt {
			return AdviceDiversify
		}
	}
	return AdviceGoodBalance
}
